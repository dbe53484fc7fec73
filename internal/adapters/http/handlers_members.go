package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/csrf"

	"gymdash/internal/adapters/http/middleware"
	"gymdash/internal/application/listutil"
	"gymdash/internal/application/orchestrators"
	"gymdash/internal/application/projections"
	"gymdash/internal/domain/member"
)

// handleMembers handles GET (list) and POST (register) for /members.
func handleMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	if r.Method == "GET" {
		lp := listutil.ParseListParams(r.URL.Query(), []string{"fee_status"})

		result, err := projections.QueryGetMemberList(ctx, projections.GetMemberListQuery{
			FeeStatus: lp.Filters["fee_status"],
			Search:    lp.Search,
			Page:      lp.Page,
			PerPage:   lp.PerPage,
		}, projections.GetMemberListDeps{
			MemberStore:     stores.MemberStore,
			AttendanceStore: stores.AttendanceStore,
		}, timeNow())
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTML {
			renderTemplate(w, r, "members.html", map[string]any{
				"Members":        result.Members,
				"PageInfo":       result.PageInfo,
				"Search":         lp.Search,
				"FeeStatus":      lp.Filters["fee_status"],
				"FeeStatuses":    member.ValidFeeStatuses,
				"PerPageOptions": listutil.PerPageOptions,
				"HasFilters":     lp.Search != "" || lp.Filters["fee_status"] != "",
			})
			return
		}
		writeJSON(w, result)
		return
	}

	if r.Method == "POST" {
		input, ok := decodeMemberInput(w, r)
		if !ok {
			return
		}
		sess, _ := middleware.GetSessionFromContext(ctx)
		input.GymID = sess.GymID

		_, err := orchestrators.ExecuteRegisterMember(ctx, input, orchestrators.RegisterMemberDeps{
			MemberStore:  stores.MemberStore,
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			if isHTML {
				renderMemberForm(w, r, input, err.Error())
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTML {
			http.Redirect(w, r, "/members", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMemberAdd handles GET /members/add, the registration form.
func handleMemberAdd(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	renderMemberForm(w, r, orchestrators.RegisterMemberInput{}, "")
}

// handleMemberEdit handles GET (form) and POST (update) for /members/edit/{id}.
func handleMemberEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/members/edit/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	if r.Method == "GET" {
		m, err := stores.MemberStore.GetByID(ctx, id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		renderTemplate(w, r, "member_form.html", map[string]any{
			"CSRFToken":   csrf.Token(r),
			"Member":      m,
			"Editing":     true,
			"Action":      "/members/edit/" + m.ID,
			"Packages":    member.Packages,
			"BloodGroups": member.BloodGroups,
			"FeeStatuses": member.ValidFeeStatuses,
		})
		return
	}

	if r.Method == "POST" {
		input, ok := decodeMemberInput(w, r)
		if !ok {
			return
		}
		input.ID = id

		_, err := orchestrators.ExecuteUpdateMember(ctx, input, orchestrators.RegisterMemberDeps{
			MemberStore:  stores.MemberStore,
			AccountStore: stores.AccountStore,
		})
		if err == orchestrators.ErrMemberNotFound {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			if isHTMLRequest(r) {
				renderMemberForm(w, r, input, err.Error())
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/members", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusNoContent)
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleMemberDelete handles POST /members/delete.
func handleMemberDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var id string
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		id = r.FormValue("ID")
	} else {
		var body struct{ ID string }
		if err := strictDecode(r, &body); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		id = body.ID
	}
	if id == "" {
		http.Error(w, "member id required", http.StatusBadRequest)
		return
	}

	if err := stores.MemberStore.Delete(r.Context(), id); err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/members", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodeMemberInput reads the registration form or JSON body.
func decodeMemberInput(w http.ResponseWriter, r *http.Request) (orchestrators.RegisterMemberInput, bool) {
	input := orchestrators.RegisterMemberInput{}
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return input, false
		}
		input.Name = r.FormValue("Name")
		input.Phone = r.FormValue("Phone")
		input.Age = r.FormValue("Age")
		input.Gender = r.FormValue("Gender")
		input.Address = r.FormValue("Address")
		input.BloodGroup = r.FormValue("BloodGroup")
		input.HealthNotes = r.FormValue("HealthNotes")
		input.Package = r.FormValue("Package")
		input.StartDate = r.FormValue("StartDate")
		input.FeeStatus = r.FormValue("FeeStatus")
		input.AccountEmail = r.FormValue("AccountEmail")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return input, false
		}
	}
	return input, true
}

func renderMemberForm(w http.ResponseWriter, r *http.Request, input orchestrators.RegisterMemberInput, errMsg string) {
	renderTemplate(w, r, "member_form.html", map[string]any{
		"CSRFToken":   csrf.Token(r),
		"Input":       input,
		"Action":      "/members",
		"Error":       errMsg,
		"Packages":    member.Packages,
		"BloodGroups": member.BloodGroups,
		"FeeStatuses": member.ValidFeeStatuses,
	})
}

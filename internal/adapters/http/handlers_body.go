package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"gymdash/internal/adapters/http/middleware"
	"gymdash/internal/application/orchestrators"
	"gymdash/internal/application/projections"
)

// handleBodyTracker handles GET (progress view) and POST (new entry) for
// /body-tracker. Entries belong to the logged-in member's account.
func handleBodyTracker(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if r.Method == "GET" {
		result, err := projections.QueryGetBodyProgress(ctx, projections.GetBodyProgressQuery{
			MemberID: sess.AccountID,
		}, projections.GetBodyProgressDeps{
			MeasurementStore: stores.MeasurementStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "body_tracker.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Recent":    result.Recent,
				"Series":    result.Series,
				"Latest":    result.Latest,
				"Delta":     result.Delta,
				"Entries":   result.Entries,
				"Today":     timeNow().Format("2006-01-02"),
			})
			return
		}
		writeJSON(w, result)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.RecordMeasurementInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Date = r.FormValue("Date")
			input.Weight = r.FormValue("Weight")
			input.Waist = r.FormValue("Waist")
			input.Arm = r.FormValue("Arm")
			input.Chest = r.FormValue("Chest")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}
		// Entries are always filed under the caller's own account.
		input.MemberID = sess.AccountID

		_, err := orchestrators.ExecuteRecordMeasurement(ctx, input, orchestrators.RecordMeasurementDeps{
			MeasurementStore: stores.MeasurementStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/body-tracker", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

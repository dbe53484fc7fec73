package web

import (
	"context"
	"net/http"

	"github.com/gorilla/csrf"

	"gymdash/internal/application/orchestrators"
	"gymdash/internal/application/projections"
	"gymdash/internal/domain/attendance"
)

// handleAttendance handles GET /attendance, the daily visit log.
func handleAttendance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeNow().Format("2006-01-02")
	}
	search := r.URL.Query().Get("search")

	result, err := projections.QueryGetAttendanceDay(r.Context(), projections.GetAttendanceDayQuery{
		Date:   date,
		Search: search,
	}, projections.GetAttendanceDayDeps{
		AttendanceStore: stores.AttendanceStore,
		MemberStore:     stores.MemberStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "attendance.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Date":      date,
			"Search":    search,
			"Visits":    result.Visits,
			"Absent":    result.NotCheckedIn,
			"Stats":     result.Stats,
		})
		return
	}
	writeJSON(w, result)
}

// handleCheckIn handles POST /attendance/check-in.
func handleCheckIn(w http.ResponseWriter, r *http.Request) {
	handleVisitChange(w, r, orchestrators.ExecuteCheckInMember)
}

// handleCheckOut handles POST /attendance/check-out.
func handleCheckOut(w http.ResponseWriter, r *http.Request) {
	handleVisitChange(w, r, orchestrators.ExecuteCheckOutMember)
}

// handleVisitChange runs a check-in or check-out and redirects back to the
// attendance screen for the affected date.
func handleVisitChange(w http.ResponseWriter, r *http.Request, execute visitFunc) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	input := orchestrators.CheckInMemberInput{}
	if isFormRequest(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		input.MemberID = r.FormValue("MemberID")
		input.Date = r.FormValue("Date")
	} else {
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	visit, err := execute(r.Context(), input, orchestrators.CheckInMemberDeps{
		MemberStore:     stores.MemberStore,
		AttendanceStore: stores.AttendanceStore,
		GenerateID:      generateID,
		Now:             timeNow,
	})
	if err != nil {
		switch err {
		case orchestrators.ErrMemberNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		case orchestrators.ErrAlreadyCheckedIn, orchestrators.ErrNotCheckedIn:
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/attendance?date="+visit.VisitDate, http.StatusSeeOther)
	} else {
		writeJSON(w, visit)
	}
}

type visitFunc func(ctx context.Context, input orchestrators.CheckInMemberInput, deps orchestrators.CheckInMemberDeps) (attendance.Attendance, error)

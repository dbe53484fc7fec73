package web

import (
	"net/http"

	"gymdash/internal/application/projections"
)

func reportsDeps() projections.GetReportsDeps {
	return projections.GetReportsDeps{
		MemberStore:     stores.MemberStore,
		ExpenseStore:    stores.ExpenseStore,
		AttendanceStore: stores.AttendanceStore,
	}
}

// handleReports handles GET /reports, the financial and membership charts.
func handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetReports(r.Context(), reportsDeps(), timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "reports.html", map[string]any{
			"Monthly":             result.Monthly,
			"Growth":              result.Growth,
			"ActiveMembers":       result.ActiveMembers,
			"ExpiredMembers":      result.ExpiredMembers,
			"PackageDistribution": result.PackageDistribution,
			"AttendanceByWeekday": result.AttendanceByWeekday,
			"TotalRevenue":        result.TotalRevenue,
			"TotalExpenses":       result.TotalExpenses,
			"Profit":              result.TotalRevenue - result.TotalExpenses,
		})
		return
	}
	writeJSON(w, result)
}

// handleReportsExport handles GET /reports/export, the CSV download.
func handleReportsExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	result, err := projections.QueryGetReports(r.Context(), reportsDeps(), timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	filename := "gym-report-" + timeNow().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := projections.WriteReportCSV(w, result); err != nil {
		internalError(w, err)
	}
}

package web

import (
	"net/http"

	"gymdash/internal/adapters/http/middleware"
	"gymdash/internal/domain/account"
)

// registerRoutes wires every screen to its handler, guarded by role. Each
// dashboard route is single-role; a logged-in user of the wrong role is sent
// back to /login rather than shown a forbidden page.
func registerRoutes(mux *http.ServeMux) {
	// Public
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/login", handleLogin)
	mux.HandleFunc("/signup", handleSignup)
	mux.HandleFunc("/logout", handleLogout)

	ownerOnly := middleware.RequireRole(account.RoleOwner)
	adminOnly := middleware.RequireRole(account.RoleAdmin)
	memberOnly := middleware.RequireRole(account.RoleMember)

	// Owner
	mux.Handle("/owner-dashboard", ownerOnly(http.HandlerFunc(handleOwnerDashboard)))

	// Admin
	mux.Handle("/admin-dashboard", adminOnly(http.HandlerFunc(handleAdminDashboard)))
	mux.Handle("/members", adminOnly(http.HandlerFunc(handleMembers)))
	mux.Handle("/members/add", adminOnly(http.HandlerFunc(handleMemberAdd)))
	mux.Handle("/members/edit/", adminOnly(http.HandlerFunc(handleMemberEdit)))
	mux.Handle("/members/delete", adminOnly(http.HandlerFunc(handleMemberDelete)))
	mux.Handle("/attendance", adminOnly(http.HandlerFunc(handleAttendance)))
	mux.Handle("/attendance/check-in", adminOnly(http.HandlerFunc(handleCheckIn)))
	mux.Handle("/attendance/check-out", adminOnly(http.HandlerFunc(handleCheckOut)))
	mux.Handle("/expenses", adminOnly(http.HandlerFunc(handleExpenses)))
	mux.Handle("/expenses/delete", adminOnly(http.HandlerFunc(handleExpenseDelete)))
	mux.Handle("/reports", adminOnly(http.HandlerFunc(handleReports)))
	mux.Handle("/reports/export", adminOnly(http.HandlerFunc(handleReportsExport)))
	mux.Handle("/poster-generator", adminOnly(http.HandlerFunc(handlePosterGenerator)))

	// Member
	mux.Handle("/member-dashboard", memberOnly(http.HandlerFunc(handleMemberDashboard)))
	mux.Handle("/body-tracker", memberOnly(http.HandlerFunc(handleBodyTracker)))
}

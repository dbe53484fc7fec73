package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"gymdash/internal/adapters/http/middleware"
	"gymdash/internal/application/orchestrators"
	"gymdash/internal/application/projections"
	"gymdash/internal/domain/account"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON encodes v with the JSON content type.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

const templatesDir = "internal/adapters/http/templates"

func isHTMLRequest(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}

// isFormRequest reports whether the body is a classic form submission.
func isFormRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	role := ""
	name := ""
	if ok {
		role = string(sess.Role)
		name = sess.Name
	}

	funcMap := template.FuncMap{
		"currentRole": func() string { return role },
		"currentName": func() string { return name },
		"isLoggedIn":  func() bool { return role != "" },
		"homePath": func() string {
			if !ok {
				return "/login"
			}
			return sess.HomePath()
		},
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"fmtDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"fmtClock": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("3:04 PM")
		},
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
		return
	}
}

// handleRoot handles GET /. A logged-in user lands on their role's dashboard;
// everyone else sees the public landing page.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "landing.html", nil)
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
func handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		// Already logged in: straight to the dashboard
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "login.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Roles":     account.ValidRoles,
		})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.LoginInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Email = r.FormValue("Email")
			input.Password = r.FormValue("Password")
			input.Role = r.FormValue("Role")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		result, err := orchestrators.ExecuteLogin(r.Context(), input, orchestrators.LoginDeps{
			AccountStore: stores.AccountStore,
		})
		if err != nil {
			if isHTMLRequest(r) {
				renderTemplate(w, r, "login.html", map[string]any{
					"CSRFToken": csrf.Token(r),
					"Roles":     account.ValidRoles,
					"Error":     "Invalid credentials for the selected role",
					"Email":     input.Email,
				})
				return
			}
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := sessions.Create(middleware.Session{
			AccountID: result.AccountID,
			Name:      result.Name,
			Email:     result.Email,
			Role:      result.Role,
			GymID:     result.GymID,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		if isHTMLRequest(r) {
			http.Redirect(w, r, result.Role.HomePath(), http.StatusSeeOther)
			return
		}
		writeJSON(w, map[string]string{"redirect": result.Role.HomePath()})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleSignup handles GET (form) and POST (create account) for /signup.
func handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, sess.HomePath(), http.StatusSeeOther)
			return
		}
		renderTemplate(w, r, "signup.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Roles":     account.ValidRoles,
		})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.SignupInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Name = r.FormValue("Name")
			input.Email = r.FormValue("Email")
			input.Password = r.FormValue("Password")
			input.Role = r.FormValue("Role")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		result, err := orchestrators.ExecuteSignup(r.Context(), input, orchestrators.SignupDeps{
			AccountStore: stores.AccountStore,
			EmailSender:  emailSender,
			EmailFrom:    emailFromAddress,
		})
		if err != nil {
			if isHTMLRequest(r) {
				renderTemplate(w, r, "signup.html", map[string]any{
					"CSRFToken": csrf.Token(r),
					"Roles":     account.ValidRoles,
					"Error":     err.Error(),
					"Name":      input.Name,
					"Email":     input.Email,
				})
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Signup logs straight in
		token, err := sessions.Create(middleware.Session{
			AccountID: result.AccountID,
			Name:      result.Name,
			Email:     result.Email,
			Role:      result.Role,
			GymID:     result.GymID,
		})
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		middleware.SetSessionCookie(w, token)
		if isHTMLRequest(r) {
			http.Redirect(w, r, result.Role.HomePath(), http.StatusSeeOther)
			return
		}
		writeJSON(w, map[string]string{"redirect": result.Role.HomePath()})
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles POST /logout. Logging out without a session (or twice)
// is fine; the result is the same logged-out state.
func handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if token := middleware.SessionTokenFromRequest(r); token != "" {
		sessions.Delete(token)
	}

	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleOwnerDashboard handles GET /owner-dashboard.
func handleOwnerDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		Role: account.RoleOwner,
	}, dashboardDeps(), timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "owner_dashboard.html", map[string]any{"Stats": result.Owner})
		return
	}
	writeJSON(w, result.Owner)
}

// handleAdminDashboard handles GET /admin-dashboard.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		Role: account.RoleAdmin,
	}, dashboardDeps(), timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "admin_dashboard.html", map[string]any{"Stats": result.Admin})
		return
	}
	writeJSON(w, result.Admin)
}

// handleMemberDashboard handles GET /member-dashboard.
func handleMemberDashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.GetSessionFromContext(r.Context())
	result, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		Role:      account.RoleMember,
		AccountID: sess.AccountID,
	}, dashboardDeps(), timeNow())
	if err != nil {
		internalError(w, err)
		return
	}

	if isHTMLRequest(r) {
		renderTemplate(w, r, "member_dashboard.html", map[string]any{"Stats": result.Member})
		return
	}
	writeJSON(w, result.Member)
}

func dashboardDeps() projections.GetDashboardDeps {
	return projections.GetDashboardDeps{
		MemberStore:      stores.MemberStore,
		AttendanceStore:  stores.AttendanceStore,
		ExpenseStore:     stores.ExpenseStore,
		MeasurementStore: stores.MeasurementStore,
	}
}

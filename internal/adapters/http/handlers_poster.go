package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"gymdash/internal/application/orchestrators"
	"gymdash/internal/domain/poster"
)

// handlePosterGenerator handles GET (form) and POST (preview) for
// /poster-generator.
func handlePosterGenerator(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "poster_generator.html", map[string]any{
			"CSRFToken": csrf.Token(r),
			"Templates": poster.Templates,
		})
		return
	}

	if r.Method == "POST" {
		input := orchestrators.GeneratePosterInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.TemplateID = r.FormValue("TemplateID")
			input.GymName = r.FormValue("GymName")
			input.Offer = r.FormValue("Offer")
			input.ValidUntil = r.FormValue("ValidUntil")
			input.Contact = r.FormValue("Contact")
			input.LogoName = r.FormValue("LogoName")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}

		result, err := orchestrators.ExecuteGeneratePoster(r.Context(), input)
		if err != nil {
			if isHTMLRequest(r) {
				renderTemplate(w, r, "poster_generator.html", map[string]any{
					"CSRFToken": csrf.Token(r),
					"Templates": poster.Templates,
					"Input":     input,
					"Error":     err.Error(),
				})
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "poster_generator.html", map[string]any{
				"CSRFToken": csrf.Token(r),
				"Templates": poster.Templates,
				"Input":     input,
				"Preview":   result.Poster,
				"Template":  result.Template,
			})
		} else {
			writeJSON(w, result)
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

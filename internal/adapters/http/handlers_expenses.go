package web

import (
	"net/http"

	"github.com/gorilla/csrf"

	"gymdash/internal/adapters/http/middleware"
	"gymdash/internal/application/listutil"
	"gymdash/internal/application/orchestrators"
	"gymdash/internal/application/projections"
	"gymdash/internal/domain/expense"
)

// handleExpenses handles GET (summary) and POST (add) for /expenses.
func handleExpenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		lp := listutil.ParseListParams(r.URL.Query(), []string{"category"})

		result, err := projections.QueryGetExpenseSummary(ctx, projections.GetExpenseSummaryQuery{
			Category: lp.Filters["category"],
			Search:   lp.Search,
			Page:     lp.Page,
			PerPage:  lp.PerPage,
		}, projections.GetExpenseSummaryDeps{
			ExpenseStore: stores.ExpenseStore,
		})
		if err != nil {
			internalError(w, err)
			return
		}

		if isHTMLRequest(r) {
			renderTemplate(w, r, "expenses.html", map[string]any{
				"CSRFToken":      csrf.Token(r),
				"Expenses":       result.Expenses,
				"FilteredTotal":  result.FilteredTotal,
				"OverallTotal":   result.OverallTotal,
				"CategoryTotals": result.CategoryTotals,
				"PageInfo":       result.PageInfo,
				"Search":         lp.Search,
				"Category":       lp.Filters["category"],
				"Categories":     expense.Categories,
				"Today":          timeNow().Format("2006-01-02"),
			})
			return
		}
		writeJSON(w, result)
		return
	}

	if r.Method == "POST" {
		input := orchestrators.AddExpenseInput{}
		if isFormRequest(r) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input.Date = r.FormValue("Date")
			input.Category = r.FormValue("Category")
			input.Amount = r.FormValue("Amount")
			input.Description = r.FormValue("Description")
			input.Notes = r.FormValue("Notes")
		} else {
			if err := strictDecode(r, &input); err != nil {
				http.Error(w, "Invalid request", http.StatusBadRequest)
				return
			}
		}
		sess, _ := middleware.GetSessionFromContext(ctx)
		input.GymID = sess.GymID

		_, err := orchestrators.ExecuteAddExpense(ctx, input, orchestrators.AddExpenseDeps{
			ExpenseStore: stores.ExpenseStore,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if isHTMLRequest(r) {
			http.Redirect(w, r, "/expenses", http.StatusSeeOther)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleExpenseDelete handles POST /expenses/delete.
func handleExpenseDelete(w http.ResponseWriter, r *http.Request) {
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

	err := orchestrators.ExecuteDeleteExpense(r.Context(), id, orchestrators.AddExpenseDeps{
		ExpenseStore: stores.ExpenseStore,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if isHTMLRequest(r) {
		http.Redirect(w, r, "/expenses", http.StatusSeeOther)
	} else {
		w.WriteHeader(http.StatusNoContent)
	}
}

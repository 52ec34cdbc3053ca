package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/najdeno/najdeno/internal/model"
	"github.com/najdeno/najdeno/internal/store"
)

// searchData is the template data for the search page.
type searchData struct {
	PageData
	Query   string
	Results []model.Item
}

// SearchPage handles GET /search.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "search.html", &searchData{
		PageData: PageData{Title: "Search Items"},
	})
}

// SearchSubmit handles POST /search. An empty query renders an empty result
// set without touching the database.
func (s *Server) SearchSubmit(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.FormValue("query"))

	data := &searchData{
		PageData: PageData{Title: "Search Items"},
		Query:    query,
	}

	if query != "" {
		results, err := store.SearchItems(r.Context(), s.DB, query)
		if err != nil {
			slog.Error("failed to search items", "error", err)
			http.Error(w, "Database Error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		data.Results = results
	}

	s.Templates.Render(w, "search.html", data)
}

package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/najdeno/najdeno/internal/enrich"
	"github.com/najdeno/najdeno/internal/imaging"
	"github.com/najdeno/najdeno/internal/store"
)

// ReportPage handles GET /report.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "report.html", &PageData{Title: "Report Item"})
}

// ReportSubmit handles POST /report: validate the form, have the completion
// service generate a description and tags, reject duplicates, store the item,
// and send the client to the search page. Each failure is terminal and
// answers with a plain-text body.
func (s *Server) ReportSubmit(w http.ResponseWriter, r *http.Request) {
	// The form is multipart when a photo is attached, urlencoded otherwise.
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil && err != http.ErrNotMultipart {
		http.Error(w, "upload too large", http.StatusBadRequest)
		return
	}

	itemName := strings.TrimSpace(r.FormValue("item_name"))
	keywords := strings.TrimSpace(r.FormValue("keywords"))
	location := strings.TrimSpace(r.FormValue("location"))

	if itemName == "" || keywords == "" || location == "" {
		http.Error(w, "All fields are required.", http.StatusBadRequest)
		return
	}

	aiText, err := s.AI.Complete(r.Context(), enrich.BuildPrompt(itemName, keywords))
	if err != nil {
		slog.Error("completion request failed", "error", err)
		http.Error(w, "Groq API Error: "+err.Error(), http.StatusBadGateway)
		return
	}

	parsed := enrich.Parse(aiText)

	// The photo is optional; an empty file input arrives as a zero-size part.
	var photo *imaging.Photo
	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		if header.Size > 0 {
			photo, err = imaging.Process(file)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
	}

	exists, err := store.ItemExists(r.Context(), s.DB, itemName, location, parsed.Description)
	if err != nil {
		slog.Error("failed to check for existing item", "error", err)
		http.Error(w, "Database Error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, "Item already exists in database.", http.StatusConflict)
		return
	}

	item, err := store.CreateItem(r.Context(), s.DB, itemName, parsed.Description, parsed.TagsText(), location)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		http.Error(w, "Database Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if photo != nil {
		if err := store.SetItemPhoto(r.Context(), s.DB, item.ID, photo.Data, photo.MIME); err != nil {
			slog.Error("failed to save item photo", "error", err, "item", item.ID)
		}
	}

	slog.Info("item reported", "item", itemName, "location", location, "tags_inferred", parsed.TagsInferred)
	http.Redirect(w, r, "/search", http.StatusSeeOther)
}

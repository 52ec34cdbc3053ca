package web

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/najdeno/najdeno/internal/store"
)

// chatPersona is the system role sent with chat messages that match nothing
// in the database.
const chatPersona = "You are a helpful lost and found assistant."

// chatData is the template data for the chat page. Reply is raw HTML: the
// database branch builds markup from stored text without escaping it.
type chatData struct {
	PageData
	Reply template.HTML
}

// ChatPage handles GET /chat.
func (s *Server) ChatPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "chat.html", &chatData{PageData: PageData{Title: "Assistant"}})
}

// ChatSubmit handles POST /chat. Matching items answer the message directly;
// otherwise the message goes to the completion service and its reply (or
// error string) is returned verbatim. Requests marked with
// X-Requested-With: XMLHttpRequest get the raw reply instead of a page.
func (s *Server) ChatSubmit(w http.ResponseWriter, r *http.Request) {
	message := strings.TrimSpace(r.FormValue("message"))

	var reply string
	if message != "" {
		items, err := store.SearchItems(r.Context(), s.DB, message)
		if err != nil {
			slog.Error("failed to search items for chat", "error", err)
			http.Error(w, "Database Error: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if len(items) > 0 {
			var b strings.Builder
			b.WriteString("🔍 I found matching items:<br><br>")
			for _, item := range items {
				fmt.Fprintf(&b, "<b>%s</b> - %s<br>", item.Name, item.Location)
			}
			reply = b.String()
		} else {
			reply, err = s.AI.Chat(r.Context(), chatPersona, message)
			if err != nil {
				slog.Error("chat completion failed", "error", err)
				reply = "AI Error: " + err.Error()
			}
		}
	}

	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, reply)
		return
	}

	s.Templates.Render(w, "chat.html", &chatData{
		PageData: PageData{Title: "Assistant"},
		Reply:    template.HTML(reply),
	})
}

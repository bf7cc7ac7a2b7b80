package contact

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"sitewright/notify"
	"sitewright/pages"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Log      LeadLog
	Notifier notify.Notifier
	Pages    *pages.Renderer
}

func NewHandler(leadLog LeadLog, notifier notify.Notifier, renderer *pages.Renderer) *Handler {
	return &Handler{Log: leadLog, Notifier: notifier, Pages: renderer}
}

func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Pages.Render(w, "contact.html", map[string]interface{}{"Title": "Contact", "Success": false})
}

// Submit appends the lead and fires a best-effort notification. A failed
// notification never turns a captured lead into an error for the visitor.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	lead := Lead{
		Timestamp: time.Now(),
		Name:      strings.TrimSpace(r.FormValue("name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Message:   strings.TrimSpace(r.FormValue("message")),
	}

	if err := h.Log.Append(lead); err != nil {
		log.Printf("contact: failed to record lead: %v", err)
		http.Error(w, "could not save your message", http.StatusInternalServerError)
		return
	}

	h.Notifier.Notify("New lead: "+lead.Name,
		fmt.Sprintf("From: %s <%s>\n\n%s", lead.Name, lead.Email, lead.Message))

	h.Pages.Render(w, "contact.html", map[string]interface{}{"Title": "Contact", "Success": true})
}

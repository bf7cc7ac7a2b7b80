package pages

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	R *Renderer
}

func NewHandler(r *Renderer) *Handler {
	return &Handler{R: r}
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "index.html", map[string]interface{}{"Title": "Websites that work", "Projects": Projects})
}

func (h *Handler) Portfolio(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "portfolio.html", map[string]interface{}{"Title": "Portfolio", "Projects": Projects, "Starters": Starters})
}

func (h *Handler) Templates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "templates.html", map[string]interface{}{"Title": "Templates", "Templates": Packages})
}

func (h *Handler) TemplateDetail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pkg := PackageBySlug(ps.ByName("slug"))
	if pkg == nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	h.R.Render(w, "template_detail.html", map[string]interface{}{"Title": pkg.Name, "T": pkg})
}

func (h *Handler) Pricing(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "pricing.html", map[string]interface{}{"Title": "Pricing", "Plans": Plans})
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "book.html", map[string]interface{}{"Title": "Book a slot"})
}

func (h *Handler) Privacy(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "privacy.html", map[string]interface{}{"Title": "Privacy"})
}

// CheckoutSuccess echoes the date from the query string for display only; the
// authoritative reservation happens in the webhook.
func (h *Handler) CheckoutSuccess(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "checkout_success.html", map[string]interface{}{
		"Title": "Payment received", "Date": r.URL.Query().Get("date"),
	})
}

func (h *Handler) CheckoutCancel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.R.Render(w, "checkout_cancel.html", map[string]interface{}{"Title": "Checkout cancelled"})
}

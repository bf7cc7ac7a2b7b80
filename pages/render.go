package pages

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"
)

// Renderer holds the parsed template set. Templates are parsed once at startup
// so a broken template fails the process before it serves anything.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (rd *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := rd.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("pages: render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

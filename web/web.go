// Package web holds the embedded templates and stylesheet and the gin HTML
// renderer built from them.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates static
var files embed.FS

var (
	publicPages = []string{"home", "gallery", "painting", "about", "contact", "error"}
	studioPages = []string{"login", "dashboard", "paintings", "painting_form", "messages"}
)

// Renderer maps page names to templates, each parsed together with its
// layout. Studio pages are addressed as "studio/<page>".
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, p := range publicPages {
		if err := r.add(p, "templates/layout.html", "templates/"+p+".html"); err != nil {
			return nil, err
		}
	}
	for _, p := range studioPages {
		if err := r.add("studio/"+p, "templates/studio/layout.html", "templates/studio/"+p+".html"); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Renderer) add(name string, patterns ...string) error {
	t, err := template.New(name).ParseFS(files, patterns...)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	r.pages[name] = t
	return nil
}

// Instance implements render.HTMLRender. Unknown names panic; the recovery
// middleware turns that into a 500.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		panic(fmt.Sprintf("web: unknown page %q", name))
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Static serves the embedded stylesheet directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static/css")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Package web serves the HTML form page and its static assets.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
)

//go:embed templates public
var assetsFS embed.FS

// Handler renders the index page and serves /public/*.
type Handler struct {
	index  *template.Template
	static http.Handler
}

type indexData struct {
	Title string
}

// New parses the embedded templates. It only fails when the embedded files are malformed.
func New() (*Handler, error) {
	index, err := template.ParseFS(assetsFS, "templates/layout.html", "templates/index.html")
	if err != nil {
		return nil, err
	}
	public, err := fs.Sub(assetsFS, "public")
	if err != nil {
		return nil, err
	}
	return &Handler{
		index:  index,
		static: http.StripPrefix("/public/", http.FileServerFS(public)),
	}, nil
}

// Index renders the form page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.index.ExecuteTemplate(&buf, "layout", indexData{Title: "Exercise Tracker"}); err != nil {
		slog.ErrorContext(r.Context(), "template execute", "template", "index.html", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Static serves the embedded public directory. Mount it at /public/*.
func (h *Handler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

// MustNew is like New but panics on error. The templates are embedded, so an error is a build defect.
func MustNew() *Handler {
	h, err := New()
	if err != nil {
		panic(err)
	}
	return h
}

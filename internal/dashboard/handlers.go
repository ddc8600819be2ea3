package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/components"
	"github.com/ziadkadry99/livingcost/internal/pages"
	"github.com/ziadkadry99/livingcost/internal/shell"
)

// chartsResponse is the JSON response for the chart listing endpoint.
type chartsResponse struct {
	Dir    string   `json:"dir"`
	Charts []string `json:"charts"`
}

// pageHandler renders the full document for one route.
func (d *Dashboard) pageHandler(page pages.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := page.Layout(d.cfg.Loader)
		if err != nil {
			d.renderError(w, r, page.Route, err)
			return
		}
		d.writeNode(w, r, http.StatusOK, d.document(page.Route, page.Title, tree))
	}
}

// handleFragment renders only the page tree for the route after the prefix,
// for client-side navigation into the page container.
func (d *Dashboard) handleFragment(w http.ResponseWriter, r *http.Request) {
	route := "/" + strings.Trim(chi.URLParam(r, "*"), "/")

	page, ok := d.cfg.Pages.Lookup(route)
	if !ok {
		w.Header().Set("X-Page-Title", "Not Found")
		d.writeNode(w, r, http.StatusNotFound, shell.ErrorPage(http.StatusNotFound, ""))
		return
	}

	tree, err := page.Layout(d.cfg.Loader)
	if err != nil {
		logRenderError(r, route, err)
		w.Header().Set("X-Page-Title", "Error")
		d.writeNode(w, r, http.StatusInternalServerError, shell.ErrorPage(http.StatusInternalServerError, d.detail(err)))
		return
	}
	w.Header().Set("X-Page-Title", page.Title)
	d.writeNode(w, r, http.StatusOK, tree)
}

func (d *Dashboard) handleCharts(w http.ResponseWriter, r *http.Request) {
	names, err := d.cfg.Loader.List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, chartsResponse{Dir: d.cfg.Loader.Dir, Charts: names})
}

func (d *Dashboard) handleNotFound(w http.ResponseWriter, r *http.Request) {
	d.writeNode(w, r, http.StatusNotFound,
		d.document(r.URL.Path, "Not Found", shell.ErrorPage(http.StatusNotFound, "")))
}

// renderError replaces the whole page with an error page. Nothing of the
// failed render is sent.
func (d *Dashboard) renderError(w http.ResponseWriter, r *http.Request, route string, err error) {
	logRenderError(r, route, err)
	d.writeNode(w, r, http.StatusInternalServerError,
		d.document(route, "Error", shell.ErrorPage(http.StatusInternalServerError, d.detail(err))))
}

func logRenderError(r *http.Request, route string, err error) {
	kind := "render"
	switch {
	case errors.Is(err, charts.ErrNotFound):
		kind = "missing chart"
	case errors.Is(err, charts.ErrDeserialization):
		kind = "invalid chart"
	case errors.Is(err, pages.ErrLookup):
		kind = "chart lookup"
	}
	log.Printf("dashboard: %s %s failed (%s) [%s]: %v", r.Method, route, kind, middleware.GetReqID(r.Context()), err)
}

func (d *Dashboard) detail(err error) string {
	if d.cfg.Debug {
		return err.Error()
	}
	return ""
}

func (d *Dashboard) document(route, pageTitle string, page *html.Node) *html.Node {
	opts := shell.Options{
		Title:     d.cfg.Title,
		PageTitle: pageTitle,
		Route:     route,
		PlotlyURL: d.cfg.PlotlyURL,
	}
	if d.cfg.Reload != nil {
		opts.ReloadPath = ReloadPath
	}
	return shell.Document(opts, page)
}

// writeNode renders n fully before writing, so a serialization failure
// never leaves a half-written page. Nothing is written once the request
// context is done; the timeout middleware answers 504 instead.
func (d *Dashboard) writeNode(w http.ResponseWriter, r *http.Request, status int, n *html.Node) {
	if err := r.Context().Err(); err != nil {
		log.Printf("dashboard: %s %s abandoned [%s]: %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), err)
		return
	}
	var buf bytes.Buffer
	if err := components.Render(&buf, n); err != nil {
		log.Printf("dashboard: rendering %s: %v", r.URL.Path, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

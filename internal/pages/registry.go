// Package pages holds the route-to-page mapping and the page composers.
package pages

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/components"
)

// LayoutFunc composes a page tree, loading whatever charts it needs.
type LayoutFunc func(l *charts.Loader) (*html.Node, error)

// Page is one routable page.
type Page struct {
	Route  string
	Title  string
	Layout LayoutFunc
}

// Registry is the static route table, fixed once built.
type Registry struct {
	pages map[string]Page
	order []string
}

// NewRegistry builds a registry from pages. Routes must be absolute and unique.
func NewRegistry(pages ...Page) (*Registry, error) {
	r := &Registry{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		if !strings.HasPrefix(p.Route, "/") {
			return nil, fmt.Errorf("page %q: route must start with /", p.Route)
		}
		if p.Layout == nil {
			return nil, fmt.Errorf("page %s: layout is required", p.Route)
		}
		if _, dup := r.pages[p.Route]; dup {
			return nil, fmt.Errorf("page %s: duplicate route", p.Route)
		}
		if p.Title == "" {
			p.Title = components.Label(p.Route)
		}
		r.pages[p.Route] = p
		r.order = append(r.order, p.Route)
	}
	return r, nil
}

// Default returns the dashboard's route table.
func Default() *Registry {
	r, err := NewRegistry(
		Page{Route: "/", Title: "Introduction", Layout: Introduction},
		detailPage(healthcare),
		detailPage(taxes),
		detailPage(necessities),
		detailPage(global),
	)
	if err != nil {
		// The table above is static; an error here is a programming mistake.
		panic(err)
	}
	return r
}

// Lookup returns the page registered for route.
func (r *Registry) Lookup(route string) (Page, bool) {
	p, ok := r.pages[route]
	return p, ok
}

// Routes returns the registered routes in registration order.
func (r *Registry) Routes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// ErrLookup is matched by every LookupError.
var ErrLookup = errors.New("chart not loaded")

// LookupError reports a card whose chart is absent from the loaded mapping.
type LookupError struct {
	ChartID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("card references chart %q which was not loaded", e.ChartID)
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

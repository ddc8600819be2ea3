// Package shell owns the top-level page layout around every route and the
// sidebar toggle rule.
package shell

import (
	"fmt"
	"net/http"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	c "github.com/ziadkadry99/livingcost/internal/components"
)

// Element IDs the client script relies on.
const (
	LocationID      = "url"
	PageContainerID = "page-content"
)

// DefaultPlotlyURL is the Plotly bundle loaded by every page.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Options configure the document around a page.
type Options struct {
	Title      string // application heading and <title> suffix
	PageTitle  string
	Route      string // current path, exposed to the location tracker
	PlotlyURL  string
	StaticPath string // URL prefix of the embedded CSS/JS, with trailing slash
	ReloadPath string // live-reload websocket path; empty disables it
}

// Document wraps page in the application layout: location tracker, sidebar
// toggle, sidebar, heading, and page container.
func Document(opts Options, page *html.Node) *html.Node {
	if opts.PlotlyURL == "" {
		opts.PlotlyURL = DefaultPlotlyURL
	}
	if opts.StaticPath == "" {
		opts.StaticPath = "/static/"
	}

	title := opts.Title
	if opts.PageTitle != "" {
		title = fmt.Sprintf("%s · %s", opts.PageTitle, opts.Title)
	}

	head := c.El(atom.Head, nil,
		c.El(atom.Meta, c.A("charset", "utf-8")),
		c.El(atom.Meta, c.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		c.El(atom.Title, nil, c.Text(title)),
		c.El(atom.Link, c.A("rel", "stylesheet", "href", opts.StaticPath+"style.css")),
		c.El(atom.Script, c.A("src", opts.PlotlyURL, "defer", "")),
		c.El(atom.Script, c.A("src", opts.StaticPath+"app.js", "defer", "")),
	)

	bodyAttrs := c.A("class", "app")
	if opts.ReloadPath != "" {
		bodyAttrs = append(bodyAttrs, "data-live-reload", opts.ReloadPath)
	}

	body := c.El(atom.Body, bodyAttrs,
		c.El(atom.Div, c.A("id", LocationID, "data-pathname", opts.Route, "hidden", "")),
		c.El(atom.Button, c.A(
			"id", c.OpenSidebarID,
			"class", "open-sidebar",
			"type", "button",
			c.ClicksAttr, "0",
			"aria-label", "Open sidebar",
		), c.Text("☰")),
		c.MakeSidebar(),
		c.El(atom.Main, c.A("class", "main"),
			c.El(atom.H1, c.A("class", "app-title"), c.Text(opts.Title)),
			c.El(atom.Div, c.A("id", PageContainerID, "class", "page-container"), page),
		),
	)

	doc := &html.Node{Type: html.DocumentNode}
	c.Append(doc,
		&html.Node{Type: html.DoctypeNode, Data: "html"},
		c.El(atom.Html, c.A("lang", "en"), head, body),
	)
	return doc
}

// ErrorPage is the page tree shown when a render fails. detail is omitted
// unless non-empty; callers pass it only in debug mode.
func ErrorPage(status int, detail string) *html.Node {
	page := c.El(atom.Div, c.A("class", "page page-error"),
		c.El(atom.Section, nil,
			c.El(atom.H2, nil, c.Text(fmt.Sprintf("%d %s", status, http.StatusText(status)))),
			c.El(atom.P, nil, c.Text(errorMessage(status))),
		),
	)
	if detail != "" {
		c.Append(page.FirstChild, c.El(atom.Pre, c.A("class", "error-detail"), c.Text(detail)))
	}
	return page
}

func errorMessage(status int) string {
	if status == http.StatusNotFound {
		return "There is no page at this address."
	}
	return "This page could not be rendered."
}

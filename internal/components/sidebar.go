package components

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element IDs and classes shared between the sidebar, the shell, and app.js.
const (
	SidebarID          = "sidebar"
	CloseSidebarID     = "close-sidebar"
	OpenSidebarID      = "open-sidebar"
	ClicksAttr         = "data-n-clicks"
	OpenClassAttr      = "data-open-class"
	ClosedClassAttr    = "data-closed-class"
	SidebarClosedClass = "sidebar sidebar-closed"
	SidebarOpenClass   = "sidebar sidebar-open"
)

// NavLinks are the routes listed in the sidebar, in display order.
var NavLinks = []string{"/", "/healthcare", "/taxes", "/necessities", "/global"}

// MakeSidebar returns the static navigation panel. Its open/closed class is
// driven by the client toggle, which reads both class names from the panel's
// data attributes. The panel starts closed.
func MakeSidebar() *html.Node {
	list := El(atom.Ul, A("class", "sidebar-links"))
	for _, href := range NavLinks {
		Append(list, El(atom.Li, nil,
			El(atom.A, A("href", href, "data-nav", ""), Text(Label(href))),
		))
	}

	return El(atom.Nav, A(
		"id", SidebarID,
		"class", SidebarClosedClass,
		OpenClassAttr, SidebarOpenClass,
		ClosedClassAttr, SidebarClosedClass,
		"aria-label", "Sections",
	),
		El(atom.Div, A("class", "sidebar-header"),
			El(atom.H2, A("class", "sidebar-title"), Text("Cost of Living")),
			El(atom.Button, A(
				"id", CloseSidebarID,
				"type", "button",
				ClicksAttr, "0",
				"aria-label", "Close sidebar",
			), Text("×")),
		),
		list,
	)
}

package components

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/livingcost/internal/charts"
)

// CardSpec is everything a hoverable card needs.
type CardSpec struct {
	ChartID     string
	Chart       *charts.Chart
	Title       string
	Description string
	Href        string
}

// Validate reports the first missing field.
func (s CardSpec) Validate() error {
	switch {
	case s.ChartID == "":
		return errors.New("card: chart id is required")
	case s.Chart == nil:
		return fmt.Errorf("card %s: chart is required", s.ChartID)
	case s.Title == "":
		return fmt.Errorf("card %s: title is required", s.ChartID)
	case s.Description == "":
		return fmt.Errorf("card %s: description is required", s.ChartID)
	case s.Href == "":
		return fmt.Errorf("card %s: href is required", s.ChartID)
	}
	return nil
}

// MakeCard renders a chart with its title and description inside a single
// link to the card's detail route.
func MakeCard(spec CardSpec) (*html.Node, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	figure, err := ChartFigure(spec.ChartID, spec.Chart)
	if err != nil {
		return nil, err
	}

	return El(atom.A, A(
		"class", "card",
		"href", spec.Href,
		"data-nav", "",
		"data-chart-id", spec.ChartID,
	),
		El(atom.Div, A("class", "card-body"),
			El(atom.H3, A("class", "card-title"), Text(spec.Title)),
			El(atom.P, A("class", "card-description"), Text(spec.Description)),
		),
		figure,
	), nil
}

// ChartFigure returns the container the client script draws a chart into.
// The figure travels alongside as an inline JSON payload.
func ChartFigure(chartID string, c *charts.Chart) (*html.Node, error) {
	fig, err := c.Figure()
	if err != nil {
		return nil, fmt.Errorf("encoding chart %s: %w", chartID, err)
	}
	// encoding/json escapes '<', so the payload cannot close the script early.
	return El(atom.Div, A("class", "chart", "id", "chart-"+chartID),
		El(atom.Script, A("type", "application/json", "class", "chart-figure"),
			Text(string(fig)),
		),
	), nil
}

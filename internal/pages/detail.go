package pages

import (
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/livingcost/internal/charts"
	c "github.com/ziadkadry99/livingcost/internal/components"
)

// detail describes a single-chart analysis page.
type detail struct {
	route   string
	title   string
	chartID string
	body    string
}

var healthcare = detail{
	route:   "/healthcare",
	title:   "Healthcare",
	chartID: "percentage_change_in_healthcare_cpi_and_income",
	body: `
The healthcare component of the CPI and median monthly income are both shown as
percentage change from 2019.

Income fell slightly in 2020 and recovered strongly in 2022. Healthcare prices
rose every year. By 2023 the cumulative increase in healthcare prices is larger
than the increase in income, which supports the first hypothesis.
`,
}

var taxes = detail{
	route:   "/taxes",
	title:   "Taxes",
	chartID: "cpi_vs_gst_line_bar",
	body: `
Bars show the GST rate on the right axis and the line shows the all-items CPI
(2019 = 100).

GST rose from 7% to 8% in 2023 and to 9% in 2024. Each step coincides with a rise
in the index. The increase is larger than a pure pass-through of the tax would
produce, so GST is one contributor among several.
`,
}

var necessities = detail{
	route:   "/necessities",
	title:   "Necessities",
	chartID: "necessities_cpi_vs_income",
	body: `
Food and housing & utilities are indexed to 2019 alongside an income index.

Food prices diverge from income from 2022 onward. Housing and utilities track
income more closely. Households that spend a large share of their budget on food
feel the increase most.
`,
}

var global = detail{
	route:   "/global",
	title:   "Global",
	chartID: "cpi_bubble_map",
	body: `
Bubble area is proportional to 2023 CPI inflation for each economy in the region.

Singapore sits in the middle of its neighbours. Inflation there is above
Thailand's and below the Philippines'. Regional comparison does not support the
idea that Singapore is an outlier.
`,
}

func detailPage(d detail) Page {
	return Page{Route: d.route, Title: d.title, Layout: d.layout}
}

// layout composes the write-up, the full-width chart, and the collapsible
// chart definition.
func (d detail) layout(l *charts.Loader) (*html.Node, error) {
	chart, err := l.LoadChart(charts.FileName(d.chartID))
	if err != nil {
		return nil, err
	}

	writeup, err := article(d.title, "detail", d.body)
	if err != nil {
		return nil, err
	}

	figure, err := c.ChartFigure(d.chartID, chart)
	if err != nil {
		return nil, err
	}

	definition, err := chartDefinition(chart)
	if err != nil {
		return nil, fmt.Errorf("chart %s definition: %w", d.chartID, err)
	}

	return c.El(atom.Div, c.A("class", "page page-detail", "data-chart-id", d.chartID),
		c.El(atom.Section, c.A("class", "section-writeup"), writeup),
		c.El(atom.Section, c.A("class", "section-chart chart-full"), figure),
		c.El(atom.Section, c.A("class", "section-definition"), definition),
		c.El(atom.Footer, nil,
			c.El(atom.A, c.A("href", "/", "data-nav", ""), c.Text("Back to overview")),
		),
	), nil
}

// chartDefinition shows the figure layout as highlighted JSON.
func chartDefinition(chart *charts.Chart) (*html.Node, error) {
	layout, err := json.MarshalIndent(chart.Layout, "", "  ")
	if err != nil {
		return nil, err
	}
	block, err := c.CodeBlock("json", string(layout))
	if err != nil {
		return nil, err
	}
	return c.El(atom.Details, nil,
		c.El(atom.Summary, nil, c.Text(fmt.Sprintf("Chart definition (%d traces)", len(chart.Data)))),
		block,
	), nil
}

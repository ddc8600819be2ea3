package pages

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ziadkadry99/livingcost/internal/charts"
	c "github.com/ziadkadry99/livingcost/internal/components"
)

// IntroductionCards are the overview cards on "/", in grid order.
var IntroductionCards = []CardMeta{
	{
		ChartID:     "percentage_change_in_healthcare_cpi_and_income",
		Title:       "Healthcare",
		Description: "How healthcare prices moved against household income.",
		Href:        "/healthcare",
	},
	{
		ChartID:     "cpi_vs_gst_line_bar",
		Title:       "Taxes",
		Description: "Consumer prices alongside each step of the GST increase.",
		Href:        "/taxes",
	},
	{
		ChartID:     "necessities_cpi_vs_income",
		Title:       "Necessities",
		Description: "Food, housing and utilities compared with income growth.",
		Href:        "/necessities",
	},
	{
		ChartID:     "cpi_bubble_map",
		Title:       "Global",
		Description: "Singapore's inflation next to its neighbours.",
		Href:        "/global",
	},
}

const introductionText = `
Prices in Singapore have risen sharply since 2021. This dashboard asks whether
that rise has outpaced what households earn, and where the pressure is felt most.

We test four hypotheses:

1. Healthcare costs have grown faster than median income.
2. The GST increases in 2023 and 2024 pushed up overall consumer prices.
3. Spending on necessities takes a growing share of income.
4. Singapore's inflation is high compared with the rest of the region.

Each card below summarises one hypothesis. Select a card for the full analysis.
`

const conclusionText = `
Income has mostly kept up with the headline index, but not with every category.
Healthcare and food have outpaced earnings since 2021, and the GST steps show up
directly in the all-items index. By regional standards Singapore's inflation is
moderate, so the pressure on households comes from the mix of what they buy more
than from the overall level.
`

// Introduction composes the overview page: an introduction, a grid with one
// card per chart, and a conclusion. Any chart failure fails the whole page.
func Introduction(l *charts.Loader) (*html.Node, error) {
	loaded, err := l.LoadAll(ChartNames(IntroductionCards)...)
	if err != nil {
		return nil, err
	}

	specs, err := CardSpecs(IntroductionCards, loaded)
	if err != nil {
		return nil, err
	}

	grid := c.El(atom.Div, c.A("class", "card-grid cols-4"))
	for _, spec := range specs {
		card, err := c.MakeCard(spec)
		if err != nil {
			return nil, err
		}
		c.Append(grid, card)
	}

	intro, err := article("Introduction", "introduction", introductionText)
	if err != nil {
		return nil, err
	}
	conclusion, err := article("Conclusion", "conclusion", conclusionText)
	if err != nil {
		return nil, err
	}

	return c.El(atom.Div, c.A("class", "page page-introduction"),
		c.El(atom.Section, c.A("class", "section-introduction"), intro),
		c.El(atom.Section, c.A("class", "section-cards"), grid),
		c.El(atom.Section, c.A("class", "section-conclusion"), conclusion),
	), nil
}

// article is a headed block of markdown prose.
func article(heading, class, body string) (*html.Node, error) {
	prose, err := c.Markdown("prose "+class, body)
	if err != nil {
		return nil, err
	}
	return c.El(atom.Article, nil,
		c.El(atom.Header, c.A("class", "section-header"),
			c.El(atom.H1, nil, c.Text(heading)),
		),
		prose,
	), nil
}

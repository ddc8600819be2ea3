package pages

import (
	"github.com/ziadkadry99/livingcost/internal/charts"
	"github.com/ziadkadry99/livingcost/internal/components"
)

// CardMeta is the static half of a card: everything except the chart itself.
type CardMeta struct {
	ChartID     string
	Title       string
	Description string
	Href        string
}

// ChartNames lists the chart IDs the cards need, in card order.
func ChartNames(metas []CardMeta) []string {
	names := make([]string, len(metas))
	for i, m := range metas {
		names[i] = m.ChartID
	}
	return names
}

// CardSpecs pairs each card with its loaded chart.
func CardSpecs(metas []CardMeta, loaded map[string]*charts.Chart) ([]components.CardSpec, error) {
	specs := make([]components.CardSpec, 0, len(metas))
	for _, m := range metas {
		c, ok := loaded[m.ChartID]
		if !ok {
			return nil, &LookupError{ChartID: m.ChartID}
		}
		specs = append(specs, components.CardSpec{
			ChartID:     m.ChartID,
			Chart:       c,
			Title:       m.Title,
			Description: m.Description,
			Href:        m.Href,
		})
	}
	return specs, nil
}

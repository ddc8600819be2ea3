package charts

import (
	"encoding/json"
	"strings"
)

// Trace is one Plotly trace: its type, encoding, and data columns.
type Trace map[string]any

// Chart is a pre-rendered chart specification as written by the offline
// chart pipeline: a list of traces plus a layout mapping.
type Chart struct {
	Data   []Trace        `json:"data"`
	Layout map[string]any `json:"layout"`
}

// Figure returns the chart as the JSON document Plotly.newPlot expects.
func (c *Chart) Figure() ([]byte, error) {
	return json.Marshal(c)
}

// Title returns the layout title text, if the figure has one.
// Plotly accepts both a bare string and a {"text": ...} object.
func (c *Chart) Title() string {
	switch t := c.Layout["title"].(type) {
	case string:
		return t
	case map[string]any:
		if s, ok := t["text"].(string); ok {
			return s
		}
	}
	return ""
}

// ID derives the chart identifier from an artifact file name.
func ID(name string) string {
	return strings.TrimSuffix(name, ".json")
}

// FileName returns the artifact file name for a chart identifier.
func FileName(id string) string {
	if strings.HasSuffix(id, ".json") {
		return id
	}
	return id + ".json"
}

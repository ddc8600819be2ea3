package config

import "github.com/ziadkadry99/livingcost/internal/shell"

// DefaultTitle is the heading shown above every page.
const DefaultTitle = "An Analysis of the Cost of Living in Singapore"

// DefaultConfigFile is where the wizard writes and commands read by default.
const DefaultConfigFile = ".livingcost.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AssetsDir: "assets/charts",
		Host:      "127.0.0.1",
		Port:      8050,
		Title:     DefaultTitle,
		PlotlyURL: shell.DefaultPlotlyURL,
	}
}

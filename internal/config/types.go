package config

// Config is the top-level livingcost configuration, corresponding to .livingcost.yml.
type Config struct {
	AssetsDir       string `yaml:"assets_dir" koanf:"assets_dir"`
	Host            string `yaml:"host" koanf:"host"`
	Port            int    `yaml:"port" koanf:"port"`
	Title           string `yaml:"title" koanf:"title"`
	PlotlyURL       string `yaml:"plotly_url" koanf:"plotly_url"`
	Debug           bool   `yaml:"debug" koanf:"debug"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

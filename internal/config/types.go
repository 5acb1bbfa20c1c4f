package config

// Config is the top-level menuview configuration, corresponding to
// .menuview.yml.
type Config struct {
	Catalog         string      `yaml:"catalog" koanf:"catalog"`
	Title           string      `yaml:"title" koanf:"title"`
	DefaultCategory string      `yaml:"default_category" koanf:"default_category"`
	About           string      `yaml:"about,omitempty" koanf:"about"`
	OutputDir       string      `yaml:"output_dir" koanf:"output_dir"`
	Port            int         `yaml:"port" koanf:"port"`
	Stats           StatsConfig `yaml:"stats" koanf:"stats"`
}

// StatsConfig controls the optional usage-stats store used by the serve
// command.
type StatsConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}

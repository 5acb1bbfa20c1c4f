package config

// DefaultPath is where the config file is looked up and written by
// default.
const DefaultPath = ".menuview.yml"

// DefaultCatalog is the catalog path used when none is configured,
// matching the fixed relative path the menu page has always fetched.
const DefaultCatalog = "menu-data.json"

// DefaultCategory is the category selected as the initial view after a
// successful load.
const DefaultCategory = "ird"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog:         DefaultCatalog,
		Title:           "Menu",
		DefaultCategory: DefaultCategory,
		OutputDir:       "site",
		Port:            8080,
		Stats: StatsConfig{
			Enabled: false,
			Path:    ".menuview/stats.db",
		},
	}
}

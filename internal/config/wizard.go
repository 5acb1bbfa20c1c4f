package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .menuview.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to menuview! Let's configure your menu site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Catalog path (or glob).
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog file (path or glob)",
		Default: cfg.Catalog,
	}
	catalog, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog prompt: %w", err)
	}
	cfg.Catalog = catalog

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	// 3. Default category.
	categoryPrompt := promptui.Prompt{
		Label:   "Default category key",
		Default: cfg.DefaultCategory,
	}
	category, err := categoryPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default category prompt: %w", err)
	}
	cfg.DefaultCategory = category

	// 4. Serve port.
	portPrompt := promptui.Prompt{
		Label:   "Serve port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port prompt: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Usage stats.
	statsPrompt := promptui.Select{
		Label: "Record usage stats while serving (sqlite)",
		Items: []string{"no", "yes"},
	}
	_, statsChoice, err := statsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("stats selection: %w", err)
	}
	cfg.Stats.Enabled = statsChoice == "yes"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultPath); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to " + DefaultPath)
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path, and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to livingcost! Let's configure the dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Where the chart artifacts live.
	assetsPrompt := promptui.Prompt{
		Label:    "Directory containing chart artifacts (*.json)",
		Default:  cfg.AssetsDir,
		Validate: validateNonEmpty,
	}
	assetsDir, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("assets dir: %w", err)
	}
	cfg.AssetsDir = assetsDir

	// 2. Listen port.
	portPrompt := promptui.Prompt{
		Label:    "Port to serve the dashboard on",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 3. Heading.
	titlePrompt := promptui.Prompt{
		Label:    "Dashboard title",
		Default:  cfg.Title,
		Validate: validateNonEmpty,
	}
	cfg.Title, err = titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	// 4. Bind address.
	hostPrompt := promptui.Select{
		Label: "Who can reach the dashboard",
		Items: []string{
			"localhost only (127.0.0.1)",
			"all interfaces (0.0.0.0)",
		},
	}
	hostIdx, _, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host selection: %w", err)
	}
	cfg.Host = []string{"127.0.0.1", "0.0.0.0"}[hostIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.AssetsDir); os.IsNotExist(err) {
		fmt.Printf("\nNote: %s does not exist yet. Put the exported chart JSON files there before running livingcost serve.\n", cfg.AssetsDir)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateNonEmpty(s string) error {
	if s == "" {
		return errors.New("value is required")
	}
	return nil
}

func validatePort(s string) error {
	p, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("port must be a number")
	}
	if p < 1 || p > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

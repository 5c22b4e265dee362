package conf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/catalystcommunity/bbvar/internal/conf"
	"github.com/urfave/cli/v3"
)

// ListCommand lists all available variable files
var ListCommand = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "List available variable files",
	Action:  runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	configDir, err := conf.GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		fmt.Printf("No configuration directory found at: %s\n", configDir)
		return nil
	}

	configs, err := conf.ListConfigs()
	if err != nil {
		return fmt.Errorf("failed to list variable files: %w", err)
	}

	if len(configs) == 0 {
		fmt.Printf("No variable files found in: %s\n", configDir)
		return nil
	}

	// Determine which file would be used by default
	defaultConfig := ""
	if path, err := conf.FindConfig(""); err == nil {
		defaultConfig = filepath.Base(path)
	}

	fmt.Printf("Variable files in %s:\n\n", configDir)

	for _, cfgPath := range configs {
		name := filepath.Base(cfgPath)
		marker := " "
		if name == defaultConfig {
			marker = "*"
		}

		d, err := conf.Load(cfgPath, nil)
		if err != nil {
			fmt.Printf("  %s %s (invalid: %v)\n", marker, name, err)
			continue
		}

		fmt.Printf("  %s %s (%d variables)\n", marker, name, d.Len())
	}

	if defaultConfig != "" {
		fmt.Printf("\n* = default file\n")
	}

	return nil
}

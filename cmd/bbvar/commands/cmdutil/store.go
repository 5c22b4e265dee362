// Package cmdutil holds helpers shared by the bbvar command groups.
package cmdutil

import (
	"fmt"

	"github.com/catalystcommunity/bbvar/internal/conf"
	"github.com/catalystcommunity/bbvar/internal/datastore"
	"github.com/urfave/cli/v3"
)

// ConfPath returns the variable file selected by the global --conf flag,
// falling back to the default file in the config directory.
func ConfPath(cmd *cli.Command) (string, error) {
	path := cmd.String("conf")
	if path == "" {
		found, err := conf.FindConfig("")
		if err != nil {
			return "", fmt.Errorf("no variable file specified and no default found: %w", err)
		}
		path = found
	}
	return path, nil
}

// Load reads path into a fresh store, honoring the global --overrides flag.
func Load(cmd *cli.Command, path string) (*datastore.DataStore, error) {
	d, err := conf.Load(path, conf.ParseOverrides(cmd.String("overrides")))
	if err != nil {
		return nil, fmt.Errorf("failed to load variable file: %w", err)
	}
	return d, nil
}

// LoadStore loads the globally selected variable file into a fresh store
// and returns the path it came from.
func LoadStore(cmd *cli.Command) (*datastore.DataStore, string, error) {
	path, err := ConfPath(cmd)
	if err != nil {
		return nil, "", err
	}
	d, err := Load(cmd, path)
	if err != nil {
		return nil, "", err
	}
	return d, path, nil
}

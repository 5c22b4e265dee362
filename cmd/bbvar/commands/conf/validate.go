package conf

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/urfave/cli/v3"
)

// ValidateCommand validates a variable file
var ValidateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Validate variable file syntax",
	ArgsUsage: "[variable-file]",
	Action:    runValidate,
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("conf")
	if cmd.Args().Len() > 0 {
		path = cmd.Args().First()
	}
	if path == "" {
		found, err := cmdutil.ConfPath(cmd)
		if err != nil {
			return err
		}
		path = found
	}

	d, err := cmdutil.Load(cmd, path)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Variable file is valid: %s\n", path)
	fmt.Printf("  Variables: %d\n", d.Len())

	return nil
}

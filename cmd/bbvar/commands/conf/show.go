package conf

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ShowCommand displays the resolved contents of a variable file
var ShowCommand = &cli.Command{
	Name:      "show",
	Usage:     "Display the resolved variables as YAML",
	ArgsUsage: "[variable-file]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "expand",
			Aliases: []string{"e"},
			Usage:   "expand ${NAME} references in values",
		},
	},
	Action: runShow,
}

func runShow(ctx context.Context, cmd *cli.Command) error {
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
		return err
	}

	vars := make(map[string]string, d.Len())
	for _, name := range d.Names() {
		value, _ := d.Get(name)
		if cmd.Bool("expand") {
			value = d.Expand(value)
		}
		vars[name] = value
	}

	data, err := yaml.Marshal(vars)
	if err != nil {
		return fmt.Errorf("failed to marshal variables: %w", err)
	}

	fmt.Printf("Variable file: %s\n", path)
	fmt.Println("---")
	fmt.Print(string(data))

	return nil
}

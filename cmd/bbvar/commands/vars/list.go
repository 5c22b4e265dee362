package vars

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/urfave/cli/v3"
)

// ListCommand dumps all variables in the store
var ListCommand = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "List all variables and their values",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "expand",
			Usage: "print values with ${NAME} references expanded",
		},
	},
	Action: runList,
}

func runList(ctx context.Context, cmd *cli.Command) error {
	d, path, err := cmdutil.LoadStore(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("# %s: %d variables\n", path, d.Len())
	for _, name := range d.Names() {
		value, _ := d.Get(name)
		if cmd.Bool("expand") {
			value = d.Expand(value)
		}
		fmt.Printf("%s = %q\n", name, value)
	}

	return nil
}

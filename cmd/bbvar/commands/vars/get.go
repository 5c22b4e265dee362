package vars

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/urfave/cli/v3"
)

// GetCommand prints the value of a single variable
var GetCommand = &cli.Command{
	Name:      "get",
	Usage:     "Print the value of a variable",
	ArgsUsage: "NAME",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "no-expand",
			Usage: "print the raw value without ${NAME} expansion",
		},
	},
	Action: runGet,
}

func runGet(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one variable name")
	}
	name := cmd.Args().First()

	d, _, err := cmdutil.LoadStore(cmd)
	if err != nil {
		return err
	}

	value, ok := d.GetVar(name, !cmd.Bool("no-expand"))
	if !ok {
		return fmt.Errorf("variable not set: %s", name)
	}

	fmt.Println(value)
	return nil
}

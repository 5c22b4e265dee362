package vars

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/catalystcommunity/bbvar/internal/bbutils"
	"github.com/urfave/cli/v3"
)

// ContainsCommand checks whether a variable's value includes a token
var ContainsCommand = &cli.Command{
	Name:      "contains",
	Usage:     "Check whether a variable's whitespace-separated value includes a token",
	ArgsUsage: "NAME TOKEN...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "if",
			Usage: "value to print when the token is present",
			Value: "true",
		},
		&cli.StringFlag{
			Name:  "else",
			Usage: "value to print when the token is absent or the variable is unset",
			Value: "false",
		},
		&cli.BoolFlag{
			Name:  "any",
			Usage: "succeed when any of the tokens is present",
		},
	},
	Action: runContains,
}

func runContains(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("expected a variable name and at least one token")
	}
	if len(args) > 2 && !cmd.Bool("any") {
		return fmt.Errorf("multiple tokens require --any")
	}
	name := args[0]
	tokens := strings.Join(args[1:], " ")

	d, _, err := cmdutil.LoadStore(cmd)
	if err != nil {
		return err
	}

	var result string
	if cmd.Bool("any") {
		result = bbutils.ContainsAny(d, name, tokens, cmd.String("if"), cmd.String("else"))
	} else {
		result = bbutils.Contains(d, name, tokens, cmd.String("if"), cmd.String("else"))
	}

	fmt.Println(result)
	return nil
}

package vars

import (
	"context"
	"fmt"
	"strings"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/catalystcommunity/bbvar/internal/bbutils"
	"github.com/urfave/cli/v3"
)

// FilterCommand prints the tokens present in a variable's value
var FilterCommand = &cli.Command{
	Name:      "filter",
	Usage:     "Print the given tokens that are present in a variable's value",
	ArgsUsage: "NAME TOKEN...",
	Action:    runFilter,
}

func runFilter(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("expected a variable name and at least one token")
	}

	d, _, err := cmdutil.LoadStore(cmd)
	if err != nil {
		return err
	}

	fmt.Println(bbutils.Filter(d, args[0], strings.Join(args[1:], " ")))
	return nil
}

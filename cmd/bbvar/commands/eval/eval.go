package eval

import (
	"context"
	"fmt"

	"github.com/catalystcommunity/bbvar/cmd/bbvar/commands/cmdutil"
	"github.com/catalystcommunity/bbvar/internal/inline"
	"github.com/urfave/cli/v3"
)

// Command evaluates an inline expression against a variable file
var Command = &cli.Command{
	Name:      "eval",
	Usage:     "Evaluate an inline expression such as ${@bb.utils.contains('DISTRO_FEATURES', 'systemd', 'yes', 'no', d)}",
	ArgsUsage: "EXPR",
	Action:    runEval,
}

func runEval(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one expression")
	}
	expr := cmd.Args().First()

	d, _, err := cmdutil.LoadStore(cmd)
	if err != nil {
		return err
	}

	result, ok := inline.NewEvaluator(d).Evaluate(expr)
	if !ok {
		return fmt.Errorf("cannot evaluate expression: %s", expr)
	}

	fmt.Println(result)
	return nil
}

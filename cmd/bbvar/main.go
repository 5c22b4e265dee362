package main

import (
	"context"
	"fmt"
	"os"

	confcmd "github.com/catalystcommunity/bbvar/cmd/bbvar/commands/conf"
	evalcmd "github.com/catalystcommunity/bbvar/cmd/bbvar/commands/eval"
	varscmd "github.com/catalystcommunity/bbvar/cmd/bbvar/commands/vars"
	"github.com/urfave/cli/v3"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "bbvar",
		Usage:   "Query and inspect build-system variable files",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "conf",
				Aliases: []string{"c"},
				Usage:   "path to variable file",
				Sources: cli.EnvVars("BBVAR_CONF"),
			},
			&cli.StringFlag{
				Name:    "overrides",
				Usage:   "colon-separated override names active in addition to OVERRIDES",
				Sources: cli.EnvVars("BBVAR_OVERRIDES"),
			},
		},
		Commands: []*cli.Command{
			varscmd.Command,
			confcmd.Command,
			evalcmd.Command,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

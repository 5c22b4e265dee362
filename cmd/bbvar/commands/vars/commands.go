package vars

import "github.com/urfave/cli/v3"

// Command is the top-level vars command
var Command = &cli.Command{
	Name:  "vars",
	Usage: "Query variables from a variable file",
	Commands: []*cli.Command{
		GetCommand,
		ContainsCommand,
		FilterCommand,
		ListCommand,
	},
}

package conf

import "github.com/urfave/cli/v3"

// Command is the top-level conf command
var Command = &cli.Command{
	Name:  "conf",
	Usage: "Manage variable files",
	Commands: []*cli.Command{
		ValidateCommand,
		ShowCommand,
		ListCommand,
	},
}

package runscript

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/pulseboard/backend/cmd/app/cli"
	script_create_schema "github.com/pulseboard/backend/cmd/app/cli/runscript/scripts/create_schema"
	script_sweep_activities "github.com/pulseboard/backend/cmd/app/cli/runscript/scripts/sweep_activities"
)

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "run-script",
		Description: "run maintenance go scripts",
		Subcommands: []*cli.Command{
			script_create_schema.Command(depsFn[script_create_schema.CommandDeps]()),
			script_sweep_activities.Command(depsFn[script_sweep_activities.CommandDeps]()),
		},
	}
}

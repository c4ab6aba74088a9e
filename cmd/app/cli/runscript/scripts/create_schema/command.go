package script_create_schema

import (
	"github.com/uptrace/bun"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

type CommandDeps struct {
	fx.In

	DB *bun.DB
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "create_schema",
		Description: "create the users and activities tables together with their indexes",
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn())
		},
	}
}

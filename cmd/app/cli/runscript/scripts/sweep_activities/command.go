package script_sweep_activities

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/service"
)

type CommandDeps struct {
	fx.In

	ActivityService *service.Activity
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:        "sweep_activities",
		Description: "delete activities older than the retention window, across all users",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "days",
				Usage: "retention window in days; activities created earlier are removed",
				Value: constant.DefaultRetentionDays,
			},
		},
		Action: func(ctx *cli.Context) error {
			return run(ctx, depsFn(), ctx.Int("days"))
		},
	}
}

package script_sweep_activities

import (
	"net/http"
	_ "net/http/pprof"

	"github.com/felixge/fgprof"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func run(ctx *cli.Context, deps CommandDeps, days int) error {
	http.DefaultServeMux.Handle("/debug/fgprof", fgprof.Handler())
	go func() {
		log.Print(http.ListenAndServe("127.0.0.1:6060", nil))
	}()

	if days <= 0 {
		return errors.Errorf("days must be positive, got %d", days)
	}

	log.Info().Int("days", days).Msg("running script")

	deleted, err := deps.ActivityService.PruneOlderThan(ctx.Context, days)
	if err != nil {
		return errors.Wrap(err, "failed to run sweepActivities")
	}

	log.Info().Int64("deleted", deleted).Msg("script finished")

	return nil
}

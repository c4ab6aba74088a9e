package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/cachectrl"
	"github.com/pulseboard/backend/internal/server/svr"
	"github.com/pulseboard/backend/internal/service"
	"github.com/pulseboard/backend/internal/util/rekuest"
)

type Stats struct {
	fx.In

	AuthService  *service.Auth
	StatsService *service.Stats
}

func RegisterStats(v1 *svr.V1, c Stats) {
	v1.Get("/dashboard/stats", c.GetStats)
}

// @Summary      Get Activity Stats
// @Tags         Stats
// @Produce      json
// @Param        start_date  query     string  false  "Inclusive first day of the window (YYYY-MM-DD)"
// @Param        end_date    query     string  false  "Inclusive last day of the window (YYYY-MM-DD)"
// @Success      200         {object}  model.ActivityStats
// @Failure      400         {object}  pberr.PulseError  "Malformed dates or an inverted window"
// @Failure      401         {object}  pberr.PulseError  "Missing or invalid credentials"
// @Security     BearerAuth
// @Router       /v1/dashboard/stats [GET]
func (c Stats) GetStats(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	var query types.ActivityStatsQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	stats, err := c.StatsService.GetUserStats(ctx.UserContext(), user.UserID, &query)
	if err != nil {
		return err
	}

	// Per-user aggregates must never be served from a shared cache.
	cachectrl.OptOut(ctx)

	return ctx.JSON(stats)
}

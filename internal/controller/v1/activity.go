package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/server/svr"
	"github.com/pulseboard/backend/internal/service"
	"github.com/pulseboard/backend/internal/util/rekuest"
)

type Activity struct {
	fx.In

	AuthService     *service.Auth
	ActivityService *service.Activity
}

func RegisterActivity(v1 *svr.V1, c Activity) {
	dashboard := v1.Group("/dashboard")

	dashboard.Post("/activities", c.Create)
	dashboard.Get("/activities", c.List)
	dashboard.Get("/activities/:activityId", c.GetByID)
	dashboard.Delete("/activities/:activityId", c.Delete)
}

// @Summary      Record an Activity
// @Tags         Activity
// @Accept       json
// @Produce      json
// @Param        activity  body      types.CreateActivityRequest  true  "Activity to record"
// @Success      201       {object}  model.Activity
// @Failure      400       {object}  pberr.PulseError  "Invalid activity payload"
// @Failure      401       {object}  pberr.PulseError  "Missing or invalid credentials"
// @Security     BearerAuth
// @Router       /v1/dashboard/activities [POST]
func (c Activity) Create(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	var req types.CreateActivityRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	activity, err := c.ActivityService.Create(ctx.UserContext(), user, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(activity)
}

// @Summary      List Activities
// @Tags         Activity
// @Produce      json
// @Param        limit        query     int     false  "Page size. Defaults to 50"
// @Param        offset       query     int     false  "Rows to skip from the newest record"
// @Param        action_type  query     string  false  "Only return activities of this type"
// @Success      200          {array}   model.Activity
// @Failure      400          {object}  pberr.PulseError  "Invalid pagination or filter values"
// @Failure      401          {object}  pberr.PulseError  "Missing or invalid credentials"
// @Security     BearerAuth
// @Router       /v1/dashboard/activities [GET]
func (c Activity) List(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	var query types.ListActivitiesQuery
	if err := rekuest.ValidQuery(ctx, &query); err != nil {
		return err
	}

	activities, err := c.ActivityService.List(ctx.UserContext(), user, &query)
	if err != nil {
		return err
	}

	return ctx.JSON(activities)
}

// @Summary      Get an Activity with ID
// @Tags         Activity
// @Produce      json
// @Param        activityId  path      int  true  "Activity ID"
// @Success      200         {object}  model.Activity
// @Failure      400         {object}  pberr.PulseError  "Invalid or missing activityId"
// @Failure      404         {object}  pberr.PulseError  "The activity does not exist, or belongs to another account"
// @Security     BearerAuth
// @Router       /v1/dashboard/activities/{activityId} [GET]
func (c Activity) GetByID(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	activityID, err := ctx.ParamsInt("activityId")
	if err != nil {
		return pberr.ErrInvalidReq.Msg("invalid or missing activityId")
	}

	activity, err := c.ActivityService.GetForUser(ctx.UserContext(), user, activityID)
	if err != nil {
		return err
	}

	return ctx.JSON(activity)
}

// @Summary      Delete an Activity
// @Tags         Activity
// @Produce      json
// @Param        activityId  path  int  true  "Activity ID"
// @Success      204         "The activity was removed"
// @Failure      404         {object}  pberr.PulseError  "The activity does not exist, or belongs to another account"
// @Security     BearerAuth
// @Router       /v1/dashboard/activities/{activityId} [DELETE]
func (c Activity) Delete(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	activityID, err := ctx.ParamsInt("activityId")
	if err != nil {
		return pberr.ErrInvalidReq.Msg("invalid or missing activityId")
	}

	if err := c.ActivityService.DeleteForUser(ctx.UserContext(), user, activityID); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

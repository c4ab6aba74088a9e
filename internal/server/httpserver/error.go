package httpserver

import (
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/pkg/pberr"
)

func HandleCustomError(ctx *fiber.Ctx, e *pberr.PulseError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	// Bearer challenge so clients know which credential scheme to retry with
	if e.StatusCode == fiber.StatusUnauthorized {
		ctx.Set(fiber.HeaderWWWAuthenticate, constant.BearerAuthScheme)
	}

	// Provide error code if pberr.PulseError type
	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	// Use custom error handler to return JSON error responses
	if e, ok := err.(*pberr.PulseError); ok {
		return HandleCustomError(ctx, e)
	}

	// Return default error handler
	// Default 500 statuscode
	re := *pberr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		// Overwrite status code if fiber.Error type & provided code
		re.StatusCode = e.Code
		re.ErrorCode = "UNKNOWN_ERROR"
		re.Message = e.Message
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	if hub := fibersentry.GetHubFromContext(ctx); hub != nil {
		hub.Scope().SetTag("status", strconv.Itoa(re.StatusCode))
		if u, ok := ctx.Locals(constant.LocalsUserKey).(*model.User); ok {
			hub.Scope().SetUser(sentry.User{
				ID: strconv.Itoa(u.UserID),
			})
		}
		hub.CaptureException(err)
	}

	return HandleCustomError(ctx, &re)
}

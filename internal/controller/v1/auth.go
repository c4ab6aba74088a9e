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

type Auth struct {
	fx.In

	AuthService *service.Auth
}

func RegisterAuth(v1 *svr.V1, c Auth) {
	auth := v1.Group("/auth")
	auth.Post("/register", c.Register)
	auth.Post("/login", c.Login)
	auth.Get("/me", c.Me)
}

// @Summary      Register Account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        account  body      types.RegisterRequest  true  "Registration payload"
// @Success      201      {object}  types.TokenResponse
// @Failure      400      {object}  pberr.PulseError  "Invalid payload, or the email or username is already registered"
// @Router       /v1/auth/register [POST]
func (c Auth) Register(ctx *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	token, err := c.AuthService.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(token)
}

// @Summary      Log In
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      types.LoginRequest  true  "Login credentials"
// @Success      200          {object}  types.TokenResponse
// @Failure      401          {object}  pberr.PulseError  "Incorrect email or password"
// @Router       /v1/auth/login [POST]
func (c Auth) Login(ctx *fiber.Ctx) error {
	var req types.LoginRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	token, err := c.AuthService.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(token)
}

// @Summary      Get Current Account
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  model.User
// @Failure      401  {object}  pberr.PulseError  "Missing or invalid credentials"
// @Security     BearerAuth
// @Router       /v1/auth/me [GET]
func (c Auth) Me(ctx *fiber.Ctx) error {
	user, err := c.AuthService.UserFromRequest(ctx)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)

	return ctx.JSON(user)
}

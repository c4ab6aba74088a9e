package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/pulseboard/backend/internal/app/appconfig"
	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/model/types"
	"github.com/pulseboard/backend/internal/pkg/pberr"
	"github.com/pulseboard/backend/internal/repo"
)

type Auth struct {
	UserRepo *repo.User

	secret []byte
	expiry time.Duration
}

func NewAuth(conf *appconfig.Config, userRepo *repo.User) *Auth {
	return &Auth{
		UserRepo: userRepo,
		secret:   []byte(conf.JWTSecret),
		expiry:   conf.AccessTokenExpiry,
	}
}

// Register provisions a new user and issues its first token. Email and
// username collisions each get their own message; the insert stays guarded
// by the unique indexes for registrations racing past these checks.
func (s *Auth) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if _, err := s.UserRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, pberr.ErrConstraint.Msg("email already registered")
	} else if !errors.Is(err, pberr.ErrNotFound) {
		return nil, err
	}

	if _, err := s.UserRepo.GetByUsername(ctx, req.Username); err == nil {
		return nil, pberr.ErrConstraint.Msg("username already taken")
	} else if !errors.Is(err, pberr.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info().
		Str("evt.name", "user.register").
		Int("userId", user.UserID).
		Msg("registered new user")

	return s.issueToken(user)
}

// Login authenticates by email. The same error covers an unknown email and
// a wrong password so probing gains no signal about which one failed.
func (s *Auth) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UserRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pberr.ErrNotFound) {
			return nil, pberr.ErrUnauthorized.Msg("incorrect email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, pberr.ErrUnauthorized.Msg("incorrect email or password")
	}

	return s.issueToken(user)
}

// UserFromRequest authenticates a request from its Authorization header in
// the form "Bearer <token>". The resolved user is memoized in ctx.Locals so
// later stages of the same request see it without re-verifying.
func (s *Auth) UserFromRequest(ctx *fiber.Ctx) (*model.User, error) {
	if u, ok := ctx.Locals(constant.LocalsUserKey).(*model.User); ok {
		return u, nil
	}

	header := ctx.Get(fiber.HeaderAuthorization)
	if header == "" {
		return nil, pberr.ErrUnauthorized.Msg("missing credentials")
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, constant.BearerAuthScheme) {
		return nil, pberr.ErrUnauthorized.Msg("unsupported authorization scheme")
	}

	user, err := s.UserFromToken(ctx.UserContext(), strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}

	ctx.Locals(constant.LocalsUserKey, user)
	return user, nil
}

// UserFromToken verifies a compact token and resolves its subject to a live
// user. Every defect (bad signature, expiry, wrong issuer, stale subject)
// collapses into the unauthorized error.
func (s *Auth) UserFromToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(constant.TokenIssuer),
	)
	if err != nil {
		return nil, pberr.ErrUnauthorized
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, pberr.ErrUnauthorized
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, pberr.ErrUnauthorized
	}

	return user, nil
}

func (s *Auth) issueToken(user *model.User) (*types.TokenResponse, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    constant.TokenIssuer,
		Subject:   strconv.Itoa(user.UserID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &types.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

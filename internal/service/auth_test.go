package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/backend/internal/constant"
	"github.com/pulseboard/backend/internal/model"
	"github.com/pulseboard/backend/internal/pkg/pberr"
)

func newTestAuth(expiry time.Duration) *Auth {
	return &Auth{
		secret: []byte("0123456789abcdef0123456789abcdef"),
		expiry: expiry,
	}
}

func TestIssueTokenCarriesExpectedClaims(t *testing.T) {
	s := newTestAuth(30 * time.Minute)

	resp, err := s.issueToken(&model.User{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, constant.TokenIssuer, claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	s := newTestAuth(time.Minute)

	_, err := s.UserFromToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, pberr.ErrUnauthorized)
}

func TestUserFromTokenRejectsExpired(t *testing.T) {
	s := newTestAuth(-time.Minute)

	resp, err := s.issueToken(&model.User{UserID: 7})
	require.NoError(t, err)

	_, err = s.UserFromToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, pberr.ErrUnauthorized)
}

func TestUserFromTokenRejectsForeignIssuer(t *testing.T) {
	s := newTestAuth(time.Minute)

	claims := jwt.RegisteredClaims{
		Issuer:    "somewhere-else",
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.UserFromToken(context.Background(), token)
	assert.ErrorIs(t, err, pberr.ErrUnauthorized)
}

func TestUserFromTokenRejectsUnexpectedAlgorithm(t *testing.T) {
	s := newTestAuth(time.Minute)

	claims := jwt.RegisteredClaims{
		Issuer:    constant.TokenIssuer,
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.UserFromToken(context.Background(), token)
	assert.ErrorIs(t, err, pberr.ErrUnauthorized)
}

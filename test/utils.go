package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/xid"
	"github.com/uptrace/bun"

	"github.com/pulseboard/backend/internal/repo"
)

func ensureSchema(db *bun.DB) error {
	return repo.CreateSchema(context.Background(), db)
}

func bodyString(resp *http.Response) string {
	body := resp.Body
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "[!] error: failed to read response body: " + err.Error()
	}

	return string(bodyBytes)
}

func uniqueName() string {
	return "it_" + xid.New().String()
}

func jsonRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()

	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatal(err)
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type activityOut struct {
	ID          int            `json:"id"`
	UserID      int            `json:"user_id"`
	ActionType  string         `json:"action_type"`
	Description *string        `json:"description"`
	ExtraData   map[string]any `json:"extra_data"`
	CreatedAt   string         `json:"created_at"`
}

type statsOut struct {
	TotalCount       int            `json:"total_count"`
	ByType           map[string]int `json:"by_type"`
	ByDate           map[string]int `json:"by_date"`
	MostCommonAction *string        `json:"most_common_action"`
}

type testAccount struct {
	Username string
	Email    string
	Password string
	Token    string
}

// mustRegister provisions a throwaway account so tests stay independent
// of each other and of leftover rows from previous runs.
func mustRegister(t *testing.T) *testAccount {
	t.Helper()

	acct := &testAccount{
		Username: uniqueName(),
		Password: "a-sufficiently-long-password",
	}
	acct.Email = acct.Username + "@example.com"

	resp := request(t, jsonRequest(t, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"username": acct.Username,
		"email":    acct.Email,
		"password": acct.Password,
	}, ""))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register returned %d: %s", resp.StatusCode, bodyString(resp))
	}

	var token tokenResponse
	decodeBody(t, resp, &token)
	if token.AccessToken == "" {
		t.Fatal("register returned an empty access token")
	}
	acct.Token = token.AccessToken

	return acct
}

func mustCreateActivity(t *testing.T, acct *testAccount, actionType string) *activityOut {
	t.Helper()

	resp := request(t, jsonRequest(t, http.MethodPost, "/api/v1/dashboard/activities", fiber.Map{
		"action_type": actionType,
	}, acct.Token))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create activity returned %d: %s", resp.StatusCode, bodyString(resp))
	}

	var activity activityOut
	decodeBody(t, resp, &activity)

	return &activity
}

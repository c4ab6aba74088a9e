package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/dashboard/activities", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "10", r.URL.Query().Get("offset"))
		assert.Equal(t, "login", r.URL.Query().Get("action_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("tok-123")

	activities, err := client.ListActivities(context.Background(), ListOptions{Limit: 5, Offset: 10, ActionType: "login"})
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestClientRegisterStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "quartz", body["username"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"access_token":"issued-token","token_type":"bearer"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	grant, err := client.Register(context.Background(), "quartz", "quartz@example.com", "a-long-password")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", grant.AccessToken)
	assert.Equal(t, "bearer", grant.TokenType)
	assert.Equal(t, "issued-token", client.Token())
}

func TestClientDecodesErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND","message":"activity not found"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	_, err := client.GetActivity(context.Background(), 7)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "activity not found", apiErr.Message)
	assert.True(t, IsNotFound(err))
}

func TestClientExpiresCredentialOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"token expired"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	client.SetToken("worn-out")

	expirations := 0
	client.OnAuthExpired = func() {
		expirations++
	}

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.Token())
	assert.Equal(t, 1, expirations)

	// Without a stored credential there is nothing left to expire.
	_, err = client.Me(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, expirations)
}

func TestClientStatsWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/dashboard/stats", r.URL.Path)
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("end_date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total_count":4,"by_type":{"login":4},"by_date":{"2024-01-02":4},"most_common_action":"login"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	stats, err := client.Stats(context.Background(), StatsWindow{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, map[string]int{"login": 4}, stats.ByType)
	if assert.NotNil(t, stats.MostCommonAction) {
		assert.Equal(t, "login", *stats.MostCommonAction)
	}
}

func TestClientDeleteActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/dashboard/activities/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.DeleteActivity(context.Background(), 7))
}

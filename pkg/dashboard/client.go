// Package dashboard is the client-side library for the Pulseboard API: a
// thin HTTP Client plus a Feed state container suitable for backing an
// interactive activity dashboard.
package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// TokenGrant is the credential issued by register and login.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the profile of the authenticated account.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity is one recorded action as the API returns it.
type Activity struct {
	ID          int            `json:"id"`
	UserID      int            `json:"user_id"`
	ActionType  string         `json:"action_type"`
	Description *string        `json:"description"`
	ExtraData   map[string]any `json:"extra_data"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ActivityStats is the aggregated view over an account's activities.
type ActivityStats struct {
	TotalCount       int            `json:"total_count"`
	ByType           map[string]int `json:"by_type"`
	ByDate           map[string]int `json:"by_date"`
	MostCommonAction *string        `json:"most_common_action"`
}

// ActivityDraft is the payload for recording a new activity.
type ActivityDraft struct {
	ActionType  string         `json:"action_type"`
	Description string         `json:"description,omitempty"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
}

// ListOptions narrows an activity listing. Zero values are omitted from the
// request so the server defaults apply.
type ListOptions struct {
	Limit      int
	Offset     int
	ActionType string
}

// StatsWindow bounds a stats aggregation to an inclusive calendar-day range.
// Dates use the YYYY-MM-DD layout. Empty fields leave that side unbounded.
type StatsWindow struct {
	StartDate string
	EndDate   string
}

// APIError is a structured error payload returned by the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error (%d %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is the server telling us the record does
// not exist, which for another owner's record it deliberately also does.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks to a Pulseboard server. Register and Login store the issued
// token on the client; every subsequent request carries it as a bearer
// credential. A 401 from the server clears the stored token and fires
// OnAuthExpired, after which the embedding UI owns the re-login flow.
type Client struct {
	baseURL string
	httpc   *http.Client

	mu    sync.Mutex
	token string

	// OnAuthExpired fires at most once per stored credential. Assign it
	// before issuing requests.
	OnAuthExpired func()
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken replaces the credential attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently stored credential, if any.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) expireAuth() {
	c.mu.Lock()
	hadCredential := c.token != ""
	c.token = ""
	c.mu.Unlock()

	if hadCredential && c.OnAuthExpired != nil {
		c.OnAuthExpired()
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		if resp.StatusCode == http.StatusUnauthorized {
			c.expireAuth()
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}

	return nil
}

// Register creates an account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, username, email, password string) (*TokenGrant, error) {
	var grant TokenGrant
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, &grant)
	if err != nil {
		return nil, err
	}

	c.SetToken(grant.AccessToken)
	return &grant, nil
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenGrant, error) {
	var grant TokenGrant
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &grant)
	if err != nil {
		return nil, err
	}

	c.SetToken(grant.AccessToken)
	return &grant, nil
}

// Me returns the profile behind the stored credential.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateActivity records a new activity for the authenticated user.
func (c *Client) CreateActivity(ctx context.Context, draft *ActivityDraft) (*Activity, error) {
	var activity Activity
	if err := c.do(ctx, http.MethodPost, "/api/v1/dashboard/activities", draft, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// ListActivities returns one page of the authenticated user's activities,
// newest first.
func (c *Client) ListActivities(ctx context.Context, opts ListOptions) ([]*Activity, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.ActionType != "" {
		q.Set("action_type", opts.ActionType)
	}

	path := "/api/v1/dashboard/activities"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var activities []*Activity
	if err := c.do(ctx, http.MethodGet, path, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivity returns a single activity owned by the authenticated user.
func (c *Client) GetActivity(ctx context.Context, id int) (*Activity, error) {
	var activity Activity
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/dashboard/activities/%d", id), nil, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteActivity removes a single activity owned by the authenticated user.
func (c *Client) DeleteActivity(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/dashboard/activities/%d", id), nil, nil)
}

// Stats returns the aggregated stats for the authenticated user, optionally
// bounded to a calendar-day window.
func (c *Client) Stats(ctx context.Context, window StatsWindow) (*ActivityStats, error) {
	q := url.Values{}
	if window.StartDate != "" {
		q.Set("start_date", window.StartDate)
	}
	if window.EndDate != "" {
		q.Set("end_date", window.EndDate)
	}

	path := "/api/v1/dashboard/stats"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var stats ActivityStats
	if err := c.do(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

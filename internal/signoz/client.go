package signoz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the address of a local SigNoz installation.
const DefaultBaseURL = "http://localhost:3301"

// DefaultTimeout bounds every HTTP call unless overridden via --timeout.
const DefaultTimeout = 30 * time.Second

const apiPrefix = "/api/v1"

// APIError is a decoded error envelope from the SigNoz API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("API returned %d - [%s] %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("API returned %d: %s", e.StatusCode, e.Message)
}

// Client is the SigNoz dashboard API client.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL. The token may be empty
// for unauthenticated calls such as login.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// Login exchanges email and password for a JWT access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, apiPrefix+"/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if resp.AccessJWT == "" {
		return "", fmt.Errorf("login failed: no access token in response")
	}
	return resp.AccessJWT, nil
}

// ListDashboards fetches all dashboards visible to the token.
func (c *Client) ListDashboards(ctx context.Context) ([]Dashboard, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/dashboards", nil, &resp); err != nil {
		return nil, fmt.Errorf("listing dashboards: %w", err)
	}
	return resp.Data, nil
}

// DeleteDashboard deletes a dashboard by its uuid.
func (c *Client) DeleteDashboard(ctx context.Context, uuid string) error {
	if err := c.do(ctx, http.MethodDelete, apiPrefix+"/dashboards/"+uuid, nil, nil); err != nil {
		return fmt.Errorf("deleting dashboard %s: %w", uuid, err)
	}
	return nil
}

// AddDashboard uploads a dashboard payload and returns the created uuid.
func (c *Client) AddDashboard(ctx context.Context, dashboard map[string]any) (string, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, apiPrefix+"/dashboards", dashboard, &resp); err != nil {
		return "", fmt.Errorf("adding dashboard: %w", err)
	}
	if resp.Data.UUID != "" {
		return resp.Data.UUID, nil
	}
	if resp.Data.ID != nil {
		return fmt.Sprint(resp.Data.ID), nil
	}
	return "", fmt.Errorf("adding dashboard: no uuid in response")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func decodeAPIError(status int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
	}
	msg := envelope.Error
	if msg == "" {
		msg = envelope.Message
	}
	if msg == "" {
		msg = "unknown error"
	}
	return &APIError{StatusCode: status, Type: envelope.ErrorType, Message: msg}
}

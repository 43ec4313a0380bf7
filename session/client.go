package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayoisaiah/zenfocus/activity"
	"github.com/ayoisaiah/zenfocus/internal/identity"
	"github.com/ayoisaiah/zenfocus/stats"
)

// TokenSource returns the bearer token that authenticates the current user.
type TokenSource interface {
	Token() string
}

// Client talks to the aggregator service over HTTP. The user is identified
// by the bearer token; the userID arguments must match its subject.
type Client struct {
	tokens  TokenSource
	ids     identity.Provider
	client  *http.Client
	baseURL string
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient returns a client for the service at baseURL.
func NewClient(
	baseURL string,
	timeout time.Duration,
	ids identity.Provider,
	tokens TokenSource,
) (*Client, error) {
	if baseURL == "" {
		return nil, errNoAggregator
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		ids:     ids,
		tokens:  tokens,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) RecordCompletion(ctx context.Context, userID, date string) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}

	body := map[string]string{"date": date}

	err := c.do(ctx, userID, http.MethodPost, "/api/sessions", nil, body, &resp)
	if err != nil {
		return "", err
	}

	return resp.ID, nil
}

func (c *Client) QueryRange(
	ctx context.Context,
	userID, start, end string,
) ([]activity.Record, error) {
	var resp struct {
		Sessions []activity.Record `json:"sessions"`
	}

	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)

	err := c.do(ctx, userID, http.MethodGet, "/api/sessions", query, nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Sessions, nil
}

func (c *Client) QueryStats(ctx context.Context, userID, today string) (stats.Summary, error) {
	var resp struct {
		Stats stats.Summary `json:"stats"`
	}

	query := url.Values{}
	query.Set("today", today)

	err := c.do(ctx, userID, http.MethodGet, "/api/stats", query, nil, &resp)
	if err != nil {
		return stats.Summary{}, err
	}

	return resp.Stats, nil
}

func (c *Client) do(
	ctx context.Context,
	userID, method, path string,
	query url.Values,
	in, out any,
) error {
	if user, ok := c.ids.Current(); !ok || user.ID != userID {
		return errUnexpectedUser.Fmt(user.ID, userID)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return errRequestFailed.Fmt(resp.StatusCode, apiErr.Error.Message)
		}

		return errRequestFailed.Fmt(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

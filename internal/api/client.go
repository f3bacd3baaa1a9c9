package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"

	"github.com/aniqaqill/runners-list-scraper/internal/event"
	"github.com/aniqaqill/runners-list-scraper/internal/logger"
)

const (
	defaultTimeout  = 30 * time.Second
	defaultAttempts = 3
)

// AuthError indicates the API rejected the key. It is never retried.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("API authentication failed: %s", e.Message)
}

// RequestError is a non-retryable rejection (4xx other than 401, or an
// explicit error payload the server will keep returning).
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

// SyncResult is the API's accounting of one sync call.
type SyncResult struct {
	Success  bool   `json:"success"`
	Inserted int    `json:"inserted"`
	Updated  int    `json:"updated"`
	Total    int    `json:"total"`
	Error    string `json:"error,omitempty"`
}

// Client syncs extracted events to the backend API. Server errors, timeouts
// and connection failures are retried with exponential backoff; 401 and other
// client errors fail immediately.
type Client struct {
	http            *resty.Client
	url             string
	apiKey          string
	maxAttempts     uint64
	initialInterval time.Duration
}

// New creates a Client for the given sync endpoint.
func New(apiURL, apiKey string) *Client {
	return &Client{
		http:            resty.New().SetTimeout(defaultTimeout),
		url:             apiURL,
		apiKey:          apiKey,
		maxAttempts:     defaultAttempts,
		initialInterval: 2 * time.Second,
	}
}

// Sync POSTs the events to the sync endpoint as {"events": [...]} and returns
// the server's insert/update accounting.
func (c *Client) Sync(ctx context.Context, events []*event.Event) (*SyncResult, error) {
	payload := map[string]interface{}{"events": events}

	var result SyncResult
	attempt := 0

	operation := func() error {
		attempt++
		logger.Info("Sending events to API", logger.Fields{
			"count":   len(events),
			"attempt": attempt,
		})

		result = SyncResult{}
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("X-Internal-Token", c.apiKey).
			SetBody(payload).
			SetResult(&result).
			Post(c.url)
		if err != nil {
			// Timeout or connection failure: retryable
			return fmt.Errorf("sending request: %w", err)
		}

		switch {
		case resp.StatusCode() == http.StatusUnauthorized:
			return backoff.Permanent(&AuthError{Message: errorMessage(resp.Body())})
		case resp.StatusCode() >= http.StatusInternalServerError:
			return fmt.Errorf("server error %d", resp.StatusCode())
		case resp.StatusCode() != http.StatusOK:
			return backoff.Permanent(&RequestError{
				StatusCode: resp.StatusCode(),
				Message:    string(resp.Body()),
			})
		}

		if !result.Success {
			return fmt.Errorf("API error: %s", errorMessage(resp.Body()))
		}

		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.initialInterval

	notify := func(err error, wait time.Duration) {
		logger.Warn("API sync attempt failed, will retry", logger.Fields{
			"error": err.Error(),
			"wait":  wait.String(),
		})
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.maxAttempts-1), ctx),
		notify)
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully synced events", logger.Fields{
		"inserted": result.Inserted,
		"updated":  result.Updated,
		"total":    result.Total,
	})
	return &result, nil
}

// errorMessage pulls the "error" field out of a JSON error body, falling back
// to a generic message.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "Unknown error"
}

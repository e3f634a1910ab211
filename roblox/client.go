package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Client carries the transport shared by the per-service API clients.
// It is safe for concurrent use; every call is a single blocking
// request/response round trip.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
}

// NewClient creates a shared transport client.
func NewClient(opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		httpClient: httpClient,
		logger:     options.logger,
		userAgent:  options.userAgent,
	}
}

// Logger returns the logger the client was configured with.
func (c *Client) Logger() zerolog.Logger {
	return c.logger
}

// get performs one GET request and returns the raw body of a 200
// response. mapErr converts a non-200 status and its body into the
// error surfaced to the caller.
func (c *Client) get(ctx context.Context, rawURL string, mapErr func(int, []byte) error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().Str("url", rawURL).Msg("Making Roblox API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, mapErr(resp.StatusCode, body)
	}

	return body, nil
}

// Get fetches a single resource and decodes the response body into T.
// Fields absent from the response keep their zero value; a body that is
// not valid JSON fails with ErrTransport.
func Get[T any](ctx context.Context, c *Client, rawURL string) (*T, error) {
	body, err := c.get(ctx, rawURL, statusError)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, transportError(fmt.Errorf("failed to parse response: %w", err))
	}

	return &out, nil
}

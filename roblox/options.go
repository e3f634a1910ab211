package roblox

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "bloxgo (+https://github.com/Developer-X-0001/bloxgo)"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout    time.Duration
	httpClient *http.Client
	logger     zerolog.Logger
	userAgent  string
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   defaultTimeout,
		logger:    zerolog.Nop(),
		userAgent: defaultUserAgent,
	}
}

// WithTimeout sets the HTTP client timeout, covering connect and read.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// WithTimeout has no effect when a custom client is supplied.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithLogger attaches a logger; every outbound request is logged at
// debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

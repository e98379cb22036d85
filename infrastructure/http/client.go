// Package http provides shared HTTP client construction.
package http

import (
	"net/http"
	"time"
)

const (
	// DefaultTimeout is the default overall request timeout.
	DefaultTimeout = 30 * time.Second

	defaultMaxIdleConns          = 10
	defaultIdleConnTimeout       = 90 * time.Second
	defaultTLSHandshakeTimeout   = 10 * time.Second
	defaultResponseHeaderTimeout = 30 * time.Second
)

// ClientConfig configures an HTTP client. Zero values select defaults.
type ClientConfig struct {
	// Timeout limits the whole request, including reading the body.
	Timeout time.Duration

	// DisableKeepAlives closes the connection after each request.
	DisableKeepAlives bool
}

// NewClient creates an HTTP client with bounded timeouts.
func NewClient(cfg ClientConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          defaultMaxIdleConns,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: min(timeout, defaultResponseHeaderTimeout),
		DisableKeepAlives:     cfg.DisableKeepAlives,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// Package api is a thin client for the storefront HTTP API. It performs no
// schema validation of responses beyond JSON decoding and never retries.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-storefront-client/users"
	"golang.org/x/oauth2"
)

// SessionStore is the slice of the session store the client uses.
type SessionStore interface {
	Save(ctx context.Context, token string, user *users.User) error
	Clear(ctx context.Context) error
	OAuth2Token(ctx context.Context) *oauth2.Token
}

// SessionExpiredHandler is told when an authenticated call was rejected with
// 401, after the session has been cleared. Implementations typically
// navigate to the login page.
type SessionExpiredHandler interface {
	SessionExpired(ctx context.Context)
}

// SessionExpiredFunc adapts a function to SessionExpiredHandler.
type SessionExpiredFunc func(ctx context.Context)

func (f SessionExpiredFunc) SessionExpired(ctx context.Context) {
	f(ctx)
}

// Client talks to the remote API rooted at baseURL.
type Client struct {
	baseURL   string
	http      *http.Client
	sessions  SessionStore
	onExpired SessionExpiredHandler
	userAgent string

	middleware []Middleware
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithSessionExpiredHandler(h SessionExpiredHandler) Option {
	return func(c *Client) {
		c.onExpired = h
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func New(baseURL string, sessions SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{},
		sessions:  sessions,
		userAgent: "go-storefront-client",
	}
	for _, opt := range opts {
		opt(c)
	}
	if len(c.middleware) > 0 {
		hc := *c.http
		hc.Transport = ChainTransport(hc.Transport, c.middleware...)
		c.http = &hc
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

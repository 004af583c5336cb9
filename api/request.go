package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const contentTypeJSON = "application/json"

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// send executes req. Non-2xx statuses become *RequestFailedError; network
// failures and undecodable bodies become *TransportError. When out is nil the
// body of a successful response is discarded.
func (c *Client) send(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &TransportError{Method: req.Method, URL: req.URL.String(), Err: fmt.Errorf("read body: %w", err)}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &RequestFailedError{
			Method: req.Method,
			URL:    req.URL.String(),
			Status: res.StatusCode,
			Body:   string(data),
		}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &TransportError{Method: req.Method, URL: req.URL.String(), Err: errors.New("empty response body")}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Method: req.Method, URL: req.URL.String(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// Do sends an unauthenticated request.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// DoAuthenticated sends a request carrying the stored bearer token, if any.
// A 401 answer clears the session, notifies the expiry handler once and
// returns an error matching ErrSessionExpired. Every call that needs a
// session goes through here.
func (c *Client) DoAuthenticated(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if tok := c.sessions.OAuth2Token(ctx); tok != nil {
		tok.SetAuthHeader(req)
	}

	err = c.send(req, out)
	if status, ok := StatusCode(err); ok && status == http.StatusUnauthorized {
		c.expireSession(ctx, req)
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return err
}

func (c *Client) expireSession(ctx context.Context, req *http.Request) {
	log.Warn().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Msg("session rejected by API, logging out")

	// The session must go even if the caller's context is already done.
	if err := c.sessions.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to clear expired session")
	}
	if c.onExpired != nil {
		c.onExpired.SessionExpired(ctx)
	}
}

// bearer builds a token for an explicit credential that is not the stored
// session, such as an admin creating another account.
func bearer(token string) *oauth2.Token {
	if token == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
}

package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Middleware decorates the transport of the underlying HTTP client.
type Middleware func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// ChainTransport wraps base so that mw[0] sees the request first.
func ChainTransport(base http.RoundTripper, mw ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	chained := base
	for i := len(mw) - 1; i >= 0; i-- {
		chained = mw[i](chained)
	}
	return chained
}

// WithTransportMiddleware installs mw around the client's transport. It is
// applied after WithHTTPClient regardless of option order, on a copy of the
// supplied client.
func WithTransportMiddleware(mw ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, mw...)
	}
}

// LoggingMiddleware logs every exchange at debug level.
func LoggingMiddleware(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		start := time.Now()
		res, err := next.RoundTrip(r)
		evt := log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get("X-Request-ID")).
			Dur("elapsed", time.Since(start))
		if err != nil {
			evt.Err(err).Msg("api request failed")
			return nil, err
		}
		evt.Int("status", res.StatusCode).Msg("api request")
		return res, nil
	})
}

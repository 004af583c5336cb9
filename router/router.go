package router

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// maxRedirects bounds redirect chains so a misconfigured table cannot loop.
const maxRedirects = 5

// Navigation describes a completed navigation.
type Navigation struct {
	From       string
	Requested  string
	To         string
	Redirected bool
	Reason     Reason
}

// Router holds the current location and runs the guard on every transition.
type Router struct {
	guard *Guard

	mu        sync.Mutex
	current   string
	history   []string
	listeners map[int]func(Navigation)
	nextID    int
}

func New(guard *Guard) *Router {
	return &Router{
		guard:     guard,
		current:   RouteHome,
		listeners: make(map[int]func(Navigation)),
	}
}

// Navigate moves to path, following guard redirects.
func (r *Router) Navigate(ctx context.Context, path string) Navigation {
	requested := NormalizePath(path)
	target := requested
	nav := Navigation{Requested: requested, Reason: ReasonAllowed}

	for hop := 0; ; hop++ {
		d := r.guard.Evaluate(ctx, target)
		if d.Allow {
			break
		}
		if hop >= maxRedirects {
			log.Error().Str("requested", requested).Str("target", target).Msg("redirect limit reached, staying put")
			target = ""
			break
		}
		log.Debug().Str("from", target).Str("to", d.Redirect).Str("reason", string(d.Reason)).Msg("navigation redirected")
		if !nav.Redirected {
			nav.Reason = d.Reason
		}
		nav.Redirected = true
		target = NormalizePath(d.Redirect)
	}

	r.mu.Lock()
	nav.From = r.current
	if target == "" {
		target = r.current
	}
	nav.To = target
	if target != r.current {
		r.history = append(r.history, r.current)
		r.current = target
	}
	listeners := make([]func(Navigation), 0, len(r.listeners))
	for _, fn := range r.listeners {
		listeners = append(listeners, fn)
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(nav)
	}
	return nav
}

// Current returns the current location.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns previously visited locations, oldest first.
func (r *Router) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// OnNavigate registers fn to run after every navigation.
func (r *Router) OnNavigate(fn func(Navigation)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

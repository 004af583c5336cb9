// Package cart keeps the single shared cart state in step with the remote
// cart. Only Store mutates the state; consumers read snapshots.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/go-storefront-client/catalog"
	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// LoadErrorMessage is the LastError text after a failed refresh.
const LoadErrorMessage = "failed to load cart"

const refreshKey = "refresh"

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=../internal/mocks/cart_remote_mock.go github.com/jrsteele09/go-storefront-client/cart Remote

// Remote is the server-side cart.
type Remote interface {
	GetCart(ctx context.Context) ([]Item, error)
	UpdateCartItem(ctx context.Context, serviceID catalog.ServiceID, quantity int) error
	RemoveCartItem(ctx context.Context, serviceID catalog.ServiceID) error
}

// TokenSource reports whether a session token is present.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// Store owns the cart state.
//
// Mutations are serialized, so a second SetQuantity waits for the first one's
// write and refresh to finish. Every fetch takes a sequence number when it
// starts and its result is applied only if no later fetch has been applied
// already, so an older response can never overwrite a newer one.
//
// Subscribers are notified in order once the operation that changed the
// state has released its locks, so they may call back into the Store.
type Store struct {
	remote Remote
	tokens TokenSource

	mutations sync.Mutex
	refreshes singleflight.Group

	mu        sync.Mutex
	state     State
	issued    uint64
	applied   uint64
	inflight  int
	listeners map[int]func(State)
	nextID    int
	pending   []State
	draining  bool
}

func NewStore(remote Remote, tokens TokenSource) *Store {
	return &Store{
		remote:    remote,
		tokens:    tokens,
		state:     State{}.withItems(nil),
		listeners: make(map[int]func(State)),
	}
}

// State returns a snapshot of the cart.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe calls fn with a snapshot after every state change. Snapshots
// arrive in the order the changes happened, on the goroutine of whichever
// caller is delivering at the time.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Refresh reloads the cart from the server. Without a session the cart is
// emptied and nil is returned. On failure the cart is emptied, LastError is
// set and the error is returned. Concurrent calls share one fetch.
func (s *Store) Refresh(ctx context.Context) error {
	defer s.flush()
	return s.refresh(ctx)
}

func (s *Store) refresh(ctx context.Context) error {
	_, err, _ := s.refreshes.Do(refreshKey, func() (any, error) {
		return nil, s.fetch(ctx)
	})
	return err
}

// SetQuantity updates one line on the server and then reloads the whole cart.
// Without a session it does nothing. If the remote update fails the state is
// left untouched and the error is logged and returned.
func (s *Store) SetQuantity(ctx context.Context, serviceID catalog.ServiceID, quantity int) error {
	if !s.hasSession(ctx) {
		return nil
	}
	if quantity < 1 {
		return fmt.Errorf("[Store.SetQuantity] %w", apperrors.ErrInvalidQuantity)
	}
	return s.mutate(ctx, "set_quantity", serviceID, func(ctx context.Context) error {
		return s.remote.UpdateCartItem(ctx, serviceID, quantity)
	})
}

// RemoveItem deletes one line on the server and then reloads the whole cart.
// Same contract as SetQuantity.
func (s *Store) RemoveItem(ctx context.Context, serviceID catalog.ServiceID) error {
	if !s.hasSession(ctx) {
		return nil
	}
	return s.mutate(ctx, "remove_item", serviceID, func(ctx context.Context) error {
		return s.remote.RemoveCartItem(ctx, serviceID)
	})
}

func (s *Store) hasSession(ctx context.Context) bool {
	_, ok := s.tokens.Token(ctx)
	return ok
}

func (s *Store) mutate(ctx context.Context, op string, serviceID catalog.ServiceID, write func(context.Context) error) error {
	if serviceID == "" {
		return fmt.Errorf("[Store.%s] %w", op, apperrors.ErrInvalidServiceID)
	}

	// Deferred first so it runs after the mutation lock is released.
	defer s.flush()
	s.mutations.Lock()
	defer s.mutations.Unlock()

	if err := write(ctx); err != nil {
		log.Error().Err(err).Str("op", op).Str("service_id", serviceID.String()).Msg("cart update failed")
		return fmt.Errorf("[Store.%s] %w", op, err)
	}

	// A refresh already in flight may have read the cart before this write,
	// so start a new one instead of joining it.
	s.refreshes.Forget(refreshKey)
	if err := s.refresh(ctx); err != nil {
		return fmt.Errorf("[Store.%s] refresh: %w", op, err)
	}
	return nil
}

func (s *Store) fetch(ctx context.Context) error {
	seq := s.begin()
	finished := false
	defer func() {
		// Clears IsLoading even if the remote panics.
		if !finished {
			s.finish(seq, []Item{}, LoadErrorMessage)
		}
	}()

	if !s.hasSession(ctx) {
		s.finish(seq, []Item{}, "")
		finished = true
		return nil
	}

	items, err := s.remote.GetCart(ctx)
	if err != nil {
		log.Error().Err(err).Msg("cart refresh failed")
		s.finish(seq, []Item{}, LoadErrorMessage)
		finished = true
		return err
	}
	s.finish(seq, items, "")
	finished = true
	return nil
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.inflight++
	s.state.IsLoading = true
	s.state.LastError = ""
	s.pending = append(s.pending, s.state.clone())
	return s.issued
}

// finish applies a fetch result unless a later fetch has already been
// applied, and clears IsLoading once nothing is in flight.
func (s *Store) finish(seq uint64, items []Item, lastError string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if seq > s.applied {
		s.applied = seq
		s.state = s.state.withItems(items)
		s.state.LastError = lastError
	} else {
		log.Debug().Uint64("seq", seq).Uint64("applied", s.applied).Msg("discarding stale cart response")
	}
	s.state.IsLoading = s.inflight > 0
	s.pending = append(s.pending, s.state.clone())
}

// flush delivers queued snapshots. Only one caller drains at a time; a
// flush that finds another drainer active leaves its snapshots to it, which
// also covers a subscriber that triggers a change from inside its callback.
func (s *Store) flush() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.draining = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			done = true
			s.mu.Unlock()
			return
		}
		snapshot := s.pending[0]
		s.pending = s.pending[1:]
		listeners := make([]func(State), 0, len(s.listeners))
		for _, fn := range s.listeners {
			listeners = append(listeners, fn)
		}
		s.mu.Unlock()

		for _, fn := range listeners {
			fn(snapshot.clone())
		}
	}
}

package sessions

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// Store reads and writes the session through a Storage backend.
// It performs no network I/O of its own.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

// Save replaces any existing session with token and user in a single write.
func (s *Store) Save(ctx context.Context, token string, user *users.User) error {
	if token == "" {
		return apperrors.Wrapf(apperrors.ErrInvalidSession, "[Store.Save] empty token")
	}
	if user == nil {
		return apperrors.Wrapf(apperrors.ErrInvalidSession, "[Store.Save] missing user")
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("[Store.Save] encode user: %w", err)
	}
	if err := s.storage.Set(ctx, map[string]string{
		KeyToken: token,
		KeyUser:  string(raw),
	}); err != nil {
		return fmt.Errorf("[Store.Save] %w", err)
	}
	return nil
}

// Clear removes the session. Clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("[Store.Clear] %w", err)
	}
	return nil
}

// Token returns the stored bearer token. Storage failures read as absent.
func (s *Store) Token(ctx context.Context) (string, bool) {
	values, err := s.storage.Get(ctx, KeyToken)
	if err != nil {
		log.Warn().Err(err).Msg("session storage read failed")
		return "", false
	}
	token, ok := values[KeyToken]
	return token, ok && token != ""
}

// User returns the stored profile, or false when it is absent or malformed.
func (s *Store) User(ctx context.Context) (*users.User, bool) {
	values, err := s.storage.Get(ctx, KeyUser)
	if err != nil {
		log.Warn().Err(err).Msg("session storage read failed")
		return nil, false
	}
	user := decodeUser(values[KeyUser])
	return user, user != nil
}

// Current returns token and user from one storage read.
func (s *Store) Current(ctx context.Context) Session {
	values, err := s.storage.Get(ctx, KeyToken, KeyUser)
	if err != nil {
		log.Warn().Err(err).Msg("session storage read failed")
		return Session{}
	}
	return Session{
		Token: values[KeyToken],
		User:  decodeUser(values[KeyUser]),
	}
}

// OAuth2Token wraps the stored token for use with SetAuthHeader.
// It returns nil when no token is stored.
func (s *Store) OAuth2Token(ctx context.Context) *oauth2.Token {
	token, ok := s.Token(ctx)
	if !ok {
		return nil
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}
}

func decodeUser(raw string) *users.User {
	if raw == "" {
		return nil
	}
	var user *users.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Debug().Err(err).Msg("discarding malformed stored user")
		return nil
	}
	return user
}

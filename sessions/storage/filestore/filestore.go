// Package filestore keeps the session in a single JSON file on disk.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/rs/zerolog/log"
)

var _ sessions.Storage = (*Store)(nil)

// Store is a sessions.Storage backed by one JSON document. Every write
// rewrites the whole document through a temporary file and a rename, so a
// reader never sees half of a multi-key update.
type Store struct {
	path   string
	sealer *Sealer
	mu     sync.Mutex
}

// New creates the parent directory if needed. A nil key disables sealing.
func New(path string, key []byte) (*Store, error) {
	if path == "" {
		return nil, errors.New("[filestore.New] path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("[filestore.New] create folder: %w", err)
	}
	s := &Store{path: path}
	if key != nil {
		sealer, err := NewSealer(key)
		if err != nil {
			return nil, fmt.Errorf("[filestore.New] %w", err)
		}
		s.sealer = sealer
	}
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		stored, ok := doc[k]
		if !ok {
			continue
		}
		value, ok := s.open(k, stored)
		if !ok {
			continue
		}
		out[k] = value
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range values {
		stored, err := s.seal(k, v)
		if err != nil {
			return fmt.Errorf("seal %q: %w", k, err)
		}
		doc[k] = stored
	}
	return s.write(doc)
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	changed := false
	for _, k := range keys {
		if _, ok := doc[k]; ok {
			delete(doc, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.write(doc)
}

// load returns an empty document for a missing or corrupt file.
func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", apperrors.ErrStorageUnavailable, s.path, err)
	}
	doc := map[string]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("session file is corrupt, starting empty")
		return map[string]string{}, nil
	}
	return doc, nil
}

func (s *Store) write(doc map[string]string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", apperrors.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %w", apperrors.ErrStorageUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync temp file: %w", apperrors.ErrStorageUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: replace %s: %w", apperrors.ErrStorageUnavailable, s.path, err)
	}
	return nil
}

func (s *Store) seal(key, value string) (string, error) {
	if s.sealer == nil {
		return value, nil
	}
	return s.sealer.Seal(key, []byte(value))
}

func (s *Store) open(key, stored string) (string, bool) {
	if s.sealer == nil {
		return stored, true
	}
	plain, err := s.sealer.Open(key, stored)
	if err != nil {
		log.Debug().Err(err).Str("key", key).Msg("discarding unreadable sealed value")
		return "", false
	}
	return string(plain), true
}

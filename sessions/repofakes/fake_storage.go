package fakesessionrepo

import (
	"context"
	"fmt"
	"sync"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/sessions"
)

var _ sessions.Storage = (*FakeStorage)(nil)

// FakeStorage is an in-memory sessions.Storage. It also backs the
// "memory" session backend, where nothing survives the process.
type FakeStorage struct {
	values map[string]string
	err    error
	lock   sync.RWMutex
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		values: make(map[string]string),
	}
}

func (fs *FakeStorage) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()

	if fs.err != nil {
		return nil, fs.err
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := fs.values[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (fs *FakeStorage) Set(ctx context.Context, values map[string]string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.err != nil {
		return fs.err
	}
	for k, v := range values {
		fs.values[k] = v
	}
	return nil
}

func (fs *FakeStorage) Delete(ctx context.Context, keys ...string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if fs.err != nil {
		return fs.err
	}
	for _, k := range keys {
		delete(fs.values, k)
	}
	return nil
}

// Put writes a raw value, bypassing the session encoding. Tests use it to
// plant malformed data.
func (fs *FakeStorage) Put(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.values[key] = value
}

// Raw returns the stored value for key.
func (fs *FakeStorage) Raw(key string) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	v, ok := fs.values[key]
	return v, ok
}

// FailWith makes every subsequent call return err; nil restores normal operation.
func (fs *FakeStorage) FailWith(err error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.err = err
}

// ErrUnavailable is a convenience error for FailWith.
var ErrUnavailable = fmt.Errorf("fake storage: %w", apperrors.ErrStorageUnavailable)

package redisstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/jrsteele09/go-storefront-client/sessions/storage/redisstore"
	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/stretchr/testify/require"
)

// setupTestRedis connects to REDIS_ADDR. Tests are skipped when it is unset
// or unreachable.
func setupTestRedis(t *testing.T) *redisstore.Store {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	prefix := "storefront:test:" + uuid.NewString() + ":"
	store, err := redisstore.Dial(ctx, addr, os.Getenv("REDIS_PASSWORD"), 0, prefix)
	if err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Delete(context.Background(), sessions.KeyToken, sessions.KeyUser, "a", "b")
		_ = store.Close()
	})
	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()

	got, err := store.Get(ctx, "a", "b")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, store.Set(ctx, map[string]string{"a": "1", "b": "2"}))

	got, err = store.Get(ctx, "a", "b")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, got)

	require.NoError(t, store.Delete(ctx, "a", "b"))
	require.NoError(t, store.Delete(ctx, "a", "b"))

	got, err = store.Get(ctx, "a", "b")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_SessionRoundTrip(t *testing.T) {
	store := setupTestRedis(t)
	ctx := context.Background()
	sessionStore := sessions.NewStore(store)

	require.NoError(t, sessionStore.Save(ctx, "T1", &users.User{ID: "u-1", Role: users.RoleClient}))
	current := sessionStore.Current(ctx)
	require.Equal(t, "T1", current.Token)
	require.Equal(t, users.ID("u-1"), current.User.ID)

	require.NoError(t, sessionStore.Clear(ctx))
	require.False(t, sessionStore.Current(ctx).Authenticated())
}

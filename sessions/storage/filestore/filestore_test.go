package filestore_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/jrsteele09/go-storefront-client/sessions/storage/filestore"
	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{7}, 32)
}

func TestStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store, err := filestore.New(path, nil)
	require.NoError(t, err)

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, store.Set(ctx, map[string]string{"token": "T1", "user": `{"id":"u-1"}`}))

	got, err = store.Get(ctx, "token", "user", "missing")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"token": "T1", "user": `{"id":"u-1"}`}, got)

	require.NoError(t, store.Delete(ctx, "token", "user"))
	require.NoError(t, store.Delete(ctx, "token", "user"))

	got, err = store.Get(ctx, "token", "user")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := filestore.New(path, nil)
	require.NoError(t, err)
	require.NoError(t, sessions.NewStore(first).Save(ctx, "T1", &users.User{ID: "u-1", Role: users.RoleAdmin}))

	second, err := filestore.New(path, nil)
	require.NoError(t, err)
	current := sessions.NewStore(second).Current(ctx)
	require.Equal(t, "T1", current.Token)
	require.True(t, current.IsAdmin())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_CorruptFileReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o600))

	store, err := filestore.New(path, nil)
	require.NoError(t, err)

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, store.Set(ctx, map[string]string{"token": "T2"}))
	got, err = store.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "T2", got["token"])
}

func TestStore_UnreadableFileIsStorageUnavailable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.Mkdir(path, 0o700))

	store, err := filestore.New(path, nil)
	require.NoError(t, err)

	_, err = store.Get(ctx, "token")
	require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	require.ErrorIs(t, store.Set(ctx, map[string]string{"token": "T1"}), apperrors.ErrStorageUnavailable)
}

func TestStore_Sealed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := filestore.New(path, testKey())
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, map[string]string{"token": "secret-token"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret-token")
	require.Contains(t, string(raw), "v1:")

	got, err := store.Get(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "secret-token", got["token"])

	t.Run("wrong key reads as absent", func(t *testing.T) {
		other, err := filestore.New(path, bytes.Repeat([]byte{9}, 32))
		require.NoError(t, err)

		got, err := other.Get(ctx, "token")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("plaintext file read with key reads as absent", func(t *testing.T) {
		plainPath := filepath.Join(t.TempDir(), "plain.json")
		require.NoError(t, os.WriteFile(plainPath, []byte(`{"token":"T1"}`), 0o600))

		sealed, err := filestore.New(plainPath, testKey())
		require.NoError(t, err)

		got, err := sealed.Get(ctx, "token")
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestNew_Validation(t *testing.T) {
	_, err := filestore.New("", nil)
	require.Error(t, err)

	_, err = filestore.New(filepath.Join(t.TempDir(), "s.json"), []byte("short"))
	require.ErrorIs(t, err, apperrors.ErrInvalidKey)
}

func TestSealer_BindsKeyName(t *testing.T) {
	sealer, err := filestore.NewSealer(testKey())
	require.NoError(t, err)

	sealed, err := sealer.Seal("token", []byte("T1"))
	require.NoError(t, err)

	plain, err := sealer.Open("token", sealed)
	require.NoError(t, err)
	require.Equal(t, "T1", string(plain))

	_, err = sealer.Open("user", sealed)
	require.Error(t, err)
}

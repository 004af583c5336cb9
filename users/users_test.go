package users_test

import (
	"encoding/json"
	"testing"

	"github.com/jrsteele09/go-storefront-client/users"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want users.RoleType
	}{
		{"admin", users.RoleAdmin},
		{" ADMIN ", users.RoleAdmin},
		{"client", users.RoleClient},
		{"", users.RoleClient},
		{"superuser", users.RoleClient},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, users.ParseRole(tt.in))
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	var nilUser *users.User
	require.False(t, nilUser.IsAdmin())
	require.False(t, (&users.User{Role: users.RoleClient}).IsAdmin())
	require.True(t, (&users.User{Role: users.RoleAdmin}).IsAdmin())
}

func TestUser_DisplayName(t *testing.T) {
	require.Equal(t, "Ana", (&users.User{Name: "Ana", Email: "ana@example.com"}).DisplayName())
	require.Equal(t, "ana@example.com", (&users.User{Email: "ana@example.com"}).DisplayName())
}

func TestUser_DecodesStringOrNumericID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want users.ID
	}{
		{"string", `{"id":"u-1"}`, "u-1"},
		{"number", `{"id":7}`, "7"},
		{"null", `{"id":null}`, ""},
		{"missing", `{}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u users.User
			require.NoError(t, json.Unmarshal([]byte(tt.in), &u))
			require.Equal(t, tt.want, u.ID)
		})
	}

	var u users.User
	require.Error(t, json.Unmarshal([]byte(`{"id":{"n":1}}`), &u))
}

func TestRoleType_Valid(t *testing.T) {
	require.True(t, users.RoleClient.Valid())
	require.True(t, users.RoleAdmin.Valid())
	require.False(t, users.RoleType("owner").Valid())
	require.False(t, users.RoleType("").Valid())
}

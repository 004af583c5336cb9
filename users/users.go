package users

import (
	"fmt"
	"strings"

	"github.com/jrsteele09/go-storefront-client/internal/utils"
)

// RoleType is the account role assigned by the remote API.
type RoleType string

const (
	RoleClient RoleType = "client" // Regular shopper
	RoleAdmin  RoleType = "admin"  // Can open the admin dashboard and create admins
)

// ParseRole normalises a role string; anything unrecognised is a client.
func ParseRole(s string) RoleType {
	if RoleType(strings.ToLower(strings.TrimSpace(s))) == RoleAdmin {
		return RoleAdmin
	}
	return RoleClient
}

func (r RoleType) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// ID identifies a user. The API sends it either as a string or as a number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := utils.StringOrNumber(data)
	if err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	*id = ID(s)
	return nil
}

func (id ID) String() string {
	return string(id)
}

// User is the profile returned by the remote API alongside a token.
type User struct {
	ID    ID       `json:"id,omitempty"`    // Identifier assigned by the API
	Name  string   `json:"name,omitempty"`  // Display name
	Email string   `json:"email,omitempty"` // Login email
	Role  RoleType `json:"role,omitempty"`  // client or admin
}

// IsAdmin returns true if the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

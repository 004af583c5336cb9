package sessions

import (
	"github.com/jrsteele09/go-storefront-client/users"
)

// Storage keys. Both are written and removed together.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Session is the authenticated identity held for this client process.
// A zero Session means nobody is logged in.
type Session struct {
	Token string      // Opaque bearer token issued by /auth/login
	User  *users.User // Profile saved with the token; nil when absent or unreadable
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.User.IsAdmin()
}

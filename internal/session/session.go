// Package session holds the client-side proof of authentication and its
// on-disk persistence.
package session

import "strings"

// User is the profile record returned by the auth endpoints.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is the bearer token plus the user it belongs to. A Session is
// created on successful auth, destroyed on logout, and rehydrated from the
// Store at startup.
type Session struct {
	Token string
	User  User
}

// Valid reports whether the session carries both a token and a user.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User.Email != ""
}

// DisplayName returns the user's name, falling back to the email.
func (s *Session) DisplayName() string {
	if !s.Valid() {
		return "Guest"
	}
	if s.User.Name != "" {
		return s.User.Name
	}
	return s.User.Email
}

// AvatarInitial returns the single uppercase character shown in the avatar.
func (s *Session) AvatarInitial() string {
	name := s.DisplayName()
	if name == "" || name == "Guest" {
		return "?"
	}
	return strings.ToUpper(name[:1])
}

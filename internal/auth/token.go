// Package auth inspects bearer tokens client-side. The backend remains the
// authority; this only surfaces informational claims in the UI.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the profile view can show about the current token.
type TokenInfo struct {
	ExpiresAt time.Time // zero when the token carries no exp claim
	Subject   string
}

// Inspect parses the token without verifying its signature and extracts the
// expiry and subject claims. Opaque (non-JWT) tokens yield ok=false, which
// is not an error; the token is still used as-is.
func Inspect(token string) (TokenInfo, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, false
	}

	var info TokenInfo
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	return info, true
}

// LooksExpired reports whether the token carries an exp claim in the past.
// Tokens without a readable exp claim never look expired.
func LooksExpired(token string) bool {
	info, ok := Inspect(token)
	if !ok || info.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().After(info.ExpiresAt)
}

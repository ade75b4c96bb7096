package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return s
}

func TestInspectReadsExpAndSubject(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"sub": "jo@example.com",
		"exp": exp.Unix(),
	})

	info, ok := Inspect(token)
	if !ok {
		t.Fatal("Inspect failed on a valid JWT")
	}
	if info.Subject != "jo@example.com" {
		t.Errorf("Subject: got %q", info.Subject)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt: got %v, want %v", info.ExpiresAt, exp)
	}
}

func TestInspectOpaqueTokenIsNotAnError(t *testing.T) {
	if _, ok := Inspect("not-a-jwt"); ok {
		t.Error("expected ok=false for opaque token")
	}
}

func TestLooksExpired(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{"expired", signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()}), true},
		{"valid", signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}), false},
		{"no exp claim", signedToken(t, jwt.MapClaims{"sub": "jo"}), false},
		{"opaque", "opaque-token", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LooksExpired(tc.token); got != tc.want {
				t.Errorf("LooksExpired: got %v, want %v", got, tc.want)
			}
		})
	}
}

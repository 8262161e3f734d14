package utils

import (
	"errors"
	"testing"
	"time"
)

func TestSessionToken_IssueAndParse(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("super-secret", "user-123", "alice", 168)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	if tok.Token == "" {
		t.Fatalf("empty token string")
	}
	if got, want := tok.Exp, time.Now().UTC().Add(168*time.Hour); got.Sub(want) > time.Minute || want.Sub(got) > time.Minute {
		t.Fatalf("expiry not ~168h out: got %v", got)
	}

	claims, err := ParseSessionToken("super-secret", tok.Token)
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("user id mismatch: got %q", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q", claims.Username)
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	// A negative TTL produces a token whose expiry is already in the past,
	// which is exactly what a 168h token looks like at T+169h.
	tok, err := NewSessionToken("secret", "u1", "alice", -1)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	if _, err := ParseSessionToken("secret", tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewSessionToken("right-secret", "u2", "bob", 1)
	if err != nil {
		t.Fatalf("NewSessionToken error: %v", err)
	}
	if _, err := ParseSessionToken("wrong-secret", tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseSessionToken("k", "not.a.jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}

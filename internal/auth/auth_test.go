package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGate_Login(t *testing.T) {
	gate := NewGate("test-secret", "admin", "hunter2", 12*time.Hour)

	t.Run("Valid credentials", func(t *testing.T) {
		token, err := gate.Login("admin", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if token == "" {
			t.Fatal("Expected a token, got empty string")
		}

		principal, err := gate.Authorize(token)
		if err != nil {
			t.Fatalf("Authorize failed on fresh token: %v", err)
		}
		if principal != "admin" {
			t.Errorf("Expected principal admin, got %s", principal)
		}
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := gate.Login("admin", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Wrong username", func(t *testing.T) {
		_, err := gate.Login("root", "hunter2")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestGate_Authorize(t *testing.T) {
	gate := NewGate("test-secret", "admin", "hunter2", 12*time.Hour)

	t.Run("Missing token", func(t *testing.T) {
		_, err := gate.Authorize("")
		if !errors.Is(err, ErrMissingToken) {
			t.Errorf("Expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := gate.Authorize("not.a.token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Token signed with other secret", func(t *testing.T) {
		other := NewGate("other-secret", "admin", "hunter2", 12*time.Hour)
		token, err := other.Login("admin", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		_, err = gate.Authorize(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Expired token", func(t *testing.T) {
		// Correctly signed but already past its expiry.
		expired := NewGate("test-secret", "admin", "hunter2", -time.Minute)
		token, err := expired.Login("admin", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		_, err = gate.Authorize(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
		}
	})
}

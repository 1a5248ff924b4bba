package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name      string
		username  string
		password  string
		reentered string
		wantErr   error
	}{
		{"ok", "masha", "password123", "password123", nil},
		{"empty username", "   ", "password123", "password123", ErrUsernameRequired},
		{"long username", strings.Repeat("a", 31), "password123", "password123", ErrUsernameTooLong},
		{"mismatch", "masha", "password123", "password124", ErrPasswordMismatch},
		{"mismatch wins over length", "masha", "short", "other", ErrPasswordMismatch},
		{"too short", "masha", "short12", "short12", ErrPasswordTooShort},
		{"exactly eight", "masha", "12345678", "12345678", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateRegistration(c.username, c.password, c.reentered)
			if !errors.Is(err, c.wantErr) {
				t.Errorf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("password stored in plaintext")
	}

	if err := CheckPassword(hash, "correct horse battery"); err != nil {
		t.Errorf("expected match, got %v", err)
	}

	err = CheckPassword(hash, "wrong password")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("expected ErrInvalidPassword, got %v", err)
	}
}

package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
)

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"  Alice@Example.COM ": "alice@example.com",
		"bob@example.com":      "bob@example.com",
		"":                     "",
	}
	for input, want := range cases {
		if got := NormalizeEmail(input); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidateCredentials(t *testing.T) {
	if err := ValidateCredentials("Alice", "alice@example.com", "secret123"); err != nil {
		t.Fatalf("expected valid credentials, got %v", err)
	}

	invalid := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"blank name", "  ", "alice@example.com", "secret123"},
		{"missing at sign", "Alice", "alice.example.com", "secret123"},
		{"missing domain dot", "Alice", "alice@example", "secret123"},
		{"space in email", "Alice", "ali ce@example.com", "secret123"},
		{"short password", "Alice", "alice@example.com", "12345"},
	}
	for _, tc := range invalid {
		err := ValidateCredentials(tc.userName, tc.email, tc.password)
		if !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

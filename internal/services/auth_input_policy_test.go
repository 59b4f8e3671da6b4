package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  Alice@Example.COM ", want: "alice@example.com"},
		{name: "already normalized", raw: "bob@example.com", want: "bob@example.com"},
		{name: "not an address", raw: "just-a-name", want: ""},
		{name: "blank input", raw: " \t ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput("  Alice@Example.COM ", "  pw123  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", email)
	}
	if password != "pw123" {
		t.Fatalf("expected trimmed password, got %q", password)
	}

	for _, bad := range [][2]string{
		{"just-a-name", "pw123"},
		{"alice@example.com", "   "},
		{"", "pw123"},
	} {
		if _, _, err := NormalizeCredentialsInput(bad[0], bad[1]); !errors.Is(err, ErrAuthCredentialsInvalid) {
			t.Fatalf("expected ErrAuthCredentialsInvalid for %q/%q, got %v", bad[0], bad[1], err)
		}
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "upper lower digit", password: "StrongPass1", wantErr: false},
		{name: "too short", password: "Ab1", wantErr: true},
		{name: "no digit", password: "StrongPass", wantErr: true},
		{name: "no upper", password: "strongpass1", wantErr: true},
		{name: "no lower", password: "STRONGPASS1", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := ValidatePasswordStrength(testCase.password)
			if testCase.wantErr && !errors.Is(err, ErrWeakPassword) {
				t.Fatalf("expected ErrWeakPassword, got %v", err)
			}
			if !testCase.wantErr && err != nil {
				t.Fatalf("expected valid password, got %v", err)
			}
		})
	}
}

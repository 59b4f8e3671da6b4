package services

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewTokenService([]byte("secret"), time.Hour, 24*time.Hour)

	token, err := service.IssueAccessToken(42)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}

	userID, err := service.Parse(token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected subject 42, got %d", userID)
	}
}

func TestTokenVerificationFailsUniformly(t *testing.T) {
	service := NewTokenService([]byte("secret"), time.Hour, 24*time.Hour)

	expired := NewTokenService([]byte("secret"), -time.Second, -time.Second)
	expiredToken, err := expired.IssueAccessToken(42)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}

	foreign := NewTokenService([]byte("other-secret"), time.Hour, time.Hour)
	foreignToken, err := foreign.IssueAccessToken(42)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "expired", token: expiredToken},
		{name: "wrong signature", token: foreignToken},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Parse(testCase.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestRefreshTokenOutlivesAccessToken(t *testing.T) {
	service := NewTokenService([]byte("secret"), time.Minute, time.Hour)

	accessToken, err := service.IssueAccessToken(7)
	if err != nil {
		t.Fatalf("issue access token: %v", err)
	}
	refreshToken, err := service.IssueRefreshToken(7)
	if err != nil {
		t.Fatalf("issue refresh token: %v", err)
	}
	if accessToken == refreshToken {
		t.Fatal("expected distinct access and refresh tokens")
	}

	if _, err := service.Parse(refreshToken); err != nil {
		t.Fatalf("parse refresh token: %v", err)
	}
}

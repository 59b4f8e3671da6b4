package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure (bad signature, expiry,
// malformed input) so callers cannot distinguish a forged token from a stale one.
var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secretKey []byte, accessTTL time.Duration, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (service *TokenService) IssueAccessToken(userID uint) (string, error) {
	return service.issue(userID, service.accessTTL)
}

func (service *TokenService) IssueRefreshToken(userID uint) (string, error) {
	return service.issue(userID, service.refreshTTL)
}

func (service *TokenService) issue(userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

// Parse verifies the signature and expiry of a token and returns the subject id.
func (service *TokenService) Parse(rawToken string) (uint, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

package jwthelper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type UserClaims struct {
	jwt.RegisteredClaims

	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// TokenPair holds a short-lived access token and a long-lived refresh
// token for the same user.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// GenerateTokenPair signs an access and a refresh token for the user.
func GenerateTokenPair(signingKey []byte, userID uint, username string) (TokenPair, error) {
	accessToken, err := generateToken(signingKey, userID, username, accessTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign access token -> %w", err)
	}

	refreshToken, err := generateToken(signingKey, userID, username, refreshTokenTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to sign refresh token -> %w", err)
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func generateToken(signingKey []byte, userID uint, username string, ttl time.Duration) (string, error) {
	claims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique ID makes every issued token distinct, even two
			// signed within the same second for the same user.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(signingKey)
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(signingKey []byte, tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}

		return signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseWithClaims -> %w", err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

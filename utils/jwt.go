package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

func signToken(userID, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func GenerateAccessToken(userID, role string) (string, error) {
	return signToken(userID, role, AccessTokenTTL)
}

func GenerateRefreshToken(userID, role string) (string, error) {
	return signToken(userID, role, RefreshTokenTTL)
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	userID, _ = claims["userId"].(string)
	role, _ = claims["role"].(string)
	if userID == "" {
		return "", "", ErrInvalidToken
	}
	return userID, role, nil
}

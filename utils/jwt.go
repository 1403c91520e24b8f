package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"urbanhelp/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "urbanhelp-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token carrying the user's identity and
// admin flag. The token expires after the specified duration.
func GenerateToken(subject, email string, isAdmin bool, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     subject,
		"email":   email,
		"isAdmin": isAdmin,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// Identity is the verified principal a token resolves to.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// ExtractIdentityFromToken validates the token and returns the identity it carries.
func ExtractIdentityFromToken(tokenString string) (*Identity, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)
	if sub == "" || email == "" {
		return nil, errors.New("token missing identity claims")
	}
	return &Identity{UserID: sub, Email: email, IsAdmin: isAdmin}, nil
}

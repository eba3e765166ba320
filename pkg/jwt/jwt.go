package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload this service cares about.
// Signature verification happens upstream at the API gateway,
// so only the claim shape matters here.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ExtractClaims parses a bearer token WITHOUT verifying its signature
// and returns the embedded claims. The gateway in front of this service
// rejects tampered tokens before they reach us.
func ExtractClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	_, _, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no user_id claim")
	}

	return claims, nil
}

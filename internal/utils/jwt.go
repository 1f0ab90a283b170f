package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims holds the claims the client cares about after login.
type TokenClaims struct {
	// UserID is the "sub" claim: the server-side user identifier.
	UserID string
	// Role is the custom "role" claim ("talent" or "recruiter").
	Role string
}

// ParseTokenClaims extracts the subject and role claims from a signed JWT
// without verifying the signature. The client treats the access token as an
// opaque credential (signature verification is the server's job), but the
// embedded claims spare an extra profile round-trip after login.
//
// Returns an error if the token cannot be parsed or the subject claim is
// missing.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return TokenClaims{}, errors.New("access token has no subject claim")
	}

	role, _ := claims["role"].(string)

	return TokenClaims{UserID: sub, Role: role}, nil
}

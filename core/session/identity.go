package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the read-only projection of the decoded token claims.
// It is recomputed whenever the token changes and never persisted on its own.
type Identity struct {
	ID    int64
	Email string
	Name  string
}

// tokenClaims mirrors the claims the server embeds in issued tokens.
type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// decodeIdentity extracts the identity claims from a token without verifying
// the signature or expiry. Validity is the server's concern; the client only
// needs the embedded identity.
func decodeIdentity(token string) (Identity, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, errors.Join(ErrInvalidToken, err)
	}

	return Identity{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a parsed transport token. The chat gateway (or the terminal
// client) signs one per caller; its "sub" claim carries the caller identity.
//
// SignedString holds the compact form sent in the Authorization header.
// Identity is the parsed subject, cached so handlers do not re-parse it.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims exposes sub, exp, iat and iss.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation.
	SignedString string `json:"-"`

	// Identity is the caller identity taken from the subject claim.
	Identity int64 `json:"-"`
}

// GetIdentity parses the subject claim as a base-10 int64.
func (t *Token) GetIdentity() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting identity from token: %w", err)
	}

	identity, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting identity from token to int64: %w", err)
	}

	return identity, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

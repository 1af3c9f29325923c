// ABOUTME: JWT claim decoding for stored bearer tokens
// ABOUTME: Pure extraction with defined nil-on-malformation failure, no signature check

package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the Acasa API embeds in its bearer tokens
type Claims struct {
	ID       string
	Name     string
	Email    string
	Role     string
	UserType string
	Expiry   time.Time
}

// ErrMalformedToken is returned when a token cannot be decoded
var ErrMalformedToken = errors.New("malformed token")

// DecodeClaims extracts the claim payload from a bearer token without
// verifying its signature. Signature verification belongs to the backend;
// the client only needs the expiry and user type for local decisions.
// Returns ErrMalformedToken on any malformation.
func DecodeClaims(tok string) (*Claims, error) {
	if tok == "" {
		return nil, ErrMalformedToken
	}

	parser := jwt.NewParser()
	parsed, _, err := parser.ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return nil, ErrMalformedToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	c := &Claims{
		ID:       stringClaim(mapClaims, "id"),
		Name:     stringClaim(mapClaims, "name"),
		Email:    stringClaim(mapClaims, "email"),
		Role:     stringClaim(mapClaims, "role"),
		UserType: stringClaim(mapClaims, "userType"),
	}

	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		c.Expiry = exp.Time
	}

	return c, nil
}

// Expired reports whether the claims carry a past (or absent) expiry
func (c *Claims) Expired(now time.Time) bool {
	if c.Expiry.IsZero() {
		return true
	}
	return now.After(c.Expiry)
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

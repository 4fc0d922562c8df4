package auth

import (
	"encoding/json"
	"time"
)

// Token is a bearer token plus the moment it stops being trusted. The access
// token itself is opaque: the SDK never inspects claims, it only attaches the
// value as an Authorization header.
//
// Token serializes to JSON when stored in a cache backend so the manager can
// re-check expiry on read regardless of whether the backend enforces TTL
// natively.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Valid reports whether the token can still be used at the given instant.
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Before(t.ExpiresAt)
}

func (t Token) encode() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeToken parses a stored cache value. ok=false marks an unparseable
// value, which callers treat as a miss so the next login overwrites it.
func decodeToken(value string) (Token, bool) {
	var token Token
	if err := json.Unmarshal([]byte(value), &token); err != nil {
		return Token{}, false
	}
	return token, true
}

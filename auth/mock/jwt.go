package mock

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// createJWT mints a signed access token for username with the given lifetime.
func (m *SigningService) createJWT(username string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": m.Issuer,
		"sub": username,
		"exp": now.Add(lifetime).Unix(),
		"iat": now.Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// VerifyToken checks the signature and validity window of an issued token.
func (m *SigningService) VerifyToken(raw string) error {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.Secret, nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("access token is not valid")
	}
	return nil
}

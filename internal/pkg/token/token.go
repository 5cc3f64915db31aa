package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the admin session identity inside the JWT.
type Claims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Config holds the signing parameters for session tokens.
type Config struct {
	Secret        string
	Expiry        time.Duration
	Issuer        string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns the standard session token configuration.
func DefaultConfig(secret string, expireHours int) *Config {
	if expireHours <= 0 {
		expireHours = 24
	}
	return &Config{
		Secret:        secret,
		Expiry:        time.Duration(expireHours) * time.Hour,
		Issuer:        "civicmap-api",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// Generate issues a signed session token for an admin principal.
func Generate(adminID, email string, cfg *Config) (string, error) {
	if cfg == nil {
		return "", errors.New("token config is required")
	}

	now := time.Now()
	claims := &Claims{
		AdminID: adminID,
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Subject:   adminID,
		},
	}

	tok := jwt.NewWithClaims(cfg.SigningMethod, claims)
	return tok.SignedString([]byte(cfg.Secret))
}

// Validate parses a session token and returns its claims.
func Validate(tokenString, secret string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

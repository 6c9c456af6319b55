package api

import (
	crand "crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

var devSecret []byte

// secretOrDev returns the configured secret, falling back to an in-memory
// secret for development when none is set. Tokens do not survive a restart
// in that mode.
func (h *GameHandler) secretOrDev() ([]byte, error) {
	if len(h.sessionSecret) > 0 {
		return h.sessionSecret, nil
	}
	if len(devSecret) == 0 {
		devSecret = make([]byte, 32)
		if _, err := crand.Read(devSecret); err != nil {
			return nil, errors.New("failed to generate dev session secret")
		}
	}
	return devSecret, nil
}

func (h *GameHandler) createSessionToken(playerUUID, name string) (string, error) {
	secret, err := h.secretOrDev()
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   playerUUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.sessionTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (h *GameHandler) parseSessionToken(token string) (*sessionClaims, error) {
	secret, err := h.secretOrDev()
	if err != nil {
		return nil, err
	}
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid session token")
	}
	return &claims, nil
}

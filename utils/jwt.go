package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims identifies one participant at one table for the lifetime of
// a dining session.
type SessionClaims struct {
	TableID    uint   `json:"tableId"`
	UserID     string `json:"userId"`
	AIProvider string `json:"aiProvider,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a table-session token. Expiry doubles as the
// session timer: once the token lapses the customer has to re-scan the QR.
func GenerateSessionToken(tableID uint, userID, aiProvider, secret string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		TableID:    tableID,
		UserID:     userID,
		AIProvider: aiProvider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

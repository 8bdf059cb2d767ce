package account

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenMaker mints and verifies the bearer tokens that identify a shopping
// session. Guest tokens and account tokens share the same shape; only the
// role differs.
type TokenMaker struct {
	secret []byte
	issuer string
}

func NewTokenMaker(secret string) *TokenMaker {
	return &TokenMaker{
		secret: []byte(secret),
		issuer: "imir-storefront",
	}
}

const (
	RoleGuest = "guest"
	RoleUser  = "user"
)

type Claims struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func (t *TokenMaker) New(sessionID, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		SessionID: sessionID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenMaker) Parse(tokenStr string) (Claims, error) {
	var c Claims

	token, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Claims{}, errors.New("invalid token")
	}

	if c.Issuer != "" && c.Issuer != t.issuer {
		return Claims{}, errors.New("invalid issuer")
	}
	if c.SessionID == "" {
		return Claims{}, errors.New("missing session id")
	}

	return c, nil
}

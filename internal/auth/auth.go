package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Claims carried inside issued tokens.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Gate issues and validates stateless HS256 tokens for the single
// configured admin principal. Validity is determined entirely by the
// signature and the embedded expiry; nothing is stored server-side.
type Gate struct {
	secret    []byte
	adminUser string
	adminPass string
	tokenTTL  time.Duration
}

func NewGate(secret, adminUser, adminPass string, tokenTTL time.Duration) *Gate {
	return &Gate{
		secret:    []byte(secret),
		adminUser: adminUser,
		adminPass: adminPass,
		tokenTTL:  tokenTTL,
	}
}

// Login checks the credentials against the configured admin principal
// and returns a signed token on match.
func (g *Gate) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.adminPass)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Authorize validates a token string and returns the embedded
// principal.
func (g *Gate) Authorize(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return g.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}

package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// TokenClaims carries the signed identity. The user id is nested under "user"
// because that is the token shape the storefront already decodes.
type TokenClaims struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// EnsureSecret guards startup: signing with an empty secret would let any
// forged token verify.
func EnsureSecret() error {
	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}

// IssueToken signs a token for the given user id.
func IssueToken(userID string) (string, error) {
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	claims.User.ID = userID

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken verifies a token and returns the user id it asserts. Missing,
// malformed, expired, and wrongly-signed tokens all come back as errors;
// callers do not need to tell them apart.
func ParseToken(tokenString string) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.User.ID == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.User.ID, nil
}

package token

import (
	"errors"
	"os"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"learnhub/pkg/claims"
)

// TTL is how long an issued token stays valid. There is no revocation
// list: logout is client-side only and a token lives until expiry.
const TTL = 7 * 24 * time.Hour

// devSecret is the fallback used when JWT_SECRET is empty. Inherited
// from the original deployment; config.Load refuses to start without a
// real secret, so this only matters for tests.
const devSecret = "test-secret"

var ErrInvalidToken = errors.New("invalid token")

func secret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte(devSecret)
}

// Issue signs an HS256 token carrying the user id and display name.
func Issue(userID, name string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{
			"id":   userID,
			"name": name,
		},
		"iat": time.Now().UTC().Unix(),
		"exp": time.Now().Add(TTL).UTC().Unix(),
	})
	return t.SignedString(secret())
}

// Verify checks signature and expiry. Malformed, tampered and expired
// tokens all collapse to ErrInvalidToken.
func Verify(tokenString string) (*claims.Claims, error) {
	c := &claims.Claims{}

	hashSecretGetter := func(t *jwt.Token) (interface{}, error) {
		method, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	}

	t, err := jwt.ParseWithClaims(tokenString, c, hashSecretGetter)
	if err != nil || !t.Valid || c.User.ID == "" {
		return nil, ErrInvalidToken
	}
	return c, nil
}

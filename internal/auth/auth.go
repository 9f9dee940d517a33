// Package auth implements the bearer-token authentication: a single static
// credential pair from the environment and signed, time-limited JWTs.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, expired, carry
// no subject, or fail signature verification. The route layer maps it to a
// 401 with a WWW-Authenticate challenge.
var ErrInvalidToken = errors.New("could not validate credentials")

// Config holds the authentication settings.
type Config struct {
	Username string
	Password string

	SecretKey   string
	Algorithm   string // HS256, HS384 or HS512
	TokenExpiry time.Duration
}

// Auth verifies credentials and issues and verifies access tokens.
type Auth struct {
	username []byte
	password []byte

	secret []byte
	method jwt.SigningMethod
	expiry time.Duration
}

// New creates an Auth from the configuration.
func New(config Config) (*Auth, error) {
	method := jwt.GetSigningMethod(config.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported JWT algorithm %q", config.Algorithm)
	}

	return &Auth{
		username: []byte(config.Username),
		password: []byte(config.Password),
		secret:   []byte(config.SecretKey),
		method:   method,
		expiry:   config.TokenExpiry,
	}, nil
}

// Authenticate checks a credential pair against the configured one.
func (a *Auth) Authenticate(username, password string) bool {
	// Both comparisons always run so that the timing does not reveal which
	// part was wrong.
	userOK := subtle.ConstantTimeCompare([]byte(username), a.username) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), a.password) == 1

	return userOK && passOK
}

// IssueToken returns a signed access token for the given principal.
func (a *Auth) IssueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(a.method, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
	})

	return token.SignedString(a.secret)
}

// VerifyToken validates an access token and returns its subject.
func (a *Auth) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}

			return a.secret, nil
		},
		jwt.WithValidMethods([]string{a.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

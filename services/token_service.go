package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSubject = errors.New("token has no subject claim")
)

// ITokenService issues and validates the bearer tokens identifying a user.
// Tokens carry no server-side state: validity is a pure function of the
// token, the current time, and the signing key. There is no revocation, so a
// deleted user's token stays valid until it expires.
type ITokenService interface {
	Issue(username string) (string, error)
	Validate(tokenString string) (string, error)
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) ITokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.ttl).Unix(),
	})
	return token.SignedString(s.secret)
}

// Validate returns the username a token was issued for. Any failure is an
// unconditional rejection: a bad signature, a malformed token, or an expired
// one all yield ErrInvalidToken; a well-signed token without a subject claim
// yields ErrMissingSubject.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrMissingSubject
	}
	return subject, nil
}

// Package session keeps per-visitor state in signed cookies.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession covers a missing, expired or tampered cookie.
var ErrNoSession = errors.New("no session")

const cookieIssuer = "EstateHub web"

// Store persists a value of type T for the visitor behind a request.
type Store[T any] interface {
	Get(r *http.Request) (T, error)
	Set(w http.ResponseWriter, value T) error
	Clear(w http.ResponseWriter)
}

// CookieStore keeps T inside an HS256-signed JWT cookie that expires after
// TTL.
type CookieStore[T any] struct {
	name   string
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

type cookieClaims[T any] struct {
	Data T `json:"data"`
	jwt.RegisteredClaims
}

func NewCookieStore[T any](name string, key []byte, ttl time.Duration, secure bool) *CookieStore[T] {
	return &CookieStore[T]{
		name:   name,
		key:    key,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

func (s *CookieStore[T]) TTL() time.Duration {
	return s.ttl
}

func (s *CookieStore[T]) Get(r *http.Request) (T, error) {
	var zero T
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return zero, ErrNoSession
	}

	claims := &cookieClaims[T]{}
	_, err = jwt.ParseWithClaims(c.Value, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cookieIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return claims.Data, nil
}

func (s *CookieStore[T]) Set(w http.ResponseWriter, value T) error {
	now := s.now()
	expires := now.Add(s.ttl)
	claims := cookieClaims[T]{
		Data: value,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cookieIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    signed,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore[T]) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Package session authenticates the single console operator and issues the
// signed cookie the web layer checks on every page.
package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid session token")
	ErrExpiredToken       = errors.New("session has expired")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Claims is the session cookie payload.
type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}

type Manager interface {
	// Login checks the credentials against the configured operator and
	// returns a signed session token on success.
	Login(username, password string) (string, error)
	// Validate parses and verifies a session token.
	Validate(token string) (*Claims, error)
}

type manager struct {
	secret       []byte
	operator     string
	passwordHash string
	expiry       time.Duration
}

// NewManager wires the static operator account from configuration. The
// password hash is a bcrypt digest produced out of band.
func NewManager(secret, operator, passwordHash string, expiry time.Duration) Manager {
	return &manager{
		secret:       []byte(secret),
		operator:     operator,
		passwordHash: passwordHash,
		expiry:       expiry,
	}
}

func (m *manager) Login(username, password string) (string, error) {
	if username != m.operator {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Operator: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "rental-console",
			ID:        strconv.FormatInt(now.UnixNano(), 16),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// HashPassword produces the bcrypt digest stored in configuration. Exposed
// for the -hash-password setup helper in the console binary.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

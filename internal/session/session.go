// Package session implements login, logout and session validation against
// the identity store. Three consecutive failed passwords lock the user;
// the lock is terminal, there is no unlock operation.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"homebanking-sim/internal/config"
	"homebanking-sim/internal/models"
)

const (
	KindInvalidCredentials = "INVALID_CREDENTIALS"
	KindAccountLocked      = "ACCOUNT_LOCKED"
	KindSessionExpired     = "SESSION_EXPIRED"
)

type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

type Service struct {
	cfg *config.Config

	mu       sync.Mutex
	users    map[string]*models.User
	attempts map[string]int
}

func New(cfg *config.Config, users []*models.User) *Service {
	s := &Service{
		cfg:      cfg,
		users:    make(map[string]*models.User, len(users)),
		attempts: make(map[string]int),
	}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

// LoginResult carries the signed session token plus a redacted profile
// (the password hash is never serialized).
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (s *Service) Login(username, password string) (*LoginResult, error) {
	s.mu.Lock()
	user, ok := s.users[username]
	if !ok {
		s.mu.Unlock()
		return nil, &Error{KindInvalidCredentials, "Usuario o contraseña incorrectos"}
	}
	if user.Locked {
		s.mu.Unlock()
		return nil, &Error{KindAccountLocked,
			"Tu cuenta ha sido bloqueada temporalmente. Contacta con soporte."}
	}
	hash := user.PasswordHash
	s.mu.Unlock()

	// bcrypt is deliberately slow; compare outside the lock so concurrent
	// logins are not serialized behind it.
	mismatch := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil

	s.mu.Lock()
	defer s.mu.Unlock()

	// The account may have been locked while the hash was being compared.
	if user.Locked {
		return nil, &Error{KindAccountLocked,
			"Tu cuenta ha sido bloqueada temporalmente. Contacta con soporte."}
	}

	if mismatch {
		s.attempts[username]++
		if s.attempts[username] >= s.cfg.MaxLoginAttempts {
			user.Locked = true
			return nil, &Error{KindAccountLocked,
				"Demasiados intentos fallidos. Tu cuenta ha sido bloqueada."}
		}
		return nil, &Error{KindInvalidCredentials,
			fmt.Sprintf("Usuario o contraseña incorrectos. Intentos restantes: %d",
				s.cfg.MaxLoginAttempts-s.attempts[username])}
	}

	s.attempts[username] = 0

	token, err := s.signToken(username)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{Token: token, User: *user}, nil
}

// Logout always succeeds; tokens are stateless so there is nothing to
// invalidate server-side.
func (s *Service) Logout() {}

// ValidateSession checks the token signature and expiry and returns the
// username it was issued for.
func (s *Service) ValidateSession(token string) (string, error) {
	expired := &Error{KindSessionExpired,
		"Tu sesión ha expirado. Por favor, inicia sesión nuevamente."}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.AuthSecret), nil
	})
	if err != nil || !parsed.Valid {
		return "", expired
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", expired
	}

	s.mu.Lock()
	_, known := s.users[claims.Subject]
	s.mu.Unlock()
	if !known {
		return "", expired
	}
	return claims.Subject, nil
}

// Profile returns a redacted copy of the user's profile.
func (s *Service) Profile(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return models.User{}, false
	}
	return *u, true
}

func (s *Service) signToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.TokenTTLMin) * time.Minute)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.AuthSecret))
}

package session

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"homebanking-sim/internal/config"
	"homebanking-sim/internal/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:       "test-secret",
		TokenTTLMin:      30,
		MaxLoginAttempts: 3,
	}
	return New(cfg, []*models.User{
		testUserRecord(t, "demo", "demo123", false),
		testUserRecord(t, "locked", "locked", true),
	})
}

func testUserRecord(t *testing.T, username, password string, locked bool) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Juan Pérez",
		Email:        "juan.perez@email.com",
		Locked:       locked,
	}
}

func wantKind(t *testing.T, err error, kind string) {
	t.Helper()
	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("want *session.Error, got %T: %v", err, err)
	}
	if serr.Kind != kind {
		t.Fatalf("kind=%s want=%s", serr.Kind, kind)
	}
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	s := newTestService(t)

	for i := 1; i <= 2; i++ {
		_, err := s.Login("demo", "wrong")
		wantKind(t, err, KindInvalidCredentials)
	}

	_, err := s.Login("demo", "wrong")
	wantKind(t, err, KindAccountLocked)

	// The lock is terminal: even the right password is rejected now.
	_, err = s.Login("demo", "demo123")
	wantKind(t, err, KindAccountLocked)
}

func TestLoginSuccessResetsAttemptCounter(t *testing.T) {
	s := newTestService(t)

	for i := 0; i < 2; i++ {
		s.Login("demo", "wrong")
	}
	if _, err := s.Login("demo", "demo123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Two fresh failures must not lock: the streak restarted at zero.
	for i := 0; i < 2; i++ {
		_, err := s.Login("demo", "wrong")
		wantKind(t, err, KindInvalidCredentials)
	}
	if _, err := s.Login("demo", "demo123"); err != nil {
		t.Fatalf("login after two failures: %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	s := newTestService(t)
	_, err := s.Login("nobody", "whatever")
	wantKind(t, err, KindInvalidCredentials)
}

func TestLoginSeedLockedUser(t *testing.T) {
	s := newTestService(t)
	_, err := s.Login("locked", "locked")
	wantKind(t, err, KindAccountLocked)
}

func TestLoginRedactsCredentials(t *testing.T) {
	s := newTestService(t)
	res, err := s.Login("demo", "demo123")
	if err != nil {
		t.Fatal(err)
	}
	if res.Token == "" {
		t.Fatal("empty token")
	}

	b, err := json.Marshal(res.User)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "$2a$") || strings.Contains(strings.ToLower(string(b)), "password") {
		t.Fatalf("profile leaks credentials: %s", b)
	}
}

func TestLoginConcurrent(t *testing.T) {
	s := newTestService(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Login("demo", "demo123"); err != nil {
				t.Errorf("login: %v", err)
			}
		}()
	}
	wg.Wait()

	// Lockout semantics survive the concurrent successes.
	for i := 0; i < 3; i++ {
		s.Login("demo", "wrong")
	}
	_, err := s.Login("demo", "demo123")
	wantKind(t, err, KindAccountLocked)
}

func TestValidateSessionRoundTrip(t *testing.T) {
	s := newTestService(t)
	res, err := s.Login("demo", "demo123")
	if err != nil {
		t.Fatal(err)
	}

	username, err := s.ValidateSession(res.Token)
	if err != nil {
		t.Fatal(err)
	}
	if username != "demo" {
		t.Fatalf("username=%s want=demo", username)
	}
}

func TestValidateSessionRejectsMalformedTokens(t *testing.T) {
	s := newTestService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := s.ValidateSession(token)
		wantKind(t, err, KindSessionExpired)
	}
}

func TestValidateSessionRejectsForeignSignature(t *testing.T) {
	s := newTestService(t)
	other := New(&config.Config{
		AuthSecret: "other-secret", TokenTTLMin: 30, MaxLoginAttempts: 3,
	}, []*models.User{testUserRecord(t, "demo", "demo123", false)})

	res, err := other.Login("demo", "demo123")
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.ValidateSession(res.Token)
	wantKind(t, err, KindSessionExpired)
}

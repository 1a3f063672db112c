package services_test

import (
	"errors"
	"testing"

	"rewear/internal/auth"
	"rewear/internal/repos"
	"rewear/internal/services"

	"github.com/jmoiron/sqlx"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newAuthService(db *sqlx.DB) *services.AuthService {
	return &services.AuthService{Users: repos.NewUserRepo(db), Secret: "test-secret"}
}

func TestSignupAndLogin(t *testing.T) {
	svc := newAuthService(memdb(t))

	profile, err := svc.Signup("Alice", "alice@rewear.test", "Passw0rd!", "College Park")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if profile.Name != "Alice" || profile.Email != "alice@rewear.test" {
		t.Fatalf("bad profile: %+v", profile)
	}
	if profile.Points != 0 {
		t.Errorf("expected 0 starting points, got %d", profile.Points)
	}

	token, loggedIn, err := svc.Login("alice@rewear.test", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if loggedIn.ID != profile.ID {
		t.Errorf("login returned wrong user: %s != %s", loggedIn.ID, profile.ID)
	}

	claims, err := auth.ValidateToken("test-secret", token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != profile.ID || claims.Email != "alice@rewear.test" {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc := newAuthService(memdb(t))

	_, err := svc.Signup("Alice", "", "Passw0rd!", "College Park")
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newAuthService(memdb(t))

	if _, err := svc.Signup("Alice", "alice@rewear.test", "Passw0rd!", "College Park"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup("Other Alice", "Alice@rewear.test", "Different1!", "Baltimore")
	if !errors.Is(err, services.ErrConflict) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(memdb(t))

	_, _, err := svc.Login("nobody@rewear.test", "Passw0rd!")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(memdb(t))

	if _, err := svc.Signup("Alice", "alice@rewear.test", "Passw0rd!", "College Park"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	// Close is not correct: near misses fail the same way as anything else.
	_, _, err := svc.Login("alice@rewear.test", "Passw0rd?")
	if !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("expected bad-credentials, got %v", err)
	}
}

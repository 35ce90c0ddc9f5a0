package users

import (
	"context"
	"errors"
	"testing"
)

func TestGoogleLoginUpsertKeepsPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "jane@x.com", "Jane Doe", "hunter2hunter2"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, token, err := svc.GoogleLogin(ctx, "Jane@X.com", "Jane From Google", "https://pic.example/jane.png")
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if u.FullName != "Jane From Google" {
		t.Errorf("name should refresh from Google, got %q", u.FullName)
	}
	if u.PasswordHash == "" {
		t.Errorf("google login must not clear the password hash")
	}

	if _, _, err := svc.Login(ctx, "jane@x.com", "hunter2hunter2"); err != nil {
		t.Fatalf("password login after google login: %v", err)
	}
}

func TestGoogleLoginCreatesAccount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := &Service{Repo: NewMemoryRepo()}

	u, _, err := svc.GoogleLogin(context.Background(), "new@x.com", "New Person", "")
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if u.PasswordHash != "" {
		t.Errorf("google-only accounts have no password hash")
	}

	if _, _, err := svc.Login(context.Background(), "new@x.com", "any-password-1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("password login for google-only account must fail, got %v", err)
	}
}

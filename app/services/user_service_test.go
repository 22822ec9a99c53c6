package services

import (
	"errors"
	"testing"

	"shoply/app/repo"
	"shoply/app/testutil"
)

func newUserService(t *testing.T) *UserService {
	db := testutil.OpenTestDB(t)
	return NewUserService(repo.NewUserRepository(db))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.Register("alice@example.com", "Alice", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register("alice@example.com", "Alice Again", "other456")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	svc := newUserService(t)
	u, err := svc.Register("bob@example.com", "Bob", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "secret123" {
		t.Fatalf("password stored in plain text")
	}

	got, err := svc.ValidateCredentials("bob@example.com", "secret123")
	if err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("wrong user: got %d want %d", got.ID, u.ID)
	}

	if _, err := svc.ValidateCredentials("bob@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.ValidateCredentials("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	svc := newUserService(t)
	if err := svc.EnsureAdmin("admin@shoply.local", "admin123"); err != nil {
		t.Fatalf("first EnsureAdmin: %v", err)
	}
	if err := svc.EnsureAdmin("admin@shoply.local", "admin123"); err != nil {
		t.Fatalf("second EnsureAdmin: %v", err)
	}
	users, err := svc.ListAll()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected one admin, got %d users", len(users))
	}
	if users[0].Role != "admin" {
		t.Fatalf("expected admin role, got %q", users[0].Role)
	}
}

func TestSetRole(t *testing.T) {
	svc := newUserService(t)
	u, err := svc.Register("carol@example.com", "Carol", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.SetRole(u.ID, "admin"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if err := svc.SetRole(u.ID, "superuser"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSetRole_KeepsLastAdmin(t *testing.T) {
	svc := newUserService(t)
	if err := svc.EnsureAdmin("admin@shoply.local", "admin123"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	admin, err := svc.ValidateCredentials("admin@shoply.local", "admin123")
	if err != nil {
		t.Fatalf("login admin: %v", err)
	}

	if err := svc.SetRole(admin.ID, "user"); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin, got %v", err)
	}

	// with a second admin the demotion goes through
	second, err := svc.Register("backup@shoply.local", "Backup", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.SetRole(second.ID, "admin"); err != nil {
		t.Fatalf("promote: %v", err)
	}
	if err := svc.SetRole(admin.ID, "user"); err != nil {
		t.Fatalf("demote with backup admin: %v", err)
	}
	if err := svc.SetRole(second.ID, "user"); !errors.Is(err, ErrLastAdmin) {
		t.Fatalf("expected ErrLastAdmin for the new last admin, got %v", err)
	}
}

package account

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore_CreateAndVerify(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.Create(ctx, "User@Example.com", "hunter22", "u_1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Lookup is case-insensitive on the email.
	u, err := s.Verify(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if u.ID != "u_1" || u.Email != "user@example.com" {
		t.Fatalf("user: %+v", u)
	}
}

func TestMemStore_DuplicateEmail(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.Create(ctx, "a@example.com", "hunter22", "u_1"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := s.Create(ctx, " A@example.com ", "other-pass", "u_2")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate create: err=%v, want ErrEmailExists", err)
	}
}

func TestMemStore_BadCredentials(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	if err := s.Create(ctx, "a@example.com", "hunter22", "u_1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := s.Verify(ctx, "a@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err=%v", err)
	}
	if _, err := s.Verify(ctx, "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err=%v", err)
	}
}

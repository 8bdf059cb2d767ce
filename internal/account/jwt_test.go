package account

import (
	"testing"
	"time"
)

func TestTokenMaker_RoundTrip(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := tm.New("s_123", "user@example.com", RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c, err := tm.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.SessionID != "s_123" || c.Email != "user@example.com" || c.Role != RoleUser {
		t.Fatalf("claims: %+v", c)
	}
}

func TestTokenMaker_WrongSecret(t *testing.T) {
	tok, err := NewTokenMaker("secret-a").New("s_1", "", RoleGuest, time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := NewTokenMaker("secret-b").Parse(tok); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestTokenMaker_Expired(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	tok, err := tm.New("s_1", "", RoleGuest, -time.Minute)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := tm.Parse(tok); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestTokenMaker_Garbage(t *testing.T) {
	tm := NewTokenMaker("test-secret")

	for _, tok := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, err := tm.Parse(tok); err == nil {
			t.Fatalf("garbage token %q was accepted", tok)
		}
	}
}

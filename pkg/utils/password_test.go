package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	h, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "" || h == "secret123" {
		t.Fatalf("hash looks wrong: %q", h)
	}
	if !CheckPassword("secret123", h) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong", h) {
		t.Error("wrong password accepted")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 32 {
		t.Errorf("id length = %d, want 32", len(a))
	}
	if a == b {
		t.Error("ids collide")
	}
}

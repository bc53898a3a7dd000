package secure

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksAfterMaxAttempts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiterAt(func() time.Time { return now })

	for i := 0; i < 5; i++ {
		if l.Limited("login", 5, 30*time.Second) {
			t.Fatalf("attempt %d limited, want allowed", i+1)
		}
	}
	if !l.Limited("login", 5, 30*time.Second) {
		t.Fatal("6th attempt allowed, want limited")
	}
}

func TestRateLimiterEvictsOldAttempts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiterAt(func() time.Time { return now })

	for i := 0; i < 5; i++ {
		l.Limited("login", 5, 30*time.Second)
	}
	if !l.Limited("login", 5, 30*time.Second) {
		t.Fatal("expected limited inside window")
	}

	now = now.Add(31 * time.Second)
	if l.Limited("login", 5, 30*time.Second) {
		t.Fatal("still limited after window passed")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiterAt(func() time.Time { return now })

	for i := 0; i < 5; i++ {
		l.Limited("login", 5, 30*time.Second)
	}
	if l.Limited("reset", 5, 30*time.Second) {
		t.Fatal("unrelated action limited")
	}
}

func TestRateLimiterReset(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewRateLimiterAt(func() time.Time { return now })

	for i := 0; i < 5; i++ {
		l.Limited("login", 5, 30*time.Second)
	}
	l.Reset("login")
	if l.Limited("login", 5, 30*time.Second) {
		t.Fatal("limited after Reset")
	}
}

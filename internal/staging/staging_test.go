package staging

import (
	"testing"
	"time"

	"github.com/billwise/billwise/internal/models"
)

func TestPutTakeRoundTrip(t *testing.T) {
	s := New()
	inv := models.Invoice{Number: "INV-042"}

	token := s.Put(inv)
	if token == "" {
		t.Fatal("Put returned empty token")
	}

	got, ok := s.Take(token)
	if !ok {
		t.Fatal("Take failed for fresh token")
	}
	if got.Number != "INV-042" {
		t.Errorf("Number = %q, want INV-042", got.Number)
	}
}

func TestTakeIsReadOnce(t *testing.T) {
	s := New()
	token := s.Put(models.Invoice{Number: "INV-001"})

	if _, ok := s.Take(token); !ok {
		t.Fatal("first Take failed")
	}
	if _, ok := s.Take(token); ok {
		t.Error("second Take succeeded, want failure")
	}
}

func TestTakeUnknownToken(t *testing.T) {
	s := New()
	if _, ok := s.Take("nope"); ok {
		t.Error("Take succeeded for unknown token")
	}
}

func TestTakeExpiredToken(t *testing.T) {
	s := New()
	current := time.Now()
	s.now = func() time.Time { return current }

	token := s.Put(models.Invoice{Number: "INV-001"})
	current = current.Add(TTL + time.Second)

	if _, ok := s.Take(token); ok {
		t.Error("Take succeeded for expired token")
	}
}

func TestPutEvictsExpired(t *testing.T) {
	s := New()
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Put(models.Invoice{Number: "INV-001"})
	current = current.Add(TTL + time.Second)
	s.Put(models.Invoice{Number: "INV-002"})

	if len(s.entries) != 1 {
		t.Errorf("entries = %d, want 1 after eviction", len(s.entries))
	}
}

func TestTokensAreUnique(t *testing.T) {
	s := New()
	a := s.Put(models.Invoice{})
	b := s.Put(models.Invoice{})
	if a == b {
		t.Errorf("tokens collide: %s", a)
	}
}

package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator(t *testing.T) {
	t.Parallel()

	g := NewUUIDGenerator()
	a, b := g.NewID(), g.NewID()
	if a == b {
		t.Fatalf("expected distinct ids, got %q twice", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("expected a uuid, got %q: %v", a, err)
	}
}

func TestSequenceGenerator(t *testing.T) {
	t.Parallel()

	g := NewSequenceGenerator("req")
	if got := g.NewID(); got != "req-1" {
		t.Fatalf("first id = %q, want req-1", got)
	}
	if got := g.NewID(); got != "req-2" {
		t.Fatalf("second id = %q, want req-2", got)
	}
}

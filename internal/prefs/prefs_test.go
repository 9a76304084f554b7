package prefs

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type brokenStore struct {
	err error
}

func (b brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenStore) Set(context.Context, string, string) error          { return b.err }

func TestMemoryGetSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	if _, ok, _ := m.Get(ctx, "theme"); ok {
		t.Fatal("expected empty store to report absent key")
	}
	if err := m.Set(ctx, "theme", "theme2"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	v, ok, err := m.Get(ctx, "theme")
	if err != nil || !ok || v != "theme2" {
		t.Fatalf("Get = (%q, %t, %v), want (theme2, true, nil)", v, ok, err)
	}
}

func TestLayeredReadsInPriorityOrderAndBackfills(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	top, bottom := NewMemory(), NewMemory()
	_ = bottom.Set(ctx, "theme", "theme3")

	l := NewLayered(top, nil, bottom)
	v, ok, err := l.Get(ctx, "theme")
	if err != nil || !ok || v != "theme3" {
		t.Fatalf("Get = (%q, %t, %v), want (theme3, true, nil)", v, ok, err)
	}
	if got, ok, _ := top.Get(ctx, "theme"); !ok || got != "theme3" {
		t.Fatalf("expected value backfilled into top layer, got (%q, %t)", got, ok)
	}

	_ = top.Set(ctx, "theme", "theme1")
	if v, _, _ := l.Get(ctx, "theme"); v != "theme1" {
		t.Fatalf("expected top layer to win, got %q", v)
	}
}

func TestLayeredSetWritesEveryLayer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a, b := NewMemory(), NewMemory()
	if err := NewLayered(a, b).Set(ctx, "theme", "theme2"); err != nil {
		t.Fatalf("Set error = %v", err)
	}
	for i, m := range []*Memory{a, b} {
		if v, _, _ := m.Get(ctx, "theme"); v != "theme2" {
			t.Fatalf("layer %d: expected theme2, got %q", i, v)
		}
	}
}

func TestLayeredSetJoinsErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("offline")
	m := NewMemory()
	err := NewLayered(brokenStore{err: boom}, m).Set(ctx, "theme", "theme2")
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to wrap %v, got %v", boom, err)
	}
	if v, _, _ := m.Get(ctx, "theme"); v != "theme2" {
		t.Fatal("expected healthy layer to be written despite sibling failure")
	}
}

func TestLayeredGetStopsOnError(t *testing.T) {
	t.Parallel()

	_, _, err := NewLayered(brokenStore{err: errors.New("read failed")}, NewMemory()).Get(context.Background(), "theme")
	if err == nil || !strings.Contains(err.Error(), "read failed") {
		t.Fatalf("expected read error, got %v", err)
	}
}

// Package prefs provides the key-value capability used to persist user
// preferences. Implementations are scoped to one browser session.
package prefs

import (
	"context"
	"errors"
	"sync"

	applog "vitrine/internal/log"
)

// Store is a string key-value capability.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Memory keeps values in process memory. The zero value is not usable; call NewMemory.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Layered reads from the first layer holding a key and writes to every layer.
type Layered struct {
	layers []Store
}

// NewLayered composes stores in priority order. Nil layers are skipped.
func NewLayered(layers ...Store) *Layered {
	l := &Layered{}
	for _, layer := range layers {
		if layer != nil {
			l.layers = append(l.layers, layer)
		}
	}
	return l
}

// Get returns the value from the highest priority layer that has it and
// copies it into the layers above, so the next read is served earlier.
func (l *Layered) Get(ctx context.Context, key string) (string, bool, error) {
	for i, layer := range l.layers {
		value, ok, err := layer.Get(ctx, key)
		if err != nil {
			return "", false, err
		}
		if !ok {
			continue
		}
		for _, upper := range l.layers[:i] {
			if err := upper.Set(ctx, key, value); err != nil {
				applog.Error(ctx, "failed to backfill preference", "key", key, "error", err)
			}
		}
		return value, true, nil
	}
	return "", false, nil
}

// Set writes value to all layers and reports every failure.
func (l *Layered) Set(ctx context.Context, key, value string) error {
	var errs []error
	for _, layer := range l.layers {
		if err := layer.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

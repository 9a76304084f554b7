package theme

import (
	"context"
	"errors"
	"fmt"

	applog "vitrine/internal/log"
)

// PreferenceKey names the key-value entry holding the selected theme.
const PreferenceKey = "theme"

// ErrInvalidTheme is returned by SetTheme for identifiers outside the catalog.
var ErrInvalidTheme = errors.New("invalid theme")

// Preferences is the key-value capability the store persists through.
type Preferences interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the active theme identifier for one browser session.
// It is not safe for concurrent use.
type Store struct {
	catalog     *Catalog
	prefs       Preferences
	current     string
	initialized bool
	subscribers map[int]func(Bundle)
	nextID      int
}

// NewStore builds a Store positioned on the catalog default.
func NewStore(catalog *Catalog, prefs Preferences) *Store {
	return &Store{
		catalog:     catalog,
		prefs:       prefs,
		current:     catalog.DefaultID(),
		subscribers: make(map[int]func(Bundle)),
	}
}

// Initialize restores a previously persisted theme. Absent or unknown values
// leave the default in place. Only the first call has any effect.
func (s *Store) Initialize(ctx context.Context) error {
	if s.initialized {
		return nil
	}
	s.initialized = true

	stored, ok, err := s.prefs.Get(ctx, PreferenceKey)
	if err != nil {
		return fmt.Errorf("restore theme preference: %w", err)
	}
	if !ok {
		applog.Debug(ctx, "no stored theme preference", "default", s.current)
		return nil
	}
	if !s.catalog.Contains(stored) {
		applog.Debug(ctx, "ignoring unknown stored theme", "value", stored, "default", s.current)
		return nil
	}
	s.current = stored
	return nil
}

// SetTheme persists and activates id, then notifies subscribers.
func (s *Store) SetTheme(ctx context.Context, id string) error {
	bundle, err := s.catalog.Get(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, id)
	}
	if err := s.prefs.Set(ctx, PreferenceKey, id); err != nil {
		return fmt.Errorf("persist theme preference: %w", err)
	}
	s.current = id
	applog.Debug(ctx, "theme changed", "theme", id)

	for _, key := range s.subscriberKeys() {
		if fn, ok := s.subscribers[key]; ok {
			fn(bundle)
		}
	}
	return nil
}

// Current returns the active bundle.
func (s *Store) Current() Bundle {
	b, err := s.catalog.Get(s.current)
	if err != nil {
		// current is only ever assigned catalog members
		panic(err)
	}
	return b
}

// Subscribe registers fn to run after every theme change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Bundle)) func() {
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		delete(s.subscribers, id)
	}
}

// subscriberKeys returns keys in registration order so notification order is stable.
func (s *Store) subscriberKeys() []int {
	keys := make([]int, 0, len(s.subscribers))
	for id := 0; id < s.nextID; id++ {
		if _, ok := s.subscribers[id]; ok {
			keys = append(keys, id)
		}
	}
	return keys
}

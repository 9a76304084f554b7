package prefs

import (
	"context"
	"errors"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix    = "pref:"
	sessionVisitorIDKey = "visitor:id"
)

// ErrNoSession is returned when no session manager has been configured.
var ErrNoSession = errors.New("prefs: session manager not configured")

// Session stores preferences in the scs session bound to the request context.
type Session struct {
	manager *scs.SessionManager
}

// NewSession wraps manager. The context passed to Get and Set must come from
// a request that went through manager.LoadAndSave.
func NewSession(manager *scs.SessionManager) *Session {
	return &Session{manager: manager}
}

func (s *Session) Get(ctx context.Context, key string) (string, bool, error) {
	if s.manager == nil {
		return "", false, ErrNoSession
	}
	k := sessionKeyPrefix + key
	if !s.manager.Exists(ctx, k) {
		return "", false, nil
	}
	return s.manager.GetString(ctx, k), true, nil
}

func (s *Session) Set(ctx context.Context, key, value string) error {
	if s.manager == nil {
		return ErrNoSession
	}
	s.manager.Put(ctx, sessionKeyPrefix+key, value)
	return nil
}

// VisitorID returns the session's visitor identifier, minting one on first use.
// It links an anonymous session to its database-backed preferences.
func VisitorID(ctx context.Context, manager *scs.SessionManager) (string, error) {
	if manager == nil {
		return "", ErrNoSession
	}
	if id := manager.GetString(ctx, sessionVisitorIDKey); id != "" {
		return id, nil
	}
	id := uuid.NewString()
	manager.Put(ctx, sessionVisitorIDKey, id)
	return id, nil
}

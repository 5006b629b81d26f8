package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthease/internal/auth"
	"healthease/internal/model"
)

const (
	keyPrefix   = "client:"
	tokenKey    = "token"
	userKey     = "user"
	flashKey    = "flash"
	inflightKey = "inflight:"

	// InFlightTTL bounds how long a submit guard survives a crashed request.
	InFlightTTL = 30 * time.Second
	flashTTL    = 5 * time.Minute
)

// Cache is the key-value backend the store writes to.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, keys ...string) error
}

// Flash is a one-shot alert shown on the next rendered page.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// StoreInterface defines the session operations used by services and handlers.
type StoreInterface interface {
	Get(ctx context.Context, clientID string) (*model.Session, error)
	Set(ctx context.Context, clientID string, sess model.Session) error
	Clear(ctx context.Context, clientID string) error
	SetFlash(ctx context.Context, clientID string, flash Flash) error
	PopFlash(ctx context.Context, clientID string) (*Flash, error)
	Acquire(ctx context.Context, clientID, action string) (bool, error)
	Release(ctx context.Context, clientID, action string) error
}

// Store keeps each browser's session as two entries, token and user, under the
// browser's client id.
type Store struct {
	cache  Cache
	tokens *auth.TokenService
	ttl    time.Duration
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a session store. tokens may be nil to skip expiry checks.
func NewStore(cache Cache, tokens *auth.TokenService, ttl time.Duration) *Store {
	return &Store{cache: cache, tokens: tokens, ttl: ttl}
}

func key(clientID, name string) string {
	return keyPrefix + clientID + ":" + name
}

// Get returns the stored session, or nil when there is none. Missing or
// malformed entries and expired tokens all read as no session.
func (s *Store) Get(ctx context.Context, clientID string) (*model.Session, error) {
	if clientID == "" {
		return nil, nil
	}
	token, _ := s.cache.Get(ctx, key(clientID, tokenKey))
	if len(token) == 0 {
		return nil, nil
	}
	raw, _ := s.cache.Get(ctx, key(clientID, userKey))
	if len(raw) == 0 {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil || user.Name == "" {
		return nil, nil
	}

	if s.tokens != nil && s.tokens.Expired(string(token)) {
		if err := s.Clear(ctx, clientID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return &model.Session{Token: string(token), User: user}, nil
}

// Set replaces both session entries.
func (s *Store) Set(ctx context.Context, clientID string, sess model.Session) error {
	payload, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	if err := s.cache.Set(ctx, key(clientID, tokenKey), []byte(sess.Token), s.ttl); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	if err := s.cache.Set(ctx, key(clientID, userKey), payload, s.ttl); err != nil {
		return fmt.Errorf("store session user: %w", err)
	}
	return nil
}

// Clear removes both session entries.
func (s *Store) Clear(ctx context.Context, clientID string) error {
	if err := s.cache.Delete(ctx, key(clientID, tokenKey), key(clientID, userKey)); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// SetFlash queues an alert for the next render.
func (s *Store) SetFlash(ctx context.Context, clientID string, flash Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	return s.cache.Set(ctx, key(clientID, flashKey), payload, flashTTL)
}

// PopFlash returns and removes the queued alert, if any.
func (s *Store) PopFlash(ctx context.Context, clientID string) (*Flash, error) {
	if clientID == "" {
		return nil, nil
	}
	raw, _ := s.cache.Get(ctx, key(clientID, flashKey))
	if len(raw) == 0 {
		return nil, nil
	}
	if err := s.cache.Delete(ctx, key(clientID, flashKey)); err != nil {
		return nil, err
	}
	var flash Flash
	if err := json.Unmarshal(raw, &flash); err != nil {
		return nil, nil
	}
	return &flash, nil
}

// Acquire marks action as in flight for clientID. It reports false when the
// same action is already running.
func (s *Store) Acquire(ctx context.Context, clientID, action string) (bool, error) {
	return s.cache.SetNX(ctx, key(clientID, inflightKey+action), []byte("1"), InFlightTTL)
}

// Release clears the in-flight mark for action.
func (s *Store) Release(ctx context.Context, clientID, action string) error {
	return s.cache.Delete(ctx, key(clientID, inflightKey+action))
}

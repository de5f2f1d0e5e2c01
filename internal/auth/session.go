// Package auth implements admin login and bearer session management.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
)

// SessionStore persists session tokens with a TTL.
type SessionStore interface {
	// Put stores a token for the given duration.
	Put(ctx context.Context, token string, ttl time.Duration) error

	// Exists reports whether the token is live.
	Exists(ctx context.Context, token string) (bool, error)

	// Delete removes a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

// Credentials holds the configured admin login.
type Credentials struct {
	Email    string
	Password string
}

// Session is a minted bearer session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service authenticates the admin and manages bearer sessions.
type Service struct {
	creds Credentials
	store SessionStore
	ttl   time.Duration
	clock timeutil.Clock
	log   zerolog.Logger
}

// NewService creates a Service. A nil clock falls back to the real clock.
func NewService(creds Credentials, store SessionStore, ttl time.Duration, clock timeutil.Clock, log zerolog.Logger) *Service {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Service{
		creds: creds,
		store: store,
		ttl:   ttl,
		clock: clock,
		log:   log.With().Str("component", "auth").Logger(),
	}
}

// Login checks the submitted credentials and mints a session token.
// Comparison is constant-time to avoid leaking prefix matches.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.creds.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !emailOK || !passOK {
		s.log.Warn().Str("email", email).Msg("Admin login rejected")
		return Session{}, domain.ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.store.Put(ctx, token, s.ttl); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}

	s.log.Info().Msg("Admin login succeeded")
	return Session{Token: token, ExpiresAt: s.clock.Now().Add(s.ttl)}, nil
}

// Authenticate reports whether the token belongs to a live session.
func (s *Service) Authenticate(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauthorized
	}

	ok, err := s.store.Exists(ctx, token)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// Logout revokes the session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// MemoryStore keeps sessions in process memory. Suitable for a single
// instance and for tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time
	clock    timeutil.Clock
}

// NewMemoryStore creates a MemoryStore using the given clock for expiry.
func NewMemoryStore(clock timeutil.Clock) *MemoryStore {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &MemoryStore{
		sessions: make(map[string]time.Time),
		clock:    clock,
	}
}

func (m *MemoryStore) Put(_ context.Context, token string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = m.clock.Now().Add(ttl)
	return nil
}

func (m *MemoryStore) Exists(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.sessions[token]
	if !ok {
		return false, nil
	}
	if m.clock.Now().After(expiry) {
		delete(m.sessions, token)
		return false, nil
	}
	return true, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore over the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *RedisStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(token), "1", ttl).Err()
}

func (r *RedisStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKey(token)).Err()
}

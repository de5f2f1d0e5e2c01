package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snsp-travel/travel-booking-service/internal/domain"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/logger"
	"github.com/snsp-travel/travel-booking-service/internal/infrastructure/timeutil"
)

func newTestService(clock timeutil.Clock) *Service {
	return NewService(
		Credentials{Email: "admin@snsp.com", Password: "s3cret"},
		NewMemoryStore(clock),
		time.Hour,
		clock,
		logger.Nop(),
	)
}

// TestService_Login_Success tests that valid credentials mint a token.
func TestService_Login_Success(t *testing.T) {
	// Arrange
	svc := newTestService(nil)

	// Act
	sess, err := svc.Login(context.Background(), "admin@snsp.com", "s3cret")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.False(t, sess.ExpiresAt.IsZero())
	assert.NoError(t, svc.Authenticate(context.Background(), sess.Token))
}

// TestService_Login_InvalidCredentials tests credential rejection.
func TestService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@snsp.com", "wrong"},
		{"wrong email", "other@snsp.com", "s3cret"},
		{"both wrong", "other@snsp.com", "wrong"},
		{"empty", "", ""},
		{"password prefix", "admin@snsp.com", "s3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil)

			sess, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
			assert.Empty(t, sess.Token)
		})
	}
}

// TestService_Login_UniqueTokens tests each login gets its own token.
func TestService_Login_UniqueTokens(t *testing.T) {
	svc := newTestService(nil)

	s1, err := svc.Login(context.Background(), "admin@snsp.com", "s3cret")
	require.NoError(t, err)
	s2, err := svc.Login(context.Background(), "admin@snsp.com", "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, s1.Token, s2.Token)
}

// TestService_Authenticate_UnknownToken tests unknown tokens are rejected.
func TestService_Authenticate_UnknownToken(t *testing.T) {
	svc := newTestService(nil)

	err := svc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestService_Authenticate_EmptyToken tests the empty token short-circuit.
func TestService_Authenticate_EmptyToken(t *testing.T) {
	svc := newTestService(nil)

	err := svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestService_SessionExpiry tests tokens die after the TTL.
func TestService_SessionExpiry(t *testing.T) {
	// Arrange
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := newTestService(clock)

	sess, err := svc.Login(context.Background(), "admin@snsp.com", "s3cret")
	require.NoError(t, err)
	require.NoError(t, svc.Authenticate(context.Background(), sess.Token))
	assert.Equal(t, clock.Now().Add(time.Hour), sess.ExpiresAt)

	// Act
	clock.Advance(time.Hour + time.Minute)

	// Assert
	err = svc.Authenticate(context.Background(), sess.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// TestService_Logout tests revoked tokens stop authenticating.
func TestService_Logout(t *testing.T) {
	svc := newTestService(nil)

	sess, err := svc.Login(context.Background(), "admin@snsp.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.Token))
	assert.ErrorIs(t, svc.Authenticate(context.Background(), sess.Token), domain.ErrUnauthorized)

	// Logging out again is a no-op.
	assert.NoError(t, svc.Logout(context.Background(), sess.Token))
}

// TestMemoryStore_Expiry tests lazy expiry removes dead tokens.
func TestMemoryStore_Expiry(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	store := NewMemoryStore(clock)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "tok", time.Minute))

	ok, err := store.Exists(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	clock.Advance(2 * time.Minute)

	ok, err = store.Exists(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

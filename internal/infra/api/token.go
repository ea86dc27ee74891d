package api

import (
	"context"
	"sync"
	"time"

	"bytesme-checkout/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

const tokenExpiryLeeway = 30 * time.Second

// StaticTokenSource returns the same token for every request. Useful for
// tests and for hosts that manage refresh themselves.
type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	return s.token, nil
}

// SessionTokenSource pulls a bearer token from the host app's auth provider
// and reuses it until shortly before the expiry claim embedded in the JWT.
// The claim is read without signature verification; the backend remains the
// only party that validates tokens.
type SessionTokenSource struct {
	mu     sync.Mutex
	fetch  func(ctx context.Context) (string, error)
	clock  clock.Clock
	cached string
	expiry time.Time
}

func NewSessionTokenSource(fetch func(ctx context.Context) (string, error), clk clock.Clock) *SessionTokenSource {
	return &SessionTokenSource{
		fetch: fetch,
		clock: clk,
	}
}

func (s *SessionTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != "" && !s.needsRefresh() {
		return s.cached, nil
	}

	token, err := s.fetch(ctx)
	if err != nil {
		return "", err
	}

	s.cached = token
	s.expiry = extractExpiry(token)
	return token, nil
}

func (s *SessionTokenSource) needsRefresh() bool {
	if s.expiry.IsZero() {
		// Opaque token with no readable expiry; reuse it until the host
		// replaces the source.
		return false
	}
	return !s.clock.Now().Before(s.expiry.Add(-tokenExpiryLeeway))
}

func extractExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

//go:build unit

package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesme-checkout/internal/infra/api"
	"bytesme-checkout/internal/pkg/clock"
	"bytesme-checkout/tests/common/backendtest"
)

func TestSessionTokenSource(t *testing.T) {
	t.Run("reuses the token until close to expiry", func(t *testing.T) {
		clk := clock.NewFixedClock(time.Now())
		fetches := 0
		source := api.NewSessionTokenSource(func(_ context.Context) (string, error) {
			fetches++
			return backendtest.MintToken(time.Hour), nil
		}, clk)

		first, err := source.Token(context.Background())
		require.NoError(t, err)
		second, err := source.Token(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, fetches)
	})

	t.Run("refreshes within the expiry leeway", func(t *testing.T) {
		clk := clock.NewFixedClock(time.Now())
		fetches := 0
		source := api.NewSessionTokenSource(func(_ context.Context) (string, error) {
			fetches++
			return backendtest.MintToken(time.Minute), nil
		}, clk)

		_, err := source.Token(context.Background())
		require.NoError(t, err)

		clk.Advance(45 * time.Second)
		_, err = source.Token(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, fetches)
	})

	t.Run("opaque tokens are cached indefinitely", func(t *testing.T) {
		clk := clock.NewFixedClock(time.Now())
		fetches := 0
		source := api.NewSessionTokenSource(func(_ context.Context) (string, error) {
			fetches++
			return "opaque-session-token", nil
		}, clk)

		_, err := source.Token(context.Background())
		require.NoError(t, err)

		clk.Advance(365 * 24 * time.Hour)
		token, err := source.Token(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "opaque-session-token", token)
		assert.Equal(t, 1, fetches)
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		clk := clock.NewFixedClock(time.Now())
		source := api.NewSessionTokenSource(func(_ context.Context) (string, error) {
			return "", context.DeadlineExceeded
		}, clk)

		_, err := source.Token(context.Background())
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

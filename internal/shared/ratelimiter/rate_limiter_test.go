package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowsBurstUpToLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, rl.Wait(context.Background()), "call %d should pass immediately", i)
	}
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1, time.Hour)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	assert.Error(t, err, "second call within the interval must not be allowed before the deadline")
}

func TestRateLimiter_Unlimited(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		limit    int
		interval time.Duration
	}{
		{"zero limit", 0, time.Minute},
		{"negative limit", -1, time.Minute},
		{"zero interval", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := NewRateLimiter(tt.limit, tt.interval)
			for i := 0; i < 100; i++ {
				assert.NoError(t, rl.Wait(context.Background()))
			}
		})
	}
}

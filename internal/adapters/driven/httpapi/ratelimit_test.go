package httpapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Wait(t *testing.T) {
	limiter := NewRateLimiter(100, 5)

	for range 5 {
		require.NoError(t, limiter.Wait(context.Background()))
	}
}

func TestRateLimiter_Unlimited(t *testing.T) {
	limiter := NewRateLimiter(0, 0)

	for range 100 {
		require.NoError(t, limiter.Wait(context.Background()))
	}
}

func TestRateLimiter_RecordRateLimited(t *testing.T) {
	limiter := NewRateLimiter(100, 5)
	limiter.RecordRateLimited(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 30*time.Second, parseRetryAfter("30", now))
	assert.Equal(t, time.Minute, parseRetryAfter("Sat, 01 Mar 2025 12:01:00 UTC", now))
	assert.Zero(t, parseRetryAfter("", now))
	assert.Zero(t, parseRetryAfter("soon", now))
}

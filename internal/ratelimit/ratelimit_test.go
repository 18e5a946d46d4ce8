package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurstThenThrottle(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewInMemoryLimiter(6, time.Minute, 3)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))

	assert.True(t, l.Allow(2), "users have separate buckets")

	now = now.Add(10 * time.Second)
	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))
}

func TestPrune(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewInMemoryLimiter(6, time.Minute, 3)
	l.now = func() time.Time { return now }

	l.Allow(1)
	now = now.Add(time.Hour)
	l.Allow(2)

	assert.Equal(t, 1, l.Prune(30*time.Minute))
	assert.Len(t, l.users, 1)
	assert.Contains(t, l.users, int64(2))
}

func TestUnlimitedWhenRateUnset(t *testing.T) {
	l := NewInMemoryLimiter(0, 0, 0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow(1))
	}
}

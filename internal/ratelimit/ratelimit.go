package ratelimit

import (
	"sync"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"golang.org/x/time/rate"
)

// Limiter throttles button presses per Telegram user.
type Limiter interface {
	Allow(userID int64) bool
	// Prune forgets users idle for longer than idle and reports how many.
	Prune(idle time.Duration) int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// InMemoryLimiter is an implementation of Limiter stored in memory
type InMemoryLimiter struct {
	users map[int64]*entry
	mu    sync.Mutex
	r     rate.Limit // Rate of adding tokens (e.g., 1 token every 10 seconds)
	b     int        // Bucket size (e.g., can perform 3 commands in a row)
	now   func() time.Time
}

func New(cfg *config.Config) Limiter {
	return NewInMemoryLimiter(cfg.Bot.RateLimit, cfg.Bot.RatePeriod, cfg.Bot.RateBurst)
}

// NewInMemoryLimiter creates a new rate limiter
// Example: NewInMemoryLimiter(6, time.Minute, 3) -> one command every 10 seconds, burst of 3 commands
func NewInMemoryLimiter(requests int, per time.Duration, burst int) *InMemoryLimiter {
	r := rate.Inf
	if requests > 0 && per > 0 {
		r = rate.Every(per / time.Duration(requests))
	}
	if burst < 1 {
		burst = 1
	}
	return &InMemoryLimiter{
		users: make(map[int64]*entry),
		r:     r,
		b:     burst,
		now:   time.Now,
	}
}

// Allow checks if a user is allowed to perform an action
func (l *InMemoryLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, exists := l.users[userID]
	if !exists {
		e = &entry{limiter: rate.NewLimiter(l.r, l.b)}
		l.users[userID] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

func (l *InMemoryLimiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	removed := 0
	for id, e := range l.users {
		if e.lastSeen.Before(cutoff) {
			delete(l.users, id)
			removed++
		}
	}
	return removed
}

var _ Limiter = (*InMemoryLimiter)(nil)

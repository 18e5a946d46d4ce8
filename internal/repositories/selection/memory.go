package selection

import (
	"context"
	"sync"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	items map[int64]Selection
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryRepository(cfg *config.Config) *MemoryRepository {
	return newMemoryRepository(cfg.Bot.SelectionTTL, time.Now)
}

func newMemoryRepository(ttl time.Duration, now func() time.Time) *MemoryRepository {
	return &MemoryRepository{
		items: make(map[int64]Selection),
		ttl:   ttl,
		now:   now,
	}
}

func (r *MemoryRepository) Get(_ context.Context, userID int64) (*Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[userID]
	if !ok || r.expired(s) {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryRepository) Set(_ context.Context, userID int64, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[userID] = Selection{
		UserID:    userID,
		Username:  username,
		UpdatedAt: r.now(),
	}
	return nil
}

func (r *MemoryRepository) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, s := range r.items {
		if r.expired(s) {
			delete(r.items, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryRepository) expired(s Selection) bool {
	return r.ttl > 0 && r.now().Sub(s.UpdatedAt) > r.ttl
}

var _ Repository = (*MemoryRepository)(nil)

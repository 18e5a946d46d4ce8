package selection

import (
	"context"
	"errors"
	"time"
)

// Selection is the profile a Telegram user is currently working with.
type Selection struct {
	UserID    int64
	Username  string
	UpdatedAt time.Time
}

var ErrNotFound = errors.New("selection not found")

//go:generate go run go.uber.org/mock/mockgen -source=selection.go -destination=mocks/mock.go

type Repository interface {
	// Get returns ErrNotFound when the user has no selection or it expired.
	Get(ctx context.Context, userID int64) (*Selection, error)
	Set(ctx context.Context, userID int64, username string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

package instagram

import (
	"context"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=instagram.go -destination=mocks/mock.go

// Client is the single gateway to Instagram. Every call except Login checks
// the session and paces itself before talking to the platform.
type Client interface {
	Login(ctx context.Context) error
	EnsureSession(ctx context.Context) error

	FetchProfile(ctx context.Context, username string) (*domain.Profile, error)
	FetchStories(ctx context.Context, profileID int64) ([]domain.MediaItem, error)
	FetchHighlights(ctx context.Context, profile *domain.Profile) ([]domain.Highlight, error)

	// DownloadItem writes at most one media file for item into dir.
	DownloadItem(ctx context.Context, item domain.MediaItem, dir string) error
	// DownloadProfilePicture stores the avatar in dir and returns its path.
	DownloadProfilePicture(ctx context.Context, profile *domain.Profile, dir string) (string, error)
}

// Downloader is the slice of Client the delivery pipeline needs.
type Downloader interface {
	DownloadItem(ctx context.Context, item domain.MediaItem, dir string) error
}

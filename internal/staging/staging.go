package staging

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

// batchMarker prefixes every directory the store allocates so Sweep never
// touches anything it did not create.
const batchMarker = "batch-"

var mediaExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".mp4":  true,
	".mov":  true,
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// Store hands out one private directory per delivery batch.
type Store struct {
	root   string
	logger logger.Logger
}

func New(opts Opts) (*Store, error) {
	root := opts.Config.Bot.StagingDir
	if root == "" {
		root = filepath.Join(os.TempDir(), "insta-profile-bot")
	}
	return NewStore(root, opts.Logger)
}

func NewStore(root string, log logger.Logger) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindStorage, "create staging root")
	}
	return &Store{
		root:   root,
		logger: log.WithComponent("staging"),
	}, nil
}

func (s *Store) Root() string {
	return s.root
}

// Create allocates a fresh, uniquely named directory for one batch.
func (s *Store) Create(prefix string) (string, error) {
	dir, err := os.MkdirTemp(s.root, batchMarker+sanitize(prefix)+"*")
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindStorage, "create staging directory")
	}
	s.logger.Info("Created staging directory", "dir", dir)
	return dir, nil
}

// LatestMedia returns the most recently modified media file directly inside
// dir. ok is false when dir holds no media.
func (s *Store) LatestMedia(dir string) (path string, ok bool, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false, apperrors.Wrap(err, apperrors.KindStorage, "scan staging directory")
	}

	var newest time.Time
	for _, entry := range entries {
		if entry.IsDir() || !IsMedia(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		if !ok || info.ModTime().After(newest) {
			path, newest, ok = filepath.Join(dir, entry.Name()), info.ModTime(), true
		}
	}

	if !ok {
		s.logger.Warn("No media files in staging directory", "dir", dir)
	}
	return path, ok, nil
}

// Cleanup removes dir and everything in it. A missing dir is only logged.
func (s *Store) Cleanup(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		s.logger.Warn("Staging directory already gone, skipping cleanup", "dir", dir)
		return
	}
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Error("Failed to remove staging directory", "dir", dir, "error", err)
		return
	}
	s.logger.Info("Cleaned up staging directory", "dir", dir)
}

// Sweep removes batch directories older than maxAge, left behind when the
// process died mid-batch. It returns how many were removed.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindStorage, "scan staging root")
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), batchMarker) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(s.root, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Error("Failed to sweep staging directory", "dir", dir, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

// IsMedia reports whether name carries one of the accepted media extensions.
func IsMedia(name string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(name))]
}

func sanitize(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == filepath.Separator || r == '*' {
			return '_'
		}
		return r
	}, prefix)
}

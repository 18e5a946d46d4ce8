package instagramimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDownloadTestImpl(client *http.Client) *InstaImpl {
	ig := &InstaImpl{
		logger:  testLogger(),
		pacer:   NoopPacer{},
		http:    client,
		headers: newHeaderPool([]string{"test-agent"}, "instagram.com"),
	}
	ig.validate = func(context.Context) bool { return true }
	ig.relogin = func(context.Context) error { return nil }
	return ig
}

func TestFetchToFile(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("media-bytes"))
	}))
	defer srv.Close()

	ig := newDownloadTestImpl(srv.Client())
	path := filepath.Join(t.TempDir(), "item.jpg")

	require.NoError(t, ig.fetchToFile(context.Background(), srv.URL, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "media-bytes", string(data))
	assert.Equal(t, "test-agent", gotAgent)
}

func TestFetchToFileBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	ig := newDownloadTestImpl(srv.Client())
	dir := t.TempDir()

	err := ig.fetchToFile(context.Background(), srv.URL, filepath.Join(dir, "item.jpg"))
	assert.True(t, apperrors.IsRemote(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchToFileUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	ig := newDownloadTestImpl(&http.Client{Timeout: time.Second})
	err := ig.fetchToFile(context.Background(), url, filepath.Join(t.TempDir(), "x.jpg"))
	assert.True(t, apperrors.IsRemote(err))
}

func TestDownloadItemWithoutMedia(t *testing.T) {
	ig := newDownloadTestImpl(http.DefaultClient)
	dir := t.TempDir()

	require.NoError(t, ig.DownloadItem(context.Background(), domain.MediaItem{ID: "1"}, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestItemFileName(t *testing.T) {
	taken := time.Date(2024, time.May, 1, 8, 30, 15, 0, time.UTC)

	assert.Equal(t, "2024-05-01_08-30-15_UTC_42.jpg",
		itemFileName(domain.MediaItem{ID: "42", TakenAt: taken, Kind: domain.MediaPhoto}))
	assert.Equal(t, "2024-05-01_08-30-15_UTC_43.mp4",
		itemFileName(domain.MediaItem{ID: "43", TakenAt: taken, Kind: domain.MediaVideo}))
}

func TestHDAvatarURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.example/v/t51/s1080x1080/pic.jpg",
		hdAvatarURL("https://cdn.example/v/t51/s150x150/pic.jpg"))
	assert.Equal(t, "https://cdn.example/pic.jpg", hdAvatarURL("https://cdn.example/pic.jpg"))
}

func TestHeaderPoolDefaults(t *testing.T) {
	pool := newHeaderPool(nil, "www.instagram.com")
	assert.Equal(t, "https://www.instagram.com/", pool.landing)
	assert.NotEmpty(t, pool.agents)
}

package delivery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	mock_instagram "github.com/orgball2608/insta-profile-telegram-bot/internal/instagram/mocks"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/staging"
	mock_telegram "github.com/orgball2608/insta-profile-telegram-bot/internal/telegram/mocks"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const chatID int64 = 42

type fixture struct {
	pipeline   *Pipeline
	root       string
	downloader *mock_instagram.MockDownloader
	telegram   *mock_telegram.MockClient
}

func newFixture(t *testing.T, maxBytes int64) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := logger.New(logger.Opts{Env: "test", Output: io.Discard})

	root := t.TempDir()
	store, err := staging.NewStore(root, log)
	require.NoError(t, err)

	f := &fixture{
		root:       root,
		downloader: mock_instagram.NewMockDownloader(ctrl),
		telegram:   mock_telegram.NewMockClient(ctrl),
	}
	f.pipeline = NewPipeline(store, f.downloader, f.telegram, maxBytes, log)
	return f
}

// writes stubs DownloadItem with a file of the given size per item id; a
// missing id produces no file.
func (f *fixture) writes(sizes map[string]int) {
	f.downloader.EXPECT().DownloadItem(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item domain.MediaItem, dir string) error {
			size, ok := sizes[item.ID]
			if !ok {
				return nil
			}
			ext := "jpg"
			if item.Kind == domain.MediaVideo {
				ext = "mp4"
			}
			name := filepath.Join(dir, fmt.Sprintf("item_%s.%s", item.ID, ext))
			return os.WriteFile(name, []byte(strings.Repeat("x", size)), 0o600)
		}).AnyTimes()
}

func (f *fixture) assertStagingEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(f.root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func storyItems(n int) []domain.MediaItem {
	base := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)
	items := make([]domain.MediaItem, n)
	for i := range items {
		items[i] = domain.MediaItem{
			ID:      fmt.Sprint(i + 1),
			TakenAt: base.Add(time.Duration(i) * time.Minute),
			Kind:    domain.MediaPhoto,
		}
	}
	return items
}

func storyBatch(items []domain.MediaItem) Batch {
	return Batch{
		ChatID:        chatID,
		Prefix:        "jdoe",
		Items:         items,
		Caption:       StoryCaption(time.UTC),
		Chronological: true,
		OversizeText:  "too large",
		Summary:       func(sent int) string { return fmt.Sprintf("sent %d", sent) },
	}
}

func TestDeliverAllWithinLimit(t *testing.T) {
	f := newFixture(t, 100)
	f.writes(map[string]int{"1": 10, "2": 10, "3": 10})

	f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.telegram.EXPECT().SendMessage(chatID, "sent 3").Return(1, nil)

	sent, err := f.pipeline.Deliver(context.Background(), storyBatch(storyItems(3)))

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	f.assertStagingEmpty(t)
}

func TestDeliverSkipsOversizedItem(t *testing.T) {
	f := newFixture(t, 100)
	f.writes(map[string]int{"1": 10, "2": 101, "3": 10})

	gomock.InOrder(
		f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), "📸 02-01-2024 10:00").Return(nil),
		f.telegram.EXPECT().SendMessage(chatID, "too large").Return(1, nil),
		f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), "📸 02-01-2024 10:02").Return(nil),
		f.telegram.EXPECT().SendMessage(chatID, "sent 2").Return(2, nil),
	)

	sent, err := f.pipeline.Deliver(context.Background(), storyBatch(storyItems(3)))

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	f.assertStagingEmpty(t)
}

func TestDeliverSkipsItemWithoutFile(t *testing.T) {
	f := newFixture(t, 100)
	f.writes(map[string]int{"1": 10})

	f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), gomock.Any()).Return(nil)
	f.telegram.EXPECT().SendMessage(chatID, "sent 1").Return(1, nil)

	sent, err := f.pipeline.Deliver(context.Background(), storyBatch(storyItems(2)))

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestDeliverEmptyBatchStillSummarizes(t *testing.T) {
	f := newFixture(t, 100)
	f.telegram.EXPECT().SendMessage(chatID, "sent 0").Return(1, nil)

	sent, err := f.pipeline.Deliver(context.Background(), storyBatch(nil))

	require.NoError(t, err)
	assert.Zero(t, sent)
	f.assertStagingEmpty(t)
}

func TestDeliverAbortsAndCleansUp(t *testing.T) {
	f := newFixture(t, 100)
	transport := apperrors.New(apperrors.KindRemote, "connection reset")

	gomock.InOrder(
		f.downloader.EXPECT().DownloadItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item domain.MediaItem, dir string) error {
				return os.WriteFile(filepath.Join(dir, "first.jpg"), []byte("x"), 0o600)
			}),
		f.downloader.EXPECT().DownloadItem(gomock.Any(), gomock.Any(), gomock.Any()).Return(transport),
	)
	f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), gomock.Any()).Return(nil)

	sent, err := f.pipeline.Deliver(context.Background(), storyBatch(storyItems(3)))

	assert.True(t, errors.Is(err, transport))
	assert.True(t, apperrors.IsRemote(err))
	assert.Equal(t, 1, sent)
	f.assertStagingEmpty(t)
}

func TestDeliverSendFailureAborts(t *testing.T) {
	f := newFixture(t, 100)
	f.writes(map[string]int{"1": 10, "2": 10})

	f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))

	_, err := f.pipeline.Deliver(context.Background(), storyBatch(storyItems(2)))

	assert.True(t, apperrors.IsRemote(err))
	f.assertStagingEmpty(t)
}

func TestDeliverChronologicalAndVideo(t *testing.T) {
	f := newFixture(t, 100)
	items := storyItems(2)
	items[0], items[1] = items[1], items[0]
	items[0].Kind = domain.MediaVideo
	f.writes(map[string]int{"1": 5, "2": 5})

	gomock.InOrder(
		f.telegram.EXPECT().SendPhoto(chatID, gomock.Any(), "📸 02-01-2024 10:00").Return(nil),
		f.telegram.EXPECT().SendVideo(chatID, gomock.Any(), "📹 02-01-2024 10:01").Return(nil),
	)

	batch := storyBatch(items)
	batch.Summary = nil

	sent, err := f.pipeline.Deliver(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestHighlightCaption(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	caption := HighlightCaption(jakarta, "Bali")(3, domain.MediaItem{
		TakenAt: time.Date(2023, time.July, 1, 20, 15, 0, 0, time.UTC),
		Kind:    domain.MediaVideo,
	})
	assert.Equal(t, "[3]. 🌟 Bali - 📹 02-07-2023 03:15", caption)
}

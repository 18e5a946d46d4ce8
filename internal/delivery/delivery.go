package delivery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/domain"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/instagram"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/staging"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/formatter"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

// CaptionFunc captions the item at the 1-based position index of the batch.
type CaptionFunc func(index int, item domain.MediaItem) string

// Batch is one ordered delivery to a chat.
type Batch struct {
	ChatID int64
	// Prefix names the staging directory, usually the profile username.
	Prefix  string
	Items   []domain.MediaItem
	Caption CaptionFunc
	// Chronological sorts items by capture time before sending.
	Chronological bool
	// OversizeText is sent for every item above the size ceiling.
	OversizeText string
	// Summary renders the closing message from the sent count. Nil sends none.
	Summary func(sent int) string
}

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Staging    *staging.Store
	Downloader instagram.Downloader
	Telegram   telegram.Client
}

type Pipeline struct {
	staging    *staging.Store
	downloader instagram.Downloader
	telegram   telegram.Client
	maxBytes   int64
	logger     logger.Logger
}

func New(opts Opts) *Pipeline {
	return NewPipeline(opts.Staging, opts.Downloader, opts.Telegram, opts.Config.MaxFileSizeBytes(), opts.Logger)
}

func NewPipeline(store *staging.Store, downloader instagram.Downloader, tg telegram.Client, maxBytes int64, log logger.Logger) *Pipeline {
	return &Pipeline{
		staging:    store,
		downloader: downloader,
		telegram:   tg,
		maxBytes:   maxBytes,
		logger:     log.WithComponent("delivery"),
	}
}

// Deliver sends the batch item by item and returns how many items reached the
// chat. Items already sent stay sent when a later one fails; the failing
// batch gets no summary. The staging directory is gone when Deliver returns.
func (p *Pipeline) Deliver(ctx context.Context, b Batch) (int, error) {
	dir, err := p.staging.Create(b.Prefix)
	if err != nil {
		return 0, err
	}
	defer p.staging.Cleanup(dir)

	items := b.Items
	if b.Chronological {
		items = make([]domain.MediaItem, len(b.Items))
		copy(items, b.Items)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].TakenAt.Before(items[j].TakenAt)
		})
	}

	p.logger.Info("Delivering batch", "chatID", b.ChatID, "prefix", b.Prefix, "items", len(items))

	sent := 0
	for i, item := range items {
		delivered, err := p.deliverItem(ctx, b, dir, item, i+1)
		if err != nil {
			p.logger.Error("Batch aborted", "chatID", b.ChatID, "item", item.ID, "sent", sent, "error", err)
			return sent, err
		}
		if delivered {
			sent++
		}
	}

	p.logger.Info("Batch delivered", "chatID", b.ChatID, "sent", sent, "total", len(items))

	if b.Summary != nil {
		if _, err := p.telegram.SendMessage(b.ChatID, b.Summary(sent)); err != nil {
			return sent, apperrors.Wrap(err, apperrors.KindRemote, "send batch summary")
		}
	}
	return sent, nil
}

func (p *Pipeline) deliverItem(ctx context.Context, b Batch, dir string, item domain.MediaItem, index int) (bool, error) {
	if err := p.downloader.DownloadItem(ctx, item, dir); err != nil {
		return false, fmt.Errorf("download item %s: %w", item.ID, err)
	}

	path, ok, err := p.staging.LatestMedia(dir)
	if err != nil {
		return false, err
	}
	if !ok {
		p.logger.Warn("No media file for item, skipping", "item", item.ID)
		return false, nil
	}
	defer p.remove(path)

	info, err := os.Stat(path)
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.KindStorage, "stat media file")
	}

	if info.Size() > p.maxBytes {
		p.logger.Warn("Media file exceeds size limit", "item", item.ID, "size", info.Size(), "limit", p.maxBytes)
		if _, err := p.telegram.SendMessage(b.ChatID, b.OversizeText); err != nil {
			return false, apperrors.Wrap(err, apperrors.KindRemote, "send size warning")
		}
		return false, nil
	}

	caption := ""
	if b.Caption != nil {
		caption = b.Caption(index, item)
	}

	if isVideo(item, path) {
		err = p.telegram.SendVideo(b.ChatID, path, caption)
	} else {
		err = p.telegram.SendPhoto(b.ChatID, path, caption)
	}
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.KindRemote, "send media")
	}
	return true, nil
}

func (p *Pipeline) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("Failed to remove media file", "path", path, "error", err)
	}
}

func isVideo(item domain.MediaItem, path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov":
		return true
	case ".jpg", ".jpeg", ".png":
		return false
	}
	return item.Kind == domain.MediaVideo
}

// StoryCaption renders "{glyph} {timestamp}" in loc.
func StoryCaption(loc *time.Location) CaptionFunc {
	return func(_ int, item domain.MediaItem) string {
		return fmt.Sprintf("%s %s", item.Kind.Glyph(), formatter.Timestamp(item.TakenAt, loc))
	}
}

// HighlightCaption numbers the items and names the highlight they belong to.
func HighlightCaption(loc *time.Location, title string) CaptionFunc {
	return func(index int, item domain.MediaItem) string {
		return fmt.Sprintf("[%d]. 🌟 %s - %s %s", index, title, item.Kind.Glyph(), formatter.Timestamp(item.TakenAt, loc))
	}
}

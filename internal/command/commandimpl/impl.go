package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/delivery"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/instagram"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/repositories/selection"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/staging"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Instagram instagram.Client
	Telegram  telegram.Client
	Selection selection.Repository
	Delivery  *delivery.Pipeline
	Staging   *staging.Store
	Locale    *locale.Catalog
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
	Config    *config.Config
}

type CommandImpl struct {
	Instagram instagram.Client
	Telegram  telegram.Client
	Selection selection.Repository
	Delivery  *delivery.Pipeline
	Staging   *staging.Store
	Locale    *locale.Catalog
	Limiter   ratelimit.Limiter
	Logger    logger.Logger

	matcher  *command.URLMatcher
	pool     *ants.Pool
	location *time.Location
	pageSize int
	maxBytes int64
}

func New(opts Opts) (*CommandImpl, error) {
	log := opts.Logger.WithComponent("command")

	pool, err := ants.NewPool(opts.Config.Telegram.Workers, ants.WithPanicHandler(func(p interface{}) {
		log.Error("Panic recovered in update worker", "panic", p, "stack", string(debug.Stack()))
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &CommandImpl{
		Instagram: opts.Instagram,
		Telegram:  opts.Telegram,
		Selection: opts.Selection,
		Delivery:  opts.Delivery,
		Staging:   opts.Staging,
		Locale:    opts.Locale,
		Limiter:   opts.Limiter,
		Logger:    log,
		matcher:   command.NewURLMatcher(opts.Config.Instagram.Host),
		pool:      pool,
		location:  opts.Config.Location(),
		pageSize:  opts.Config.Bot.ItemsPerPage,
		maxBytes:  opts.Config.MaxFileSizeBytes(),
	}, nil
}

// HandleCommand receives updates until ctx is done and runs each one on the
// worker pool.
func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			if err := c.pool.Submit(func() { c.handleUpdate(ctx, update) }); err != nil {
				c.Logger.Error("Failed to submit update to worker pool", "updateID", update.UpdateID, "error", err)
			}
		}
	}
}

// Close waits for running workers to finish.
func (c *CommandImpl) Close(timeout time.Duration) error {
	return c.pool.ReleaseTimeout(timeout)
}

func (c *CommandImpl) handleUpdate(ctx context.Context, u tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	switch {
	case u.CallbackQuery != nil:
		c.handleCallback(ctx, u.CallbackQuery)
	case u.Message != nil:
		c.handleMessage(ctx, u.Message)
	}
}

var _ command.Client = (*CommandImpl)(nil)

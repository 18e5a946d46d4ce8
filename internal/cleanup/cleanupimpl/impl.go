package cleanupimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/cleanup"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/repositories/selection"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/staging"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

// Batches normally live for seconds; anything this old was orphaned.
const staleBatchAge = time.Hour

type Opts struct {
	fx.In

	Staging   *staging.Store
	Selection selection.Repository
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
	Config    *config.Config
}

type CleanupImpl struct {
	Staging   *staging.Store
	Selection selection.Repository
	Limiter   ratelimit.Limiter
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *CleanupImpl {
	return &CleanupImpl{
		Staging:   opts.Staging,
		Selection: opts.Selection,
		Limiter:   opts.Limiter,
		Logger:    opts.Logger.WithComponent("cleanup"),
		Config:    opts.Config,
	}
}

var _ cleanup.Client = (*CleanupImpl)(nil)

// ScheduleCleanup runs RunOnce every sweep interval until ctx is done.
func (c *CleanupImpl) ScheduleCleanup(ctx context.Context) error {
	interval := c.Config.Bot.SweepInterval
	if interval <= 0 {
		c.Logger.Info("Cleanup disabled, sweep interval is not positive")
		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(c.Config.Location()))
	if err != nil {
		return fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				c.Logger.Info("Context cancelled, skipping cleanup run")
				return
			}
			c.RunOnce(ctx)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}

	scheduler.Start()
	c.Logger.Info("Cleanup scheduled", "interval", interval.String())

	go func() {
		<-ctx.Done()
		c.Logger.Info("Stopping cleanup scheduler")
		if err := scheduler.Shutdown(); err != nil {
			c.Logger.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return nil
}

// RunOnce performs a single pass. A failing step is logged and the others
// still run.
func (c *CleanupImpl) RunOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	swept, err := c.Staging.Sweep(staleBatchAge)
	if err != nil {
		c.Logger.Error("Failed to sweep staging directories", "error", err)
	}

	expired, err := c.Selection.DeleteExpired(runCtx)
	if err != nil {
		c.Logger.Error("Failed to delete expired selections", "error", err)
	}

	pruned := c.Limiter.Prune(c.idleLimit())

	c.Logger.Info("Cleanup completed",
		"staging_swept", swept,
		"selections_expired", expired,
		"limiters_pruned", pruned,
	)
}

// idleLimit is how long a user may stay silent before their bucket is
// dropped. By then it has refilled anyway.
func (c *CleanupImpl) idleLimit() time.Duration {
	if c.Config.Bot.RatePeriod > c.Config.Bot.SweepInterval {
		return c.Config.Bot.RatePeriod
	}
	return c.Config.Bot.SweepInterval
}

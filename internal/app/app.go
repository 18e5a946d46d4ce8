package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/cleanup"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/cleanup/cleanupimpl"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/command/commandimpl"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/db"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/delivery"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/instagram"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/instagram/instagramimpl"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/ratelimit"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/repositories/selection"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/staging"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram/telegramimpl"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/pgx"
	"go.uber.org/fx"
)

const workerDrainTimeout = 30 * time.Second

// Module wires the bot for cfg. Selections live in Postgres when a database
// host is configured and in memory otherwise.
func Module(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logger.FxOption,
		),
		fx.Provide(
			fx.Annotate(
				telegramimpl.New,
				fx.As(new(telegram.Client)),
			), fx.Annotate(
				instagramimpl.New,
				fx.As(new(instagram.Client)),
				fx.As(new(instagram.Downloader)),
			), fx.Annotate(
				cleanupimpl.New,
				fx.As(new(cleanup.Client)),
			),
			fx.Annotate(
				commandimpl.New,
				fx.As(fx.Self()),
				fx.As(new(command.Client)),
			),
			staging.New,
			delivery.New,
			locale.New,
			ratelimit.New,
		),
		storage(cfg),
		fx.Invoke(run),
	)
}

func storage(cfg *config.Config) fx.Option {
	if !cfg.PostgresEnabled() {
		return selection.MemoryModule
	}
	return fx.Options(
		fx.Provide(pgx.New),
		selection.PgxModule,
		fx.Invoke(func(lc fx.Lifecycle, c *config.Config, log logger.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					return db.Migrate(ctx, c, log)
				},
			})
		}),
	)
}

type runOpts struct {
	fx.In

	LC        fx.Lifecycle
	Logger    logger.Logger
	Config    *config.Config
	Telegram  telegram.Client
	Instagram instagram.Client
	Command   *commandimpl.CommandImpl
	Cleanup   cleanup.Client
}

func run(opts runOpts) {
	log := opts.Logger
	ctx, cancel := context.WithCancel(context.Background())
	server := newHealthServer(log, opts.Config.App.Port)

	opts.LC.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := opts.Instagram.Login(startCtx); err != nil {
				log.Error("Instagram login error", "error", err)
				notifyAdmin(log, opts.Telegram, opts.Config, "Instagram login error: "+err.Error())
				return err
			}

			if err := opts.Cleanup.ScheduleCleanup(ctx); err != nil {
				log.Error("Schedule cleanup error", "error", err)
				return err
			}

			go func() {
				err := opts.Command.HandleCommand(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Error("Command error", "error", err)
					notifyAdmin(log, opts.Telegram, opts.Config, "Command error: "+err.Error())
				}
			}()

			go func() {
				log.Info(fmt.Sprintf("Starting server on %s", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()

			if err := server.Shutdown(stopCtx); err != nil {
				log.Warn("Failed to shut down health server", "error", err)
			}

			timeout := workerDrainTimeout
			if deadline, ok := stopCtx.Deadline(); ok {
				timeout = time.Until(deadline)
			}
			if err := opts.Command.Close(timeout); err != nil {
				log.Warn("Workers still running at shutdown", "error", err)
			}

			if f, ok := log.(interface{ Flush(context.Context) }); ok {
				f.Flush(stopCtx)
			}
			return nil
		},
	})
}

// notifyAdmin reports to the operator chat when one is configured.
func notifyAdmin(log logger.Logger, tg telegram.Client, cfg *config.Config, text string) {
	if cfg.Telegram.AdminChatID == 0 {
		return
	}
	if _, err := tg.SendMessage(cfg.Telegram.AdminChatID, text); err != nil {
		log.Error("Failed to notify admin", "error", err)
	}
}

func newHealthServer(log logger.Logger, port int) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "error", err)
	}
}

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	Level     string
	SentryDSN string
	// Secrets are masked wherever they appear in messages or string attributes.
	Secrets []string
	Output  io.Writer
}

type Impl struct {
	*slog.Logger
}

func New(opts Opts) *Impl {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level := parseLevel(opts.Level)

	var zl zerolog.Logger
	if opts.Env == "" || opts.Env == "development" {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(out).With().Timestamp().Logger()
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Error().Err(err).Msg("Failed to init sentry, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	handler := slogmulti.
		Pipe(redactMiddleware(opts.Secrets)).
		Handler(slogmulti.Fanout(handlers...))

	return &Impl{Logger: slog.New(handler)}
}

func (l *Impl) WithComponent(name string) Logger {
	return &Impl{Logger: l.Logger.With("component", name)}
}

// Printf lets fx report its own lifecycle through the same handlers.
func (l *Impl) Printf(format string, args ...interface{}) {
	l.Logger.Debug(fmt.Sprintf(format, args...))
}

// Flush waits for buffered sentry events before the process exits.
func (l *Impl) Flush(ctx context.Context) {
	if deadline, ok := ctx.Deadline(); ok {
		sentry.Flush(time.Until(deadline))
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var _ Logger = (*Impl)(nil)

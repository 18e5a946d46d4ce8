package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
)

type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      2,
		InitialInterval: time.Second,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

// Permanent stops Do from retrying and makes it return err unchanged.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs operation until it succeeds, returns a Permanent error, runs out of
// retries or ctx is done.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.Multiplier = cfg.Multiplier
	bo.MaxElapsedTime = 0
	bo.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		log.Warn(
			"Operation failed, retrying",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", next.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(operation, policy, notify)
}

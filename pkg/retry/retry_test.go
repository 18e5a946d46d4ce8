package retry

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func quietLogger() logger.Logger {
	return logger.New(logger.Opts{Env: "test", Output: io.Discard})
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quietLogger(), "login", func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	}, fastConfig())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnPermanent(t *testing.T) {
	rejected := errors.New("bad password")
	calls := 0
	err := Do(context.Background(), quietLogger(), "login", func() error {
		calls++
		return Permanent(rejected)
	}, fastConfig())

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, calls)
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	err := Do(context.Background(), quietLogger(), "login", func() error {
		calls++
		return errors.New("still down")
	}, fastConfig())

	assert.EqualError(t, err, "still down")
	assert.Equal(t, 4, calls)
}

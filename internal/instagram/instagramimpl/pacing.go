package instagramimpl

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
)

// Pacer is called before every remote request.
type Pacer interface {
	Pace(ctx context.Context) error
}

// NoopPacer never waits. Used when pacing is switched off and in tests.
type NoopPacer struct{}

func (NoopPacer) Pace(context.Context) error { return nil }

type PacingConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration

	// After every BurstMin..BurstMax calls (drawn once) a long pause follows.
	BurstMin  int
	BurstMax  int
	LongDelay [2]time.Duration

	DecoyProbability float64
	DecoyDelay       [2]time.Duration
}

func DefaultPacing() PacingConfig {
	return PacingConfig{
		MinDelay:         2 * time.Second,
		MaxDelay:         5 * time.Second,
		BurstMin:         5,
		BurstMax:         10,
		LongDelay:        [2]time.Duration{30 * time.Second, 60 * time.Second},
		DecoyProbability: 0.2,
		DecoyDelay:       [2]time.Duration{time.Second, 3 * time.Second},
	}
}

type PacerOption func(*HumanPacer)

func WithRand(r *rand.Rand) PacerOption {
	return func(p *HumanPacer) { p.rnd = r }
}

// WithSleep replaces the blocking wait, mostly so tests can record delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) PacerOption {
	return func(p *HumanPacer) { p.sleep = sleep }
}

// HumanPacer spaces requests out with randomized waits and occasional decoy
// visits so the traffic looks less automated.
type HumanPacer struct {
	mu    sync.Mutex
	cfg   PacingConfig
	rnd   *rand.Rand
	calls int
	every int

	decoy  func(ctx context.Context) error
	sleep  func(ctx context.Context, d time.Duration) error
	logger logger.Logger
}

func NewHumanPacer(cfg PacingConfig, log logger.Logger, decoy func(ctx context.Context) error, opts ...PacerOption) *HumanPacer {
	p := &HumanPacer{
		cfg:    cfg,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		decoy:  decoy,
		sleep:  sleepContext,
		logger: log,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.every = cfg.BurstMin + p.rnd.Intn(cfg.BurstMax-cfg.BurstMin+1)
	return p
}

func (p *HumanPacer) Pace(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++

	delay := p.between(p.cfg.MinDelay, p.cfg.MaxDelay)
	p.logger.Debug("Pacing request", "delay", delay.Round(time.Millisecond).String(), "call", p.calls)
	if err := p.sleep(ctx, delay); err != nil {
		return err
	}

	if p.calls%p.every == 0 {
		long := p.between(p.cfg.LongDelay[0], p.cfg.LongDelay[1])
		p.logger.Info("Taking a long pause", "delay", long.Round(time.Second).String(), "call", p.calls)
		if err := p.sleep(ctx, long); err != nil {
			return err
		}
	}

	if p.decoy != nil && p.rnd.Float64() < p.cfg.DecoyProbability {
		p.logger.Debug("Visiting landing page")
		if err := p.decoy(ctx); err != nil {
			p.logger.Warn("Decoy visit failed", "error", err)
		}
		if err := p.sleep(ctx, p.between(p.cfg.DecoyDelay[0], p.cfg.DecoyDelay[1])); err != nil {
			return err
		}
	}

	return nil
}

func (p *HumanPacer) between(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(p.rnd.Int63n(int64(hi-lo)+1))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

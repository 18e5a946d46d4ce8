package instagramimpl

import (
	"context"
	"net/http"
	"sync"

	"github.com/Davincible/goinsta/v3"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/instagram"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

const maxCachedUsers = 256

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// InstaImpl owns the one Instagram session of the process. mu serializes
// session checks, re-logins, pacing and the remote call itself.
type InstaImpl struct {
	mu     sync.Mutex
	client *goinsta.Instagram
	users  map[int64]*goinsta.User

	config  *config.Config
	logger  logger.Logger
	pacer   Pacer
	http    *http.Client
	headers *headerPool

	// Session checks, swapped out in tests. Both run with mu held.
	validate func(ctx context.Context) bool
	relogin  func(ctx context.Context) error
}

func New(opts Opts) *InstaImpl {
	log := opts.Logger.WithComponent("instagram")
	headers := newHeaderPool(opts.Config.Instagram.UserAgents, opts.Config.Instagram.Host)
	httpClient := &http.Client{Timeout: opts.Config.Instagram.RequestTimeout}

	ig := &InstaImpl{
		client:  goinsta.New(opts.Config.Instagram.User, opts.Config.Instagram.Pass),
		users:   make(map[int64]*goinsta.User),
		config:  opts.Config,
		logger:  log,
		pacer:   NoopPacer{},
		http:    httpClient,
		headers: headers,
	}
	ig.validate = ig.validateSession
	ig.relogin = ig.loginWithCredentials

	if opts.Config.Instagram.Pacing {
		ig.pacer = NewHumanPacer(DefaultPacing(), log, ig.visitLanding)
	} else {
		log.Warn("Request pacing disabled")
	}

	return ig
}

// do runs fn with a checked session and a paced slot. An auth failure from
// fn itself forces one re-login and a second attempt.
func (ig *InstaImpl) do(ctx context.Context, operation string, fn func() error) error {
	ig.mu.Lock()
	defer ig.mu.Unlock()

	if err := ig.ensureSessionLocked(ctx); err != nil {
		return err
	}
	if err := ig.pacer.Pace(ctx); err != nil {
		return err
	}

	ig.logger.Debug("Calling Instagram", "operation", operation)
	err := fn()
	if !apperrors.IsAuth(err) {
		return err
	}

	ig.logger.Warn("Session rejected mid-call, logging in again", "operation", operation, "error", err)
	if loginErr := ig.relogin(ctx); loginErr != nil {
		return loginErr
	}
	if err := ig.pacer.Pace(ctx); err != nil {
		return err
	}
	return fn()
}

func (ig *InstaImpl) rememberUser(user *goinsta.User) {
	if len(ig.users) >= maxCachedUsers {
		clear(ig.users)
	}
	ig.users[user.ID] = user
}

var _ instagram.Client = (*InstaImpl)(nil)

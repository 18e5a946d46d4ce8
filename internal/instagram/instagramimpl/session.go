package instagramimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Davincible/goinsta/v3"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/retry"
)

const sessionCheckTimeout = 10 * time.Second

// Login connects to Instagram, reusing the persisted session for the account
// when it is still valid and logging in with credentials otherwise.
func (ig *InstaImpl) Login(ctx context.Context) error {
	ig.mu.Lock()
	defer ig.mu.Unlock()

	if err := ig.reloadSession(); err == nil {
		if ig.validateSession(ctx) {
			ig.logger.Info("Logged in using existing session", "account", ig.config.Instagram.User)
			return nil
		}
		ig.logger.Warn("Session loaded but appears to be invalid, attempting fresh login")
	} else {
		ig.logger.Info("No reusable session", "reason", err)
	}

	return ig.loginWithCredentials(ctx)
}

// EnsureSession revalidates the session and logs in again when it is stale.
func (ig *InstaImpl) EnsureSession(ctx context.Context) error {
	ig.mu.Lock()
	defer ig.mu.Unlock()

	return ig.ensureSessionLocked(ctx)
}

func (ig *InstaImpl) ensureSessionLocked(ctx context.Context) error {
	if ig.validate(ctx) {
		return nil
	}
	ig.logger.Warn("Invalid session detected, attempting to re-login")
	return ig.relogin(ctx)
}

// loginWithCredentials replaces the session in place. The caller holds mu.
func (ig *InstaImpl) loginWithCredentials(ctx context.Context) error {
	ig.logger.Info("Attempting to log in with credentials", "account", ig.config.Instagram.User)

	client := goinsta.New(ig.config.Instagram.User, ig.config.Instagram.Pass)
	login := func() error {
		err := client.Login()
		if err != nil && credentialsRejected(err) {
			return retry.Permanent(err)
		}
		return err
	}

	if err := retry.Do(ctx, ig.logger, "InstagramLogin", login, retry.DefaultConfig()); err != nil {
		return apperrors.Wrap(err, apperrors.KindAuth, "instagram login failed")
	}

	ig.client = client
	clear(ig.users)
	ig.logger.Info("Logged in with credentials", "account", ig.config.Instagram.User)

	if err := ig.saveSession(); err != nil {
		ig.logger.Warn("Failed to save Instagram session", "error", err)
	}
	return nil
}

func (ig *InstaImpl) reloadSession() error {
	path := ig.config.SessionFile()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %w", err)
	}

	client, err := goinsta.Import(path)
	if err != nil {
		return fmt.Errorf("failed to import session: %w", err)
	}

	ig.client = client
	return nil
}

// validateSession performs the cheapest authenticated call available. The
// client can panic on a half-initialised session, which counts as invalid.
func (ig *InstaImpl) validateSession(ctx context.Context) bool {
	if ig.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, sessionCheckTimeout)
	defer cancel()

	client := ig.client
	done := make(chan bool, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ig.logger.Error("Panic in Instagram session validation", "panic", r)
				done <- false
			}
		}()

		if client.Account == nil {
			done <- false
			return
		}
		done <- client.Account.Sync() == nil
	}()

	select {
	case valid := <-done:
		return valid
	case <-ctx.Done():
		ig.logger.Warn("Session validation timed out")
		return false
	}
}

func (ig *InstaImpl) saveSession() error {
	path := ig.config.SessionFile()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := ig.client.Export(path); err != nil {
		return fmt.Errorf("failed to export session: %w", err)
	}

	ig.logger.Info("Instagram session saved", "path", path)
	return nil
}

// credentialsRejected separates a wrong password or a challenge, which no
// amount of retrying fixes, from transient failures.
func credentialsRejected(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"bad_password", "invalid_user", "incorrect", "challenge_required", "checkpoint_required", "two_factor"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

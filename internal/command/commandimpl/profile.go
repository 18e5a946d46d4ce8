package commandimpl

import (
	"context"
	"fmt"
	"os"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/formatter"
)

func (c *CommandImpl) sendProfilePicture(ctx context.Context, r request) error {
	c.Logger.Info("Handling profile picture request", "username", r.username)

	profile, err := c.Instagram.FetchProfile(ctx, r.username)
	if err != nil {
		return err
	}
	if profile.Restricted() {
		c.Logger.Warn("Profile is private and not followed", "username", r.username)
		c.reply(r, locale.PrivateProfile)
		return nil
	}

	dir, err := c.Staging.Create(r.username + "-avatar")
	if err != nil {
		return err
	}
	defer c.Staging.Cleanup(dir)

	path, err := c.Instagram.DownloadProfilePicture(ctx, profile, dir)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindStorage, "stat profile picture")
	}
	if info.Size() > c.maxBytes {
		c.reply(r, locale.FileTooLarge)
		return nil
	}

	err = c.Telegram.SendDocument(r.chatID, path, r.username+"_profile.jpg", c.Locale.Text(r.lang, locale.ProfilePicCaption, r.username))
	if err != nil {
		return apperrors.Wrap(err, apperrors.KindRemote, "send profile picture")
	}
	return nil
}

func (c *CommandImpl) sendProfileInfo(ctx context.Context, r request) error {
	c.Logger.Info("Handling profile info request", "username", r.username)

	profile, err := c.Instagram.FetchProfile(ctx, r.username)
	if err != nil {
		return err
	}

	text := c.Locale.Text(r.lang, locale.ProfileInfo,
		profile.Username,
		profile.FullName,
		profile.Biography,
		c.Locale.YesNo(r.lang, profile.IsVerified),
		c.Locale.YesNo(r.lang, profile.IsBusiness),
		formatter.FormatNumber(profile.Followers),
		formatter.FormatNumber(profile.Following),
		formatter.FormatNumber(profile.Posts),
	)

	if _, err := c.Telegram.SendMessage(r.chatID, text); err != nil {
		return fmt.Errorf("send profile info: %w", err)
	}
	return nil
}

package commandimpl

import (
	"context"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/delivery"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
)

func (c *CommandImpl) sendStories(ctx context.Context, r request) error {
	c.Logger.Info("Handling stories request", "username", r.username)

	profile, err := c.Instagram.FetchProfile(ctx, r.username)
	if err != nil {
		return err
	}
	if profile.Restricted() {
		c.Logger.Warn("Profile is private and not followed", "username", r.username)
		c.reply(r, locale.PrivateProfile)
		return nil
	}

	stories, err := c.Instagram.FetchStories(ctx, profile.ID)
	if apperrors.IsAccessDenied(err) {
		c.Logger.Warn("Instagram denied access to stories", "username", r.username, "error", err)
		c.reply(r, locale.PrivateProfile)
		return nil
	}
	if err != nil {
		return err
	}

	if len(stories) == 0 {
		c.Logger.Info("No stories available", "username", r.username)
		c.reply(r, locale.NoStories)
		return nil
	}

	sent, err := c.Delivery.Deliver(ctx, delivery.Batch{
		ChatID:        r.chatID,
		Prefix:        r.username,
		Items:         stories,
		Caption:       delivery.StoryCaption(c.location),
		Chronological: true,
		OversizeText:  c.Locale.Text(r.lang, locale.FileTooLarge),
		Summary: func(sent int) string {
			return c.Locale.Text(r.lang, locale.StoriesSent, sent)
		},
	})
	if err != nil {
		return err
	}

	c.Logger.Info("Stories sent", "username", r.username, "sent", sent)
	return nil
}

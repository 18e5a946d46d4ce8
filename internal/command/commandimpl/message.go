package commandimpl

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
)

func (c *CommandImpl) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	r := request{
		chatID: msg.Chat.ID,
		userID: msg.Chat.ID,
	}
	if msg.From != nil {
		r.userID = msg.From.ID
		r.lang = c.Locale.Language(msg.From.LanguageCode)
	} else {
		r.lang = c.Locale.Language("")
	}

	if msg.IsCommand() {
		c.Logger.Info("Command received", "command", msg.Command(), "userID", r.userID)
		c.reply(r, locale.Start)
		return
	}

	c.Logger.Info("Message received", "userID", r.userID, "text", msg.Text)

	username, ok := c.matcher.Username(msg.Text)
	if !ok {
		c.Logger.Warn("Invalid URL received", "userID", r.userID, "text", msg.Text)
		c.reply(r, locale.InvalidURL)
		return
	}

	if err := c.Selection.Set(ctx, r.userID, username); err != nil {
		c.reportError(r, err)
		return
	}

	rows := [][]telegram.Button{
		{
			{Label: c.Locale.Text(r.lang, locale.ButtonProfilePic), Data: command.ProfilePic().Token()},
			{Label: c.Locale.Text(r.lang, locale.ButtonStory), Data: command.Story().Token()},
		},
		{
			{Label: c.Locale.Text(r.lang, locale.ButtonHighlights), Data: command.Highlights().Token()},
			{Label: c.Locale.Text(r.lang, locale.ButtonProfileInfo), Data: command.ProfileInfo().Token()},
		},
	}

	c.Logger.Info("Sending feature menu", "username", username, "userID", r.userID)
	if _, err := c.Telegram.SendMenu(r.chatID, c.Locale.Text(r.lang, locale.MenuPrompt, username), rows); err != nil {
		c.Logger.Error("Failed to send feature menu", "chatID", r.chatID, "error", err)
	}
}

package commandimpl

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/repositories/selection"
	apperrors "github.com/orgball2608/insta-profile-telegram-bot/pkg/errors"
)

// request carries the chat context of one interaction through a workflow.
type request struct {
	chatID    int64
	messageID int
	userID    int64
	lang      string
	username  string
}

func (c *CommandImpl) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if err := c.Telegram.AnswerCallback(q.ID); err != nil {
		c.Logger.Warn("Failed to answer callback", "error", err)
	}
	if q.Message == nil || q.From == nil {
		return
	}

	r := request{
		chatID:    q.Message.Chat.ID,
		messageID: q.Message.MessageID,
		userID:    q.From.ID,
		lang:      c.Locale.Language(q.From.LanguageCode),
	}
	c.Logger.Info("Received callback query", "data", q.Data, "userID", r.userID)

	action, err := command.ParseAction(q.Data)
	if err != nil {
		c.Logger.Warn("Ignoring callback", "data", q.Data, "error", err)
		return
	}

	sel, err := c.Selection.Get(ctx, r.userID)
	if errors.Is(err, selection.ErrNotFound) {
		c.Logger.Warn("Session expired, no profile selected", "userID", r.userID)
		c.edit(r, locale.SessionExpired)
		return
	}
	if err != nil {
		c.reportError(r, err)
		return
	}
	r.username = sel.Username

	if !c.Limiter.Allow(r.userID) {
		c.Logger.Warn("Rate limit exceeded", "userID", r.userID)
		c.reply(r, locale.RateLimited)
		return
	}

	if err := c.dispatch(ctx, r, action); err != nil {
		c.Logger.Error("Failed to process callback", "action", action.Kind.String(), "username", r.username, "error", err)
		c.reportError(r, err)
	}
}

func (c *CommandImpl) dispatch(ctx context.Context, r request, a command.Action) error {
	switch a.Kind {
	case command.KindProfilePic:
		return c.sendProfilePicture(ctx, r)
	case command.KindStory:
		return c.sendStories(ctx, r)
	case command.KindHighlights:
		return c.showHighlights(ctx, r, 0)
	case command.KindHighlightsNext, command.KindHighlightsPrev:
		return c.showHighlights(ctx, r, a.Page)
	case command.KindHighlightItem:
		return c.sendHighlight(ctx, r, a.HighlightID)
	case command.KindProfileInfo:
		return c.sendProfileInfo(ctx, r)
	default:
		return command.ErrUnknownAction
	}
}

// reportError is the only place a failure reaches the user, always as a
// short localized sentence.
func (c *CommandImpl) reportError(r request, err error) {
	key := locale.Error
	switch {
	case apperrors.IsAccessDenied(err):
		key = locale.PrivateProfile
	case apperrors.IsNotFound(err):
		key = locale.NotFound
	}

	c.Logger.Error("Request failed", "userID", r.userID, "kind", string(apperrors.KindOf(err)), "error", err)
	c.edit(r, key)
}

// edit replaces the pressed menu with a text, falling back to a new message.
func (c *CommandImpl) edit(r request, key string, args ...any) {
	text := c.Locale.Text(r.lang, key, args...)
	if r.messageID != 0 {
		if err := c.Telegram.EditMessageText(r.chatID, r.messageID, text); err == nil {
			return
		}
	}
	if _, err := c.Telegram.SendMessage(r.chatID, text); err != nil {
		c.Logger.Error("Failed to send message", "chatID", r.chatID, "error", err)
	}
}

func (c *CommandImpl) reply(r request, key string, args ...any) {
	if _, err := c.Telegram.SendMessage(r.chatID, c.Locale.Text(r.lang, key, args...)); err != nil {
		c.Logger.Error("Failed to send message", "chatID", r.chatID, "error", err)
	}
}

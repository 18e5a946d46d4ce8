package commandimpl

import (
	"context"
	"fmt"

	"github.com/orgball2608/insta-profile-telegram-bot/internal/command"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/delivery"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/highlight"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/locale"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
)

func (c *CommandImpl) showHighlights(ctx context.Context, r request, page int) error {
	c.Logger.Info("Handling highlights request", "username", r.username, "page", page)

	profile, err := c.Instagram.FetchProfile(ctx, r.username)
	if err != nil {
		return err
	}
	highlights, err := c.Instagram.FetchHighlights(ctx, profile)
	if err != nil {
		return err
	}

	if len(highlights) == 0 {
		c.Logger.Info("No highlights available", "username", r.username)
		c.reply(r, locale.NoHighlights)
		return nil
	}

	p := highlight.Render(highlights, page, c.pageSize)
	rows := c.highlightRows(r, p)

	text := c.Locale.Text(r.lang, locale.HighlightsMenu, r.username, p.Index+1)
	if p.Empty() {
		c.Logger.Warn("Highlight page has no entries", "username", r.username, "page", page, "total", len(highlights))
		text = c.Locale.Text(r.lang, locale.HighlightsEmptyPage, p.Index+1)
	}

	if len(rows) == 0 {
		_, err = c.Telegram.SendMessage(r.chatID, text)
	} else {
		_, err = c.Telegram.SendMenu(r.chatID, text, rows)
	}
	if err != nil {
		return fmt.Errorf("send highlights menu: %w", err)
	}
	return nil
}

func (c *CommandImpl) highlightRows(r request, p highlight.Page) [][]telegram.Button {
	rows := make([][]telegram.Button, 0, len(p.Entries)+1)
	for _, e := range p.Entries {
		rows = append(rows, []telegram.Button{{Label: e.Label, Data: command.HighlightItem(e.ID).Token()}})
	}

	var nav []telegram.Button
	if p.HasPrev {
		nav = append(nav, telegram.Button{
			Label: c.Locale.Text(r.lang, locale.ButtonPrev),
			Data:  command.HighlightsPrev(p.Index - 1).Token(),
		})
	}
	if p.HasNext {
		nav = append(nav, telegram.Button{
			Label: c.Locale.Text(r.lang, locale.ButtonNext),
			Data:  command.HighlightsNext(p.Index + 1).Token(),
		})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	return rows
}

func (c *CommandImpl) sendHighlight(ctx context.Context, r request, id int64) error {
	c.Logger.Info("Handling highlight items request", "username", r.username, "highlightID", id)

	profile, err := c.Instagram.FetchProfile(ctx, r.username)
	if err != nil {
		return err
	}
	highlights, err := c.Instagram.FetchHighlights(ctx, profile)
	if err != nil {
		return err
	}

	h, ok := highlight.Resolve(highlights, id)
	if !ok {
		c.Logger.Warn("Highlight not found", "username", r.username, "highlightID", id)
		c.reply(r, locale.HighlightNotFound)
		return nil
	}

	items, err := h.Items(ctx)
	if err != nil {
		return err
	}

	c.Logger.Info("Processing highlight items", "title", h.Title, "count", len(items))
	c.reply(r, locale.HighlightProcessing, len(items), h.Title)

	sent, err := c.Delivery.Deliver(ctx, delivery.Batch{
		ChatID:       r.chatID,
		Prefix:       fmt.Sprintf("highlight-%s", r.username),
		Items:        items,
		Caption:      delivery.HighlightCaption(c.location, h.Title),
		OversizeText: c.Locale.Text(r.lang, locale.FileTooLarge),
		Summary: func(sent int) string {
			return c.Locale.Text(r.lang, locale.HighlightSent, sent, h.Title)
		},
	})
	if err != nil {
		return err
	}

	c.Logger.Info("Highlight sent", "title", h.Title, "sent", sent)
	return nil
}

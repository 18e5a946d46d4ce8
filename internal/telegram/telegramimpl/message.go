package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
)

// SendMessage sends a plain text message and returns its id.
func (tg *TelegramImpl) SendMessage(chatID int64, text string) (int, error) {
	sent, err := tg.TgBot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		tg.Logger.Error("Error sending message", "chatID", chatID, "error", err)
		return 0, fmt.Errorf("failed to send message: %w", err)
	}

	tg.Logger.Debug("Message sent", "chatID", chatID, "messageID", sent.MessageID)
	return sent.MessageID, nil
}

// SendMenu sends text with an inline keyboard, one keyboard row per slice.
func (tg *TelegramImpl) SendMenu(chatID int64, text string, rows [][]telegram.Button) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = inlineKeyboard(rows)

	sent, err := tg.TgBot.Send(msg)
	if err != nil {
		tg.Logger.Error("Error sending menu", "chatID", chatID, "error", err)
		return 0, fmt.Errorf("failed to send menu: %w", err)
	}
	return sent.MessageID, nil
}

func (tg *TelegramImpl) EditMessageText(chatID int64, messageID int, text string) error {
	if _, err := tg.TgBot.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		tg.Logger.Error("Error editing message", "chatID", chatID, "messageID", messageID, "error", err)
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}

// AnswerCallback stops the client's loading indicator on the pressed button.
func (tg *TelegramImpl) AnswerCallback(callbackID string) error {
	if _, err := tg.TgBot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("failed to answer callback: %w", err)
	}
	return nil
}

func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}

func inlineKeyboard(rows [][]telegram.Button) tgbotapi.InlineKeyboardMarkup {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		keyboard = append(keyboard, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

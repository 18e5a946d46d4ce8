package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go

// Button is one inline keyboard button; Data is the callback token.
type Button struct {
	Label string
	Data  string
}

type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	SendMessage(chatID int64, text string) (int, error)
	SendMenu(chatID int64, text string, rows [][]Button) (int, error)
	SendPhoto(chatID int64, path, caption string) error
	SendVideo(chatID int64, path, caption string) error
	SendDocument(chatID int64, path, filename, caption string) error
	EditMessageText(chatID int64, messageID int, text string) error
	AnswerCallback(callbackID string) error
}

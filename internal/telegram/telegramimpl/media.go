package telegramimpl

import (
	"fmt"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (tg *TelegramImpl) SendPhoto(chatID int64, path, caption string) error {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	return tg.sendFile(chatID, "photo", photo)
}

func (tg *TelegramImpl) SendVideo(chatID int64, path, caption string) error {
	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.Caption = caption
	video.SupportsStreaming = true
	return tg.sendFile(chatID, "video", video)
}

// SendDocument uploads path under a different file name than it has on disk.
func (tg *TelegramImpl) SendDocument(chatID int64, path, filename, caption string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{Name: filename, Reader: file})
	doc.Caption = caption
	return tg.sendFile(chatID, "document", doc)
}

func (tg *TelegramImpl) sendFile(chatID int64, kind string, c tgbotapi.Chattable) error {
	if _, err := tg.TgBot.Send(c); err != nil {
		tg.Logger.Error("Error sending media", "chatID", chatID, "type", kind, "error", err)
		return fmt.Errorf("failed to send %s: %w", kind, err)
	}

	tg.Logger.Info("Media sent", "chatID", chatID, "type", kind)
	return nil
}

package telegramimpl

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/insta-profile-telegram-bot/internal/telegram"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"github.com/orgball2608/insta-profile-telegram-bot/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
}

func New(opts Opts) (*TelegramImpl, error) {
	client := &http.Client{Timeout: opts.Config.Telegram.SendTimeout}
	return newWithEndpoint(opts.Config.Telegram.BotToken, tgbotapi.APIEndpoint, client, opts.Logger)
}

func newWithEndpoint(token, endpoint string, client *http.Client, log logger.Logger) (*TelegramImpl, error) {
	log = log.WithComponent("telegram")

	tgBot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		log.Error("Error creating bot", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Authorized on Telegram", "bot", tgBot.Self.UserName)
	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

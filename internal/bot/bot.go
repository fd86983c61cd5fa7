package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/basel-ax/icified/internal/domain"
)

// telegramAPI is the slice of the Telegram Bot API the handlers use.
// *tgbotapi.BotAPI satisfies it; tests provide a fake.
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Bot drives the user-visible lifecycle of photo requests
type Bot struct {
	api        telegramAPI
	icifier    domain.Icifier
	downloader domain.Downloader
}

// New creates a new conversation handler
func New(api telegramAPI, icifier domain.Icifier, downloader domain.Downloader) *Bot {
	return &Bot{
		api:        api,
		icifier:    icifier,
		downloader: downloader,
	}
}

// Run consumes updates until the context is cancelled or the channel
// closes. Each update is handled in its own goroutine so a slow
// generation never blocks other users' events.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// An unexpected panic in one event must not take down the loop
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic while handling update")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message == nil:
		return
	case update.Message.IsCommand():
		b.handleCommand(update.Message)
	case len(update.Message.Photo) > 0:
		b.handlePhoto(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		reply := tgbotapi.NewMessage(msg.Chat.ID, welcomeText)
		reply.ReplyMarkup = startKeyboard()
		if _, err := b.api.Send(reply); err != nil {
			log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send welcome message")
		}
	case "help":
		if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, helpText)); err != nil {
			log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("failed to send help message")
		}
	}
}

// handleCallback acknowledges an inline-button press and rewrites the
// triggering message to repeat the submission instructions. No remote
// inference call happens here.
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Warn().Err(err).Msg("failed to answer callback query")
	}

	if query.Data != sendPhotoCallback || query.Message == nil {
		return
	}

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, instructionsText)
	if _, err := b.api.Request(edit); err != nil {
		log.Warn().Err(err).Msg("failed to edit message after callback")
	}
}

func startKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(sendPhotoButtonLabel, sendPhotoCallback),
		),
	)
}

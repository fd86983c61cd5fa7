package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// handlePhoto drives one photo request: acknowledge, transform, deliver.
// Every failure on the way collapses into a single generic notice; nothing
// here is retried and nothing propagates past this function.
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	logger := log.With().
		Str("request_id", uuid.NewString()).
		Int64("chat_id", msg.Chat.ID).
		Logger()
	logger.Info().Msg("photo received")

	status, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, processingText))
	if err != nil {
		logger.Error().Err(err).Msg("failed to send status message")
		b.reportFailure(&logger, msg.Chat.ID, 0)
		return
	}

	if err := b.icifyAndDeliver(ctx, &logger, msg); err != nil {
		logger.Error().Err(err).Msg("error processing photo")
		b.reportFailure(&logger, msg.Chat.ID, status.MessageID)
		return
	}

	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, status.MessageID)); err != nil {
		logger.Warn().Err(err).Msg("failed to delete status message")
	}
	logger.Info().Msg("photo delivered")
}

func (b *Bot) icifyAndDeliver(ctx context.Context, logger *zerolog.Logger, msg *tgbotapi.Message) error {
	photo := largestPhoto(msg.Photo)
	logger.Debug().Int("width", photo.Width).Int("height", photo.Height).Msg("selected photo variant")

	fileURL, err := b.api.GetFileDirectURL(photo.FileID)
	if err != nil {
		return fmt.Errorf("failed to resolve photo file: %w", err)
	}

	raw, err := b.downloader.Fetch(ctx, fileURL)
	if err != nil {
		return fmt.Errorf("failed to download photo: %w", err)
	}

	resultURL, err := b.icifier.Icify(ctx, raw)
	if err != nil {
		return fmt.Errorf("failed to icify photo: %w", err)
	}

	data, err := b.downloader.Fetch(ctx, resultURL)
	if err != nil {
		return fmt.Errorf("failed to download result: %w", err)
	}

	reply := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "icified.jpg", Bytes: data})
	reply.Caption = successCaption
	if _, err := b.api.Send(reply); err != nil {
		return fmt.Errorf("failed to deliver photo: %w", err)
	}

	return nil
}

// reportFailure edits the status message into the failure notice, or sends
// a new message when there is no status message to edit
func (b *Bot) reportFailure(logger *zerolog.Logger, chatID int64, statusMessageID int) {
	if statusMessageID != 0 {
		edit := tgbotapi.NewEditMessageText(chatID, statusMessageID, failureText)
		_, err := b.api.Request(edit)
		if err == nil {
			return
		}
		logger.Warn().Err(err).Msg("failed to edit status message")
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, failureText)); err != nil {
		logger.Error().Err(err).Msg("failed to send failure message")
	}
}

// largestPhoto selects the highest-resolution variant of the photo
func largestPhoto(sizes []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := sizes[0]
	for _, s := range sizes[1:] {
		if s.Width*s.Height > best.Width*best.Height {
			best = s
		}
	}
	return best
}

package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ovchar-k/tutorbook/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRequestReceived(ctx context.Context, tutor *domain.User, offer *domain.Offer, slot *domain.Slot) {
	text := fmt.Sprintf(
		"*New booking request*\n\n"+"Offer: %s\n"+"Requested time (UTC): %s",
		offer.Title, slot.StartsAt.Format(timeLayout),
	)
	n.send(ctx, tutor.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestAccepted(ctx context.Context, student *domain.User, session *domain.Session) {
	text := fmt.Sprintf(
		"*Your session is booked!*\n\n"+"Time (UTC): %s\n"+"Location: %s",
		session.StartsAt.Format(timeLayout), formatLocation(session.Location),
	)
	n.send(ctx, student.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRequestDeclined(ctx context.Context, student *domain.User, offer *domain.Offer) {
	text := fmt.Sprintf(
		"*Your booking request was declined*\n\n"+"Offer: %s",
		offer.Title,
	)
	n.send(ctx, student.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyOfferCancelled(ctx context.Context, student *domain.User, offer *domain.Offer) {
	text := fmt.Sprintf(
		"*Offer withdrawn by the tutor*\n\n"+"Offer: %s\n"+"Your pending request was cancelled.",
		offer.Title,
	)
	n.send(ctx, student.TelegramChatID, text)
}

func formatLocation(loc domain.Location) string {
	if loc.Kind == domain.LocationInPerson {
		return loc.Address
	}
	return "online"
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

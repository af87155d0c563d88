// Package notification delivers lifecycle notifications to people.
package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

// NewTelegramNotifier шлёт уведомления в админский чат. Без токена или
// chat id уведомления отключены.
func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || adminChatID == 0 {
		logger.Warn("telegram bot token or admin chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, note domain.Notification) {
	n.send(ctx, FormatMessage(note))
}

// FormatMessage renders a notification as a Markdown chat message.
func FormatMessage(note domain.Notification) string {
	var b strings.Builder

	b.WriteString("*" + title(note.Kind) + "*\n\n")
	fmt.Fprintf(&b, "Бронь: `%s`\n", note.BookingID)
	if note.PaymentID != "" {
		fmt.Fprintf(&b, "Платёж: `%s`\n", note.PaymentID)
	}
	fmt.Fprintf(&b, "Сумма: %.2f\n", note.Amount)
	fmt.Fprintf(&b, "Статус: %s", note.Status)
	if note.Reason != "" {
		fmt.Fprintf(&b, "\nПричина: %s", note.Reason)
	}

	return b.String()
}

func title(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotifyBookingCreated:
		return "Новая бронь ждёт подтверждения"
	case domain.NotifyBookingApproved:
		return "Бронь подтверждена"
	case domain.NotifyBookingRejected:
		return "Бронь отклонена"
	case domain.NotifyBookingCancelled:
		return "Бронь отменена"
	case domain.NotifyBookingExpired:
		return "Бронь не оплачена вовремя"
	case domain.NotifyPaymentCompleted:
		return "Оплата получена"
	case domain.NotifyPaymentFailed:
		return "Оплата не прошла"
	case domain.NotifyPaymentRefunded:
		return "Оплата возвращена"
	}
	return string(kind)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}

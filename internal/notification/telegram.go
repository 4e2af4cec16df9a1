package notification

import (
	"context"
	"fmt"

	"github.com/TsepisoMotloung/trinity-equipment/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts the events that need a human's attention to the
// operations chat: reservations lapsing without a checkout and gear coming
// back damaged. Everything else on the sink is ignored here.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) Emit(ctx context.Context, eventType string, payload any) {
	switch eventType {
	case domain.EventReservationExpired:
		p, ok := payload.(domain.ReservationExpiredPayload)
		if !ok {
			return
		}
		n.send(ctx, fmt.Sprintf(
			"*Reservation expired without checkout*\n\n"+"Unit: %s\n"+"Booking: %s\n"+"Window ended: %s",
			p.UnitID, p.BookingID, p.ReservedUntil.Format("02.01.2006 15:04"),
		))
	case domain.EventMaintenanceRequired:
		p, ok := payload.(domain.UnitStatusPayload)
		if !ok {
			return
		}
		n.send(ctx, fmt.Sprintf(
			"*Unit needs maintenance*\n\n"+"Unit: %s\n"+"Reason: %s",
			p.UnitID, p.Reason,
		))
	}
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}

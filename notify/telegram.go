package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"quickaid/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const telegramRequestTimeout = 5 * time.Second

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAlerter tells the support admin chat about new tickets.
type TelegramAlerter struct {
	bot     botSender
	adminID int64
}

// NewTelegramAlerter authorizes the bot token against the Bot API.
func NewTelegramAlerter(token string, adminID int64) (*TelegramAlerter, error) {
	return newTelegramAlerter(token, tgbotapi.APIEndpoint, adminID,
		&http.Client{Timeout: telegramRequestTimeout})
}

func newTelegramAlerter(token, endpoint string, adminID int64, client *http.Client) (*TelegramAlerter, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramAlerter{bot: bot, adminID: adminID}, nil
}

// TicketCreated returns when the Bot API answers or ctx is done, whichever
// comes first. The bot client has no context support, so an abandoned send
// finishes in the background, bounded by the client timeout.
func (a *TelegramAlerter) TicketCreated(ctx context.Context, t models.Ticket) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(a.adminID, fmt.Sprintf(
		"🆕 New ticket %s\n👤 %s\n📋 Category: %s\n📌 %s\n💬 %s",
		t.ID, t.Email, t.Category, t.Title, t.Description,
	))

	done := make(chan error, 1)
	go func() {
		_, err := a.bot.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send telegram alert: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send telegram alert: %w", ctx.Err())
	}
}

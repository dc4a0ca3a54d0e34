package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"sletayka/internal/domain"
)

type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers hot-deal alerts and booking mirrors to the agency
// chat.
type Notifier struct {
	api    api
	chatID int64
}

// New creates a Notifier for the given bot token and chat.
func New(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &Notifier{api: bot, chatID: chatID}, nil
}

// NewWithAPI wires a custom sender (useful for testing).
func NewWithAPI(a api, chatID int64) *Notifier {
	return &Notifier{api: a, chatID: chatID}
}

func (n *Notifier) NotifyHotDeal(ctx context.Context, t domain.Tour) error {
	return n.send(FormatHotDeal(t))
}

func (n *Notifier) NotifyBooking(ctx context.Context, req domain.BookingRequest, res domain.BookingResult) error {
	return n.send(FormatBooking(req, res))
}

func (n *Notifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.api.Send(msg)
	return err
}

package services

import (
	"context"
	"fmt"

	"UniqueSeriesAPI/external/imagekit"

	"github.com/rs/zerolog"
)

// Mailer sends transactional mail. Implemented by external/resend.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, toEmail, name string) error
	SendOrderConfirmation(ctx context.Context, toEmail, name, orderNumber string, total float64) error
}

// ChatSender delivers chat messages. Implemented by external/wachat.
type ChatSender interface {
	SendOrderMessage(ctx context.Context, phone, body string) error
}

// AssetStore manages uploaded customization images on the CDN.
// Implemented by external/imagekit.
type AssetStore interface {
	ListFolder(ctx context.Context, folderPath string) ([]imagekit.Asset, error)
	MoveFolder(ctx context.Context, sourceFolderPath, destinationPath string) error
}

// Notifier bundles the fire-and-forget channels. Every method swallows
// errors after logging them: notifications never fail a user-facing action.
type Notifier struct {
	Mailer Mailer
	Chat   ChatSender
	Log    zerolog.Logger
}

func NewNotifier(m Mailer, ch ChatSender, log zerolog.Logger) *Notifier {
	return &Notifier{Mailer: m, Chat: ch, Log: log}
}

func (n *Notifier) Welcome(ctx context.Context, email, name string) {
	if n.Mailer == nil {
		return
	}
	if err := n.Mailer.SendWelcomeEmail(ctx, email, name); err != nil {
		n.Log.Warn().Err(err).Str("email", email).Msg("welcome mail failed")
	}
}

func (n *Notifier) OrderConfirmed(ctx context.Context, email, name, phone, orderNumber string, total float64) {
	if n.Mailer != nil {
		if err := n.Mailer.SendOrderConfirmation(ctx, email, name, orderNumber, total); err != nil {
			n.Log.Warn().Err(err).Str("order_number", orderNumber).Msg("confirmation mail failed")
		}
	}
	if n.Chat != nil && phone != "" {
		body := fmt.Sprintf("Hi %s! Your Unique Series order %s is confirmed. Amount: %.2f", name, orderNumber, total)
		if err := n.Chat.SendOrderMessage(ctx, phone, body); err != nil {
			n.Log.Warn().Err(err).Str("order_number", orderNumber).Msg("chat message failed")
		}
	}
}

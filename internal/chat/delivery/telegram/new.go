package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"emergency-triage/internal/chat"
	"emergency-triage/pkg/log"
)

// Sender delivers a reply to a Telegram chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	bot    Sender
	secret string
}

// New creates a new Telegram delivery handler. An empty secret disables the
// secret token check.
func New(l log.Logger, uc chat.UseCase, bot Sender, secret string) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}

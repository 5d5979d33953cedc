package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"univio/internal/extraction"
	pkgLog "univio/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the Telegram bot client the handler replies through.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type handler struct {
	l   pkgLog.Logger
	uc  extraction.UseCase
	bot Sender
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc extraction.UseCase, bot Sender) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
	}
}

package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"univio/internal/extraction"
	pkgResponse "univio/pkg/response"
	pkgTelegram "univio/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Extraction is fast and local, so the reply is sent before acknowledging.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.extraction.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if err := h.processMessage(ctx, update.Message); err != nil {
		h.l.Errorf(ctx, "internal.extraction.delivery.telegram.HandleWebhook: processMessage failed: %v", err)
		_ = h.bot.SendMessage(ctx, update.Message.Chat.ID, msgFailed)
	}

	// Telegram retries non-2xx deliveries, so failures are still acknowledged.
	pkgResponse.OK(c, map[string]string{"status": "processed"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgStart, pkgTelegram.ParseModeMarkdown)
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, pkgTelegram.ParseModeMarkdown)
	}

	out, err := h.uc.Extract(ctx, text)
	switch {
	case err == nil:
	case errors.Is(err, extraction.ErrUnknownTextType):
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgUnknown, pkgTelegram.ParseModeMarkdown)
	case errors.Is(err, extraction.ErrNoWeekday):
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgNoWeekday, pkgTelegram.ParseModeMarkdown)
	case errors.Is(err, extraction.ErrInsufficientSignal):
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgNoTask)
	default:
		return fmt.Errorf("extract: %w", err)
	}

	var reply string
	switch {
	case out.Task != nil:
		reply = formatTask(*out.Task)
	case out.Schedule != nil:
		reply = formatSchedule(*out.Schedule)
	default:
		return nil
	}

	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, reply, pkgTelegram.ParseModeMarkdown)
}

func formatTask(t extraction.ExtractedTask) string {
	var b strings.Builder
	b.WriteString("📝 *Draf tugas*\n\n")
	fmt.Fprintf(&b, "*Judul:* %s\n", escapeMarkdown(t.Title))
	fmt.Fprintf(&b, "*Mata kuliah:* %s\n", escapeMarkdown(t.Course))
	fmt.Fprintf(&b, "*Deadline:* %s %s\n", t.DueDate, t.DueTime)
	fmt.Fprintf(&b, "*Prioritas:* %s\n", t.Priority)
	fmt.Fprintf(&b, "*Keyakinan:* %d%%\n\n", t.Confidence)
	b.WriteString(escapeMarkdown(t.Description))
	return b.String()
}

func formatSchedule(s extraction.ExtractedSchedule) string {
	var b strings.Builder
	b.WriteString("📅 *Draf jadwal*\n\n")
	fmt.Fprintf(&b, "*Mata kuliah:* %s\n", escapeMarkdown(s.CourseName))
	fmt.Fprintf(&b, "*Hari:* %s\n", escapeMarkdown(s.Day))
	fmt.Fprintf(&b, "*Jam:* %s - %s\n", s.StartTime, s.EndTime)
	fmt.Fprintf(&b, "*Ruang:* %s\n", escapeMarkdown(s.Location))
	fmt.Fprintf(&b, "*Keyakinan:* %d%%", s.Confidence)
	return b.String()
}

var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

// escapeMarkdown escapes user text for the legacy Markdown parse mode.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

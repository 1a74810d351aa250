package telegram

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"emergency-triage/internal/chat"
	pkgErrors "emergency-triage/pkg/errors"
	"emergency-triage/pkg/response"
	pkgTelegram "emergency-triage/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// Classification is fast, so the reply is sent before Telegram gets its 200.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorized(c.GetHeader(pkgTelegram.SecretHeader)) {
		h.l.Warnf(ctx, "telegram.HandleWebhook: bad secret token")
		response.Error(c, pkgErrors.ErrUnauthorized, nil)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: failed to parse update: %v", err)
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	// Ignore non-message updates (edits, polls, channel posts)
	if update.Message == nil || update.Message.Chat == nil {
		response.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "telegram.HandleWebhook: processMessage failed: %v", err)
		// Best-effort error notification to user
		_ = h.bot.SendMessage(ctx, msg.Chat.ID, failureText)
	}

	// Telegram retries anything but 200, so failures are acknowledged too
	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) authorized(got string) bool {
	if h.secret == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) == 1
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}
	sessionID := sessionPrefix + strconv.FormatInt(msg.Chat.ID, 10)

	// ---- Built-in commands ----
	switch command(text) {
	case cmdStart, cmdReset:
		if err := h.reset(ctx, sessionID); err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, welcomeText)
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpText)
	}

	out, err := h.send(ctx, sessionID, text)
	if err != nil {
		if errors.Is(err, chat.ErrMessageTooLong) {
			return h.bot.SendMessage(ctx, msg.Chat.ID, "That message is too long. Please keep it short.")
		}
		return err
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, formatReply(out))
}

// send delivers text to the chat's session, opening one on first contact.
func (h *handler) send(ctx context.Context, sessionID, text string) (chat.SendMessageOutput, error) {
	input := chat.SendMessageInput{SessionID: sessionID, Message: text}

	out, err := h.uc.SendMessage(ctx, input)
	if !errors.Is(err, chat.ErrSessionNotFound) {
		return out, err
	}

	if _, err := h.uc.StartSession(ctx, chat.StartSessionInput{ID: sessionID}); err != nil {
		return chat.SendMessageOutput{}, fmt.Errorf("start session: %w", err)
	}
	return h.uc.SendMessage(ctx, input)
}

func (h *handler) reset(ctx context.Context, sessionID string) error {
	if err := h.uc.EndSession(ctx, sessionID); err != nil && !errors.Is(err, chat.ErrSessionNotFound) {
		return err
	}
	_, err := h.uc.StartSession(ctx, chat.StartSessionInput{ID: sessionID})
	return err
}

// command strips arguments and a @botname suffix, "/start@TriageBot x" -> "/start".
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd)
}

func formatReply(out chat.SendMessageOutput) string {
	if !out.Reply.IsNavigation() {
		return out.Reply.Content
	}
	return out.Reply.Content + "\n\n" + fmt.Sprintf(linkText, out.Reply.Target)
}

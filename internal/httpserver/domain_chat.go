package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "emergency-triage/internal/chat/delivery/http"
)

// setupChatDomain registers /api/v1/chat.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in cmd/api and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

// setupTelegramWebhook registers POST /webhook/telegram when the channel is
// configured. Telegram calls from a small pool of addresses, so the route sits
// outside the per-IP rate limit.
func (srv HTTPServer) setupTelegramWebhook(ctx context.Context) {
	if srv.telegramHandler == nil {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
		return
	}
	srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
	srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
}

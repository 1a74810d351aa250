package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	knowledgeHTTP "emergency-triage/internal/knowledge/delivery/http"
	triageHTTP "emergency-triage/internal/triage/delivery/http"
)

// setupTriageDomain registers /api/v1/triage.
func (srv HTTPServer) setupTriageDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := triageHTTP.New(srv.l, srv.triageUC)
	triageHTTP.RegisterRoutes(api.Group("/triage"), h)

	srv.l.Infof(ctx, "Triage domain registered")
	return nil
}

// setupKnowledgeDomain registers /api/v1/knowledge.
func (srv HTTPServer) setupKnowledgeDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := knowledgeHTTP.New(srv.l, srv.knowledgeUC)
	knowledgeHTTP.RegisterRoutes(api.Group("/knowledge"), h)

	srv.l.Infof(ctx, "Knowledge domain registered")
	return nil
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	trades := rg.Group("/trades")
	{
		trades.GET("", h.ListTrades)
		trades.GET("/:id", h.GetTrade)
	}
	rg.POST("/assess", h.Assess)
}

package http

import (
	"github.com/gin-gonic/gin"
)

// processAssessReq binds and validates the assess request body.
func (h *handler) processAssessReq(c *gin.Context) (assessReq, error) {
	var req assessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

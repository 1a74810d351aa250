package http

import (
	"github.com/gin-gonic/gin"
)

// processSearchReq binds and validates the search request body.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

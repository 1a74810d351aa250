package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processStartSessionReq binds the optional start-session body.
func (h *handler) processStartSessionReq(c *gin.Context) (startSessionReq, error) {
	var req startSessionReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

// processSendMessageReq binds the message body and the session URI param.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	return req, req.validate()
}

// processClassifyReq binds and validates the stateless classify body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"emergency-triage/pkg/response"
)

// StartSession godoc
// @Summary     Start a chat session
// @Description Opens a server-held conversation. An optional city pre-fills the location slot.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body startSessionReq false "Optional geolocated city"
// @Success     201  {object} startSessionResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "City not served"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartSessionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.StartSession(ctx, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.StartSession", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newStartSessionResp(output))
}

// SendMessage godoc
// @Summary     Send a chat message
// @Description Runs one classification turn for the session and returns the assistant reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string         true "Session ID"
// @Param       body body sendMessageReq true "User message"
// @Success     200  {object} sendMessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Session not found"
// @Failure     413  {object} response.Resp "Message too long"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.SendMessage", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}

// GetSession godoc
// @Summary     Get a chat session
// @Description Returns the session state and full history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} getSessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetSession(ctx, c.Param("id"))
	if err != nil {
		h.logError(ctx, "uc.GetSession", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGetSessionResp(output))
}

// EndSession godoc
// @Summary     End a chat session
// @Description Discards the session and its history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.EndSession(ctx, c.Param("id")); err != nil {
		h.logError(ctx, "uc.EndSession", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Classify godoc
// @Summary     Classify a message
// @Description Stateless variant of SendMessage: the caller sends and keeps the conversation state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Message and current state"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     413  {object} response.Resp "Message too long"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.logError(ctx, "uc.Classify", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

func (h *handler) logError(ctx context.Context, op string, err error) {
	if isClientError(err) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		return
	}
	h.l.Errorf(ctx, "%s: %v", op, err)
}

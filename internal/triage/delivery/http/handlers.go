package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "emergency-triage/pkg/errors"
	"emergency-triage/pkg/response"
)

// Assess godoc
// @Summary     Assess an emergency
// @Description Prices a structured trade/problem/urgency selection. Unknown selections get a neutral default.
// @Tags        Triage
// @Accept      json
// @Produce     json
// @Param       body body assessReq true "Selection"
// @Success     200  {object} assessResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/triage/assess [POST]
func (h *handler) Assess(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAssessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Assess(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Assess: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAssessResp(output))
}

// ListTrades godoc
// @Summary     List trades
// @Description Returns every trade with its problem archetypes in menu order.
// @Tags        Triage
// @Produce     json
// @Success     200 {object} listTradesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/triage/trades [GET]
func (h *handler) ListTrades(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTrades(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTrades: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListTradesResp(output))
}

// GetTrade godoc
// @Summary     Get trade detail
// @Description Returns a single trade and its problem archetypes.
// @Tags        Triage
// @Produce     json
// @Param       id path string true "Trade ID"
// @Success     200 {object} tradeDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/triage/trades/{id} [GET]
func (h *handler) GetTrade(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	output, err := h.uc.GetTrade(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.GetTrade: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTradeDetailResp(output))
}

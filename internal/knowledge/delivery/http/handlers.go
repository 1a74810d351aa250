package http

import (
	"github.com/gin-gonic/gin"

	"emergency-triage/pkg/response"
)

// Search godoc
// @Summary     Search safety advice
// @Description Returns the tips and most relevant Q&A for the best matching hazard category.
// @Tags        Knowledge
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Query"
// @Success     200  {object} searchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/knowledge/search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

// ListCategories godoc
// @Summary     List knowledge categories
// @Description Returns every hazard category with its tips and Q&A.
// @Tags        Knowledge
// @Produce     json
// @Success     200 {object} listCategoriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/knowledge/categories [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListCategoriesResp(output))
}

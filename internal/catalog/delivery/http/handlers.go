package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-api/pkg/response"
)

// Read godoc
// @Summary     Read an item
// @Description Echoes the item ID and the q query parameter when supplied.
// @Tags        Items
// @Produce     json
// @Param       item_id path  string true  "Item ID (free text)"
// @Param       q       query string false "Optional query string"
// @Success     200 {object} readResp
// @Router      /items/{item_id} [GET]
func (h *handler) Read(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processReadReq(c)

	output, err := h.uc.Read(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Read: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newReadResp(output))
}

// Create godoc
// @Summary     Create an item
// @Description Echoes the decoded item; adds price_with_tax when tax is present and non-zero.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body itemReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Router      /items/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newCreateResp(output))
}

// Replace godoc
// @Summary     Replace an item
// @Description Merges the integer item ID with the decoded item fields.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       item_id path int     true "Item ID (integer)"
// @Param       body    body itemReq true "Item data"
// @Success     200 {object} replaceResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Router      /items/{item_id} [PUT]
func (h *handler) Replace(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReplaceReq(c)
	if err != nil {
		response.ValidationError(c, err)
		return
	}

	output, err := h.uc.Replace(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Replace: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newReplaceResp(output))
}

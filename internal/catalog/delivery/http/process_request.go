package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog-api/internal/catalog"
)

// processReadReq extracts the item ID path param and the optional q
// query parameter. q stays nil when not supplied.
func (h *handler) processReadReq(c *gin.Context) readReq {
	var req readReq
	req.ItemID = c.Param("item_id")
	if q, ok := c.GetQuery("q"); ok {
		req.Q = &q
	}
	return req
}

// processCreateReq binds and validates the create item request body.
// Validation happens here, before the handler's domain call, so the
// use case always receives an already-validated record.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processReplaceReq binds the body and parses the integer URI param.
func (h *handler) processReplaceReq(c *gin.Context) (replaceReq, error) {
	var req replaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		return req, catalog.ErrItemIDNotInteger
	}
	req.ItemID = id

	return req, req.validate()
}

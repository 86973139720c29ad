package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingKey = errors.New("item key is required")

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Key = c.Param("key")
	if req.Key == "" {
		return req, errMissingKey
	}
	return req, req.validate()
}

// processUpsertReq binds the upsert request body; the target key comes from
// the URI.
func (h *handler) processUpsertReq(c *gin.Context) (upsertReq, string, error) {
	var req upsertReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	key := c.Param("key")
	if key == "" {
		return req, "", errMissingKey
	}
	return req, key, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

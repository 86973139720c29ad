package http

import (
	"github.com/gin-gonic/gin"

	"practice-catalog/internal/middleware"
	"practice-catalog/pkg/response"
)

// practiceKey returns the tenant key of the authenticated user.
func practiceKey(c *gin.Context) (string, bool) {
	user, ok := middleware.UserFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
		return "", false
	}
	return user.PracticeKey, true
}

// Create godoc
// @Summary     Create a catalog item
// @Description Runs the creation pipeline: uniqueness checks, category compatibility, enrichment, transactional persist + event dispatch.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     409 {object} response.Resp "Code or key already in use"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/catalog/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(pk))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update a catalog item
// @Description Partial update; a change that modifies nothing succeeds without dispatching events.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       key  path string    true "Catalog item key"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalog/items/{key} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput(pk))
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Upsert godoc
// @Summary     Create or update a catalog item under an explicit key
// @Description When the write resolves to an update, the activation side effect runs in the same transaction.
// @Tags        Catalog
// @Accept      json
// @Produce     json
// @Param       key  path string    true "Catalog item key"
// @Param       body body upsertReq true "Item data"
// @Success     200 {object} upsertResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Router      /api/v1/catalog/items/{key} [PUT]
func (h *handler) Upsert(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	req, key, err := h.processUpsertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Upsert(ctx, req.toInput(pk, key))
	if err != nil {
		h.l.Errorf(ctx, "uc.Upsert: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, h.newUpsertResp(output))
}

// Detail godoc
// @Summary     Get catalog item detail
// @Tags        Catalog
// @Produce     json
// @Param       key path string true "Catalog item key"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalog/items/{key} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	output, err := h.uc.Detail(ctx, pk, key)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// List godoc
// @Summary     List catalog items
// @Tags        Catalog
// @Produce     json
// @Param       item_type query string false "Filter by item type (service/lab/product)"
// @Param       active    query bool   false "Filter by activation"
// @Param       limit     query int    false "Page size (default: 20)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Router      /api/v1/catalog/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(pk))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Delete godoc
// @Summary     Soft-delete a catalog item
// @Tags        Catalog
// @Produce     json
// @Param       key path string true "Catalog item key"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/catalog/items/{key} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	if err := h.uc.Delete(ctx, pk, key); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, nil)
}

// Restore godoc
// @Summary     Restore a soft-deleted catalog item
// @Tags        Catalog
// @Produce     json
// @Param       key path string true "Catalog item key"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/catalog/items/{key}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	if err := h.uc.Restore(ctx, pk, key); err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, nil)
}

// Activate godoc
// @Summary     Activate a catalog item
// @Tags        Catalog
// @Produce     json
// @Param       key path string true "Catalog item key"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/catalog/items/{key}/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate godoc
// @Summary     Deactivate a catalog item
// @Tags        Catalog
// @Produce     json
// @Param       key path string true "Catalog item key"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/catalog/items/{key}/deactivate [POST]
func (h *handler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *handler) setActive(c *gin.Context, active bool) {
	ctx := c.Request.Context()

	pk, ok := practiceKey(c)
	if !ok {
		return
	}
	key := c.Param("key")
	if key == "" {
		response.Error(c, errMissingKey)
		return
	}

	if err := h.uc.SetActive(ctx, pk, key, active); err != nil {
		h.l.Errorf(ctx, "uc.SetActive: %v", err)
		response.Error(c, h.mapError(c, err))
		return
	}

	response.OK(c, nil)
}

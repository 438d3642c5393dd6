package handler

import (
	"errors"
	"net/http"

	"catalog-admin/internal/domains/category"
	"catalog-admin/internal/shared/response"
	"catalog-admin/internal/shared/validation"
	"catalog-admin/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

// RegisterRoutes gắn route category vào group /api/v1.
// admin là chuỗi middleware cho route ghi (auth + admin), có thể rỗng.
func (h *CategoryHandler) RegisterRoutes(v1 *gin.RouterGroup, admin ...gin.HandlerFunc) {
	categories := v1.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.GetByID)
	}

	write := categories.Group("", admin...)
	{
		write.POST("", h.Create)
		write.PUT("/:id", h.Update)
		write.DELETE("/:id", h.Delete)
		write.POST("/:id/activate", h.Activate)
		write.POST("/:id/deactivate", h.Deactivate)
	}
}

// ========== CREATE: POST /v1/categories ==========
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== READ: GET /v1/categories/:id ==========
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: List ==========
// GET /v1/categories?page=0&limit=10&terms=fic&sort=name&dir=asc
func (h *CategoryHandler) List(c *gin.Context) {
	var req category.ListCategoriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "BAD_REQUEST", "invalid query parameters", err)
		return
	}

	page, err := h.service.List(c.Request.Context(), req.ToQuery())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, page.Items, response.NewMeta(page.Page, page.Limit, page.Total))
}

// ========== UPDATE: PUT /v1/categories/:id ==========
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== POST /v1/categories/:id/activate ==========
func (h *CategoryHandler) Activate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== POST /v1/categories/:id/deactivate ==========
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE: DELETE /v1/categories/:id ==========
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func parseID(c *gin.Context) (category.CategoryID, bool) {
	id, err := category.ParseCategoryID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return "", false
	}
	return id, true
}

// handleError map lỗi domain sang HTTP response
func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var domainErr *validation.DomainError
	if errors.As(err, &domainErr) {
		response.ValidationFailed(c, domainErr.Messages())
		return
	}

	status := category.GetHTTPStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("category handler: "+c.Request.Method+" "+c.FullPath(), err)
	}

	response.ErrorResponse(c, status, category.GetErrorCode(err), category.GetErrorMessage(err))
}

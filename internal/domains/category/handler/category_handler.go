package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/category"
	"library-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.CategoryService
}

func NewCategoryHandler(svc category.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	var q category.ListCategoriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Limit: q.Limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidCategoryID.Error())
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update handles PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidCategoryID.Error())
		return
	}

	var req category.UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, category.ErrInvalidCategoryID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CATEGORY_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.BookService
}

func NewBookHandler(svc book.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

// Create handles POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List handles GET /api/v1/books?category_id=&search=&limit=&offset=
func (h *BookHandler) List(c *gin.Context) {
	var q book.ListBooksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Limit: q.Limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update handles PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	var req book.UpdateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, book.ErrInvalidBookID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "BOOK_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/member"
	"library-backend/internal/shared/response"
)

type BorrowingHandler struct {
	service borrowing.BorrowingService
}

func NewBorrowingHandler(svc borrowing.BorrowingService) *BorrowingHandler {
	return &BorrowingHandler{service: svc}
}

// Create handles POST /api/v1/borrowings
func (h *BorrowingHandler) Create(c *gin.Context) {
	var req borrowing.CreateBorrowingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, borrowing.GetHTTPStatusCode(err), "BORROWING_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Return handles POST /api/v1/borrowings/:id/return
func (h *BorrowingHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, borrowing.ErrInvalidBorrowingID.Error())
		return
	}

	var req borrowing.ReturnBorrowingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Return(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, borrowing.GetHTTPStatusCode(err), "BORROWING_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// List handles GET /api/v1/borrowings?status=&member_id=&limit=&offset=
func (h *BorrowingHandler) List(c *gin.Context) {
	var q borrowing.ListBorrowingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, borrowing.GetHTTPStatusCode(err), "BORROWING_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Limit: q.Limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/borrowings/:id
func (h *BorrowingHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, borrowing.ErrInvalidBorrowingID.Error())
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, borrowing.GetHTTPStatusCode(err), "BORROWING_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ListByMember handles GET /api/v1/members/:id/borrowings
func (h *BorrowingHandler) ListByMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, member.ErrInvalidMemberID.Error())
		return
	}

	var q borrowing.ListBorrowingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.ListByMember(c.Request.Context(), memberID, &q)
	if err != nil {
		response.ErrorResponse(c, borrowing.GetHTTPStatusCode(err), "BORROWING_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Limit: q.Limit,
		Total: total,
	})
}

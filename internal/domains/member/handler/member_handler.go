package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/member"
	"library-backend/internal/shared/response"
)

type MemberHandler struct {
	service member.MemberService
}

func NewMemberHandler(svc member.MemberService) *MemberHandler {
	return &MemberHandler{service: svc}
}

// Create handles POST /api/v1/members
func (h *MemberHandler) Create(c *gin.Context) {
	var req member.CreateMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, member.GetHTTPStatusCode(err), "MEMBER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// List handles GET /api/v1/members?search=&limit=&offset=
func (h *MemberHandler) List(c *gin.Context) {
	var q member.ListMembersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items, total, err := h.service.List(c.Request.Context(), &q)
	if err != nil {
		response.ErrorResponse(c, member.GetHTTPStatusCode(err), "MEMBER_ERROR", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Limit: q.Limit,
		Total: total,
	})
}

// GetByID handles GET /api/v1/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, member.ErrInvalidMemberID.Error())
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, member.GetHTTPStatusCode(err), "MEMBER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Update handles PUT /api/v1/members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, member.ErrInvalidMemberID.Error())
		return
	}

	var req member.UpdateMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, member.GetHTTPStatusCode(err), "MEMBER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, member.ErrInvalidMemberID.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, member.GetHTTPStatusCode(err), "MEMBER_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

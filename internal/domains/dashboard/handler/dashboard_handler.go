package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/dashboard"
	"library-backend/internal/shared/response"
)

type DashboardHandler struct {
	service dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Get handles GET /api/v1/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.service.GetData(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, data)
}

// Refresh handles POST /api/v1/dashboard/refresh
func (h *DashboardHandler) Refresh(c *gin.Context) {
	if err := h.service.RefreshCache(c.Request.Context()); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"refreshed": true})
}

package dashboard

import (
	"net/http"

	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(management *gin.RouterGroup) {
	management.GET("/dashboard/today", h.Today)
}

func (h *Handler) Today(c *gin.Context) {
	snapshot, err := h.service.Today(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DASHBOARD_FAILED", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, snapshot)
}

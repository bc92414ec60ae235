package profiles

import (
	"errors"
	"net/http"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/response"
	"hotelms/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type CreateProfileRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN MANAGER STAFF USER"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(staff *gin.RouterGroup) {
	staff.GET("/profiles", h.List)
	staff.POST("/profiles", h.Create)
	staff.GET("/staff", h.ListStaff)
	staff.GET("/clients", h.ListClients)
}

func (h *Handler) List(c *gin.Context) {
	var role *domain.Role
	if q := c.Query("role"); q != "" {
		r := domain.Role(q)
		role = &r
	}

	profiles, err := h.service.List(c.Request.Context(), role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list profiles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profiles": profiles})
}

func (h *Handler) ListStaff(c *gin.Context) {
	staff, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list staff")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": staff})
}

func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if fields := validator.Validate(&req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid profile fields", fields)
		return
	}

	p, err := h.service.Create(c.Request.Context(), CreateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create profile")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"profile": p})
}

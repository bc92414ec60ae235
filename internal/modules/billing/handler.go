package billing

import (
	"errors"
	"net/http"
	"strconv"

	"hotelms/internal/domain"
	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/transactions")
	{
		g.GET("", h.List)
		g.POST("", h.RecordPayment)
	}
	protected.GET("/bookings/:id/balance", h.Balance)
}

// List shows every transaction to staff; USER callers are scoped to payments
// on their own bookings.
func (h *Handler) List(c *gin.Context) {
	var (
		txns []domain.Transaction
		err  error
	)

	if c.GetString("role") == string(domain.RoleUser) {
		guestID, parseErr := uuid.Parse(c.GetString("user_id"))
		if parseErr != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user identity")
			return
		}
		txns, err = h.service.ListByGuest(c.Request.Context(), guestID)
	} else {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
		txns, err = h.service.ListAll(c.Request.Context(), limit)
	}

	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"transactions": txns})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking_id")
		return
	}

	t, err := h.service.RecordPayment(c.Request.Context(), RecordPaymentInput{
		BookingID: bookingID,
		Amount:    req.Amount,
		Type:      domain.TransactionType(req.Type),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be positive and type valid")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "PAYMENT_FAILED", "Failed to record payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"transaction": t})
}

func (h *Handler) Balance(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	stmt, err := h.service.Balance(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "BALANCE_FAILED", "Failed to compute balance")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"balance": stmt})
}

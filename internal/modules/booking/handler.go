package booking

import (
	"errors"
	"net/http"
	"time"

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
	g := protected.Group("/bookings")
	{
		g.GET("", h.List)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
	}
	protected.GET("/availability", h.CheckAvailability)
}

// List returns all bookings for staff; USER callers only ever see their own.
func (h *Handler) List(c *gin.Context) {
	var guestID *uuid.UUID
	if c.GetString("role") == string(domain.RoleUser) {
		id, err := uuid.Parse(c.GetString("user_id"))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user identity")
			return
		}
		guestID = &id
	}

	bookings, err := h.service.List(c.Request.Context(), guestID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list bookings")
		return
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(b))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	// guests can only book for themselves
	if c.GetString("role") == string(domain.RoleUser) {
		req.GuestID = c.GetString("user_id")
	}

	in, err := parseCreateRequest(req)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeServiceError(c, err, "CREATE_FAILED", "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingView(*b)})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	in := UpdateInput{}
	if req.StartDate != nil {
		d, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date")
			return
		}
		in.StartDate = &d
	}
	if req.EndDate != nil {
		d, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end_date")
			return
		}
		in.EndDate = &d
	}
	if req.Status != nil {
		s := domain.BookingStatus(*req.Status)
		in.Status = &s
	}

	b, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		h.writeServiceError(c, err, "UPDATE_FAILED", "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": toBookingView(*b)})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := uuid.Parse(c.Query("room_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
		return
	}
	start, err := time.Parse(dateLayout, c.Query("start_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("end_date"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end_date")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomID, start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "AVAILABILITY_FAILED", "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) writeServiceError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be before end_date")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "DATE_CONFLICT", "date conflict: overbooking detected")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Referenced booking, room or guest does not exist")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}

func parseCreateRequest(req CreateBookingRequest) (CreateInput, error) {
	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		return CreateInput{}, errors.New("invalid guest_id")
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return CreateInput{}, errors.New("invalid room_id")
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return CreateInput{}, errors.New("invalid start_date")
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return CreateInput{}, errors.New("invalid end_date")
	}

	return CreateInput{
		GuestID:   guestID,
		RoomID:    roomID,
		StartDate: start,
		EndDate:   end,
		Status:    domain.BookingStatus(req.Status),
	}, nil
}

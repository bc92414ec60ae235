package public

import (
	"errors"
	"net/http"
	"time"

	"hotelms/internal/modules/booking"
	"hotelms/internal/modules/rooms"
	"hotelms/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type Handler struct {
	service  *Service
	bookings *booking.Service
	rooms    *rooms.Service
}

func NewHandler(service *Service, bookings *booking.Service, roomsSvc *rooms.Service) *Handler {
	return &Handler{service: service, bookings: bookings, rooms: roomsSvc}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/public")
	{
		g.GET("/rooms", h.AvailableRooms)
		g.GET("/availability", h.CheckAvailability)
		g.POST("/bookings", h.Book)
	}
}

// AvailableRooms lists rooms carrying the AVAILABLE flag for the funnel's
// room picker.
func (h *Handler) AvailableRooms(c *gin.Context) {
	list, err := h.rooms.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": list})
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

	available, err := h.bookings.CheckAvailability(c.Request.Context(), roomID, start, end)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "AVAILABILITY_FAILED", "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) Book(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, email, room and dates are required")
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
		return
	}
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date")
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid end_date")
		return
	}

	b, err := h.service.Book(c.Request.Context(), GuestBookingInput{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestPhone: req.GuestPhone,
		RoomID:     roomID,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start_date must be before end_date")
		case errors.Is(err, booking.ErrConflict):
			response.Error(c, http.StatusConflict, "DATE_CONFLICT", "Room not available for these dates")
		case errors.Is(err, booking.ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", "Failed to create booking")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

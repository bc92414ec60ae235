package booking

import "hotelms/internal/domain"

// Dates travel as calendar-date strings, the same representation they are
// stored in. Handlers parse them to UTC midnight before calling the service.
type CreateBookingRequest struct {
	GuestID   string `json:"guest_id" binding:"required,uuid"`
	RoomID    string `json:"room_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status"`
}

type UpdateBookingRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status"`
}

type BookingView struct {
	ID        string               `json:"id"`
	GuestID   string               `json:"guest_id"`
	RoomID    string               `json:"room_id"`
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Status    domain.BookingStatus `json:"status"`
	RoomName  string               `json:"room_number,omitempty"`
	GuestName string               `json:"guest_name,omitempty"`
}

const dateLayout = "2006-01-02"

func toBookingView(b domain.Booking) BookingView {
	v := BookingView{
		ID:        b.ID.String(),
		GuestID:   b.GuestID.String(),
		RoomID:    b.RoomID.String(),
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
		Status:    b.Status,
	}
	if b.Room != nil {
		v.RoomName = b.Room.Number
	}
	if b.Guest != nil {
		v.GuestName = b.Guest.FullName
	}
	return v
}

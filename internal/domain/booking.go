package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingCheckedIn  BookingStatus = "CHECKED_IN"
	BookingCheckedOut BookingStatus = "CHECKED_OUT"
)

// BlockingStatuses are the statuses that reserve a room and count toward
// overlap detection. CANCELLED and CHECKED_OUT never block.
var BlockingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCheckedIn,
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCheckedIn, BookingCheckedOut:
		return true
	}
	return false
}

// Booking reserves a room for a guest over the half-open date range
// [StartDate, EndDate). Dates are calendar dates held at UTC midnight.
type Booking struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	GuestID   uuid.UUID     `json:"guest_id" gorm:"type:uuid;not null;index"`
	RoomID    uuid.UUID     `json:"room_id" gorm:"type:uuid;not null;index"`
	StartDate time.Time     `json:"start_date" gorm:"not null;index"`
	EndDate   time.Time     `json:"end_date" gorm:"not null;index"`
	Status    BookingStatus `json:"status" gorm:"not null;default:PENDING"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Guest *Profile `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	Room  *Room    `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

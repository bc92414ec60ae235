package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomCleaning    RoomStatus = "CLEANING"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// Room is a bookable hotel room. Price is the nightly rate in the base
// currency unit, no fractional subunits. Status is an operational flag set by
// staff; it is not derived from booking state.
type Room struct {
	ID         uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Number     string                      `json:"number" gorm:"not null;uniqueIndex"`
	Type       string                      `json:"type" gorm:"not null"`
	Price      int64                       `json:"price" gorm:"not null"`
	Status     RoomStatus                  `json:"status" gorm:"not null;default:AVAILABLE"`
	Equipments datatypes.JSONSlice[string] `json:"equipments"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }

func (r *Room) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

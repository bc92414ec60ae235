package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionCash     TransactionType = "CASH"
	TransactionCard     TransactionType = "CARD"
	TransactionTransfer TransactionType = "TRANSFER"
	TransactionOther    TransactionType = "OTHER"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionCash, TransactionCard, TransactionTransfer, TransactionOther:
		return true
	}
	return false
}

// Transaction is one recorded payment against a booking. Rows are append-only:
// reconciliation mistakes are corrected with compensating entries, never by
// updating or deleting.
type Transaction struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID       `json:"booking_id" gorm:"type:uuid;not null;index"`
	Amount    int64           `json:"amount" gorm:"not null"`
	Type      TransactionType `json:"type" gorm:"not null"`
	CreatedAt time.Time       `json:"created_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Transaction) TableName() string { return "transactions" }

func (t *Transaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

package billing

import (
	"context"

	"hotelms/internal/domain"

	"github.com/google/uuid"
)

type BookingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

type RoomReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *domain.Transaction) error
	ListAll(ctx context.Context, limit int) ([]domain.Transaction, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Transaction, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Transaction, error)
}

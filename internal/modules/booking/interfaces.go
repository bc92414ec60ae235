package booking

import (
	"context"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/google/uuid"
)

// BookingRepository is the persistence boundary of the lifecycle manager.
type BookingRepository interface {
	CountConflicts(ctx context.Context, roomID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (int64, error)
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, id uuid.UUID, patch repository.BookingPatch) (*domain.Booking, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListWithDetails(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error)
}

// RoomReader resolves room references on create.
type RoomReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// ProfileReader resolves guest references on create.
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

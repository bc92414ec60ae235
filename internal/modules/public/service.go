package public

import (
	"context"
	"errors"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/modules/booking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*domain.Profile, error)
}

// Service is the unauthenticated booking funnel: a visitor supplies contact
// details and dates, and ends up with a PENDING booking awaiting staff review.
type Service struct {
	profiles profileRepository
	bookings *booking.Service
}

func NewService(profiles profileRepository, bookings *booking.Service) *Service {
	return &Service{profiles: profiles, bookings: bookings}
}

type GuestBookingInput struct {
	GuestName  string
	GuestEmail string
	GuestPhone string
	RoomID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
}

// Book finds or creates the guest's profile by email, then creates a PENDING
// booking. The overlap invariant is enforced by the booking service; the
// profile write is deliberately done first so an interested guest is kept
// even when their dates turn out to be taken.
func (s *Service) Book(ctx context.Context, in GuestBookingInput) (*domain.Booking, error) {
	guest, err := s.findOrCreateGuest(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.bookings.Create(ctx, booking.CreateInput{
		GuestID:   guest.ID,
		RoomID:    in.RoomID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    domain.BookingPending,
	})
}

func (s *Service) findOrCreateGuest(ctx context.Context, in GuestBookingInput) (*domain.Profile, error) {
	existing, err := s.profiles.GetByEmail(ctx, in.GuestEmail)
	if err == nil {
		// refresh contact details on repeat visitors
		updates := map[string]interface{}{"full_name": in.GuestName}
		if in.GuestPhone != "" {
			updates["phone"] = in.GuestPhone
		}
		return s.profiles.Update(ctx, existing.ID, updates)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	guest := &domain.Profile{
		Role:     domain.RoleUser,
		FullName: in.GuestName,
		Email:    in.GuestEmail,
	}
	if in.GuestPhone != "" {
		phone := in.GuestPhone
		guest.Phone = &phone
	}
	if err := s.profiles.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

package booking

import (
	"context"
	"errors"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is the booking lifecycle manager. It owns the no-overlap invariant:
// every create and every date-changing update re-checks the blocking set of
// the room before the write commits.
type Service struct {
	bookings BookingRepository
	rooms    RoomReader
	profiles ProfileReader
}

func NewService(bookings BookingRepository, rooms RoomReader, profiles ProfileReader) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		profiles: profiles,
	}
}

type CreateInput struct {
	GuestID   uuid.UUID
	RoomID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Status    domain.BookingStatus
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Booking, error) {
	if !in.StartDate.Before(in.EndDate) {
		return nil, ErrValidation
	}

	status := in.Status
	if status == "" {
		status = domain.BookingPending
	}
	if !status.IsValid() {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByID(ctx, in.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.profiles.GetByID(ctx, in.GuestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		GuestID:   in.GuestID,
		RoomID:    in.RoomID,
		StartDate: normalizeDate(in.StartDate),
		EndDate:   normalizeDate(in.EndDate),
		Status:    status,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

type UpdateInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.BookingStatus
}

// Update persists a partial change. The overlap check only runs when both
// dates are present in the patch; a status change alone never re-validates
// dates.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Booking, error) {
	if in.StartDate != nil && in.EndDate != nil && !in.StartDate.Before(*in.EndDate) {
		return nil, ErrValidation
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, ErrValidation
	}

	patch := repository.BookingPatch{Status: in.Status}
	if in.StartDate != nil {
		d := normalizeDate(*in.StartDate)
		patch.StartDate = &d
	}
	if in.EndDate != nil {
		d := normalizeDate(*in.EndDate)
		patch.EndDate = &d
	}

	updated, err := s.bookings.Update(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return nil, ErrConflict
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// List returns bookings newest stay first. A non-nil guestID narrows the view
// to that guest's bookings; callers pass their own scope explicitly.
func (s *Service) List(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error) {
	return s.bookings.ListWithDetails(ctx, guestID)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// CheckAvailability reports whether the room is free over [start, end).
// Read-only; a zero-length range is not rejected here.
func (s *Service) CheckAvailability(ctx context.Context, roomID uuid.UUID, start, end time.Time) (bool, error) {
	cnt, err := s.bookings.CountConflicts(ctx, roomID, normalizeDate(start), normalizeDate(end), nil)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// normalizeDate pins a calendar date to UTC midnight so overlap and equality
// comparisons never depend on the caller's clock or zone.
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package billing

import (
	"context"
	"errors"

	"hotelms/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultListLimit = 200

type Service struct {
	transactions TransactionRepository
	bookings     BookingReader
	rooms        RoomReader
}

func NewService(transactions TransactionRepository, bookings BookingReader, rooms RoomReader) *Service {
	return &Service{
		transactions: transactions,
		bookings:     bookings,
		rooms:        rooms,
	}
}

type RecordPaymentInput struct {
	BookingID uuid.UUID
	Amount    int64
	Type      domain.TransactionType
}

// RecordPayment appends one reconciliation entry against a booking.
func (s *Service) RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Transaction, error) {
	if in.Amount <= 0 {
		return nil, ErrValidation
	}
	if !in.Type.IsValid() {
		return nil, ErrValidation
	}

	if _, err := s.bookings.GetByID(ctx, in.BookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	t := &domain.Transaction{
		BookingID: in.BookingID,
		Amount:    in.Amount,
		Type:      in.Type,
	}
	if err := s.transactions.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Balance builds the stay balance for a booking from its room's real nightly
// price and all recorded payments.
func (s *Service) Balance(ctx context.Context, bookingID uuid.UUID) (*BalanceStatement, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	txns, err := s.transactions.ListByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	stmt := Compute(*b, room.Price, txns)
	return &stmt, nil
}

func (s *Service) ListAll(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.transactions.ListAll(ctx, limit)
}

func (s *Service) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Transaction, error) {
	return s.transactions.ListByBooking(ctx, bookingID)
}

func (s *Service) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Transaction, error) {
	return s.transactions.ListByGuest(ctx, guestID)
}

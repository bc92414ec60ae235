package repository

import (
	"context"
	"time"

	"hotelms/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) ListAll(ctx context.Context, limit int) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	tx := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&txns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return txns, nil
}

// ListByBooking returns the booking's payments oldest first, the order the
// balance statement presents them in.
func (r *TransactionRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	tx := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&txns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return txns, nil
}

// ListByGuest returns payments across all of the guest's bookings, newest
// first, with the booking rows preloaded for display.
func (r *TransactionRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	tx := r.db.WithContext(ctx).
		Preload("Booking").
		Where("booking_id IN (?)",
			r.db.Model(&domain.Booking{}).Select("id").Where("guest_id = ?", guestID)).
		Order("created_at DESC").
		Find(&txns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return txns, nil
}

// SumAmountBetween totals payment amounts recorded within [from, to].
func (r *TransactionRepository) SumAmountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total *int64
	tx := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Select("SUM(amount)").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Scan(&total)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

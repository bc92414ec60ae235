package repository

import (
	"context"
	"errors"
	"time"

	"hotelms/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// overlapConstraint is the Postgres exclusion constraint on
// (room_id, daterange(start_date, end_date)) installed by cmd/seed. It backs
// up the in-transaction conflict check for deployments where two instances
// share the database.
const overlapConstraint = "bookings_no_overlap"

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingPatch is a partial update. Nil fields are left untouched.
type BookingPatch struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *domain.BookingStatus
}

func (p BookingPatch) reschedules() bool {
	return p.StartDate != nil && p.EndDate != nil
}

// conflictQuery selects blocking bookings of the room whose half-open
// [start_date, end_date) range overlaps [start, end). Touching ranges do not
// overlap: a booking may start on the exact day another ends.
func conflictQuery(tx *gorm.DB, roomID uuid.UUID, start, end time.Time, exclude *uuid.UUID) *gorm.DB {
	q := tx.Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", domain.BlockingStatuses).
		Where("start_date < ?", end).
		Where("end_date > ?", start)
	if exclude != nil {
		q = q.Where("id <> ?", *exclude)
	}
	return q
}

// CountConflicts is the read-only availability probe. No locks are taken.
func (r *BookingRepository) CountConflicts(ctx context.Context, roomID uuid.UUID, start, end time.Time, exclude *uuid.UUID) (int64, error) {
	var cnt int64
	tx := conflictQuery(r.db.WithContext(ctx), roomID, start, end, exclude).Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

// Create inserts the booking after re-checking the overlap invariant inside
// one transaction. Blocking rows of the room are locked for the duration of
// the check so a concurrent create of the same range serializes behind it.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var blocking []domain.Booking
		if err := conflictQuery(tx, b.RoomID, b.StartDate, b.EndDate, nil).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Find(&blocking).Error; err != nil {
			return err
		}
		if len(blocking) > 0 {
			return ErrConflict
		}
		return tx.Create(b).Error
	})
	return mapOverlapError(err)
}

// Update applies a partial update. When the patch carries both dates the
// overlap check runs against the booking's current room, excluding the
// booking itself; status-only patches skip the check.
func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, patch BookingPatch) (*domain.Booking, error) {
	var updated domain.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Booking
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			return err
		}

		if patch.reschedules() {
			var blocking []domain.Booking
			if err := conflictQuery(tx, current.RoomID, *patch.StartDate, *patch.EndDate, &id).
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Find(&blocking).Error; err != nil {
				return err
			}
			if len(blocking) > 0 {
				return ErrConflict
			}
		}

		updates := map[string]interface{}{}
		if patch.StartDate != nil {
			updates["start_date"] = *patch.StartDate
		}
		if patch.EndDate != nil {
			updates["end_date"] = *patch.EndDate
		}
		if patch.Status != nil {
			updates["status"] = *patch.Status
		}
		if len(updates) > 0 {
			if err := tx.Model(&domain.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, mapOverlapError(err)
	}
	return &updated, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// ListWithDetails returns bookings with their room and guest rows preloaded,
// newest stay first. A non-nil guestID scopes the result to that guest.
func (r *BookingRepository) ListWithDetails(ctx context.Context, guestID *uuid.UUID) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Guest").
		Order("start_date DESC")
	if guestID != nil {
		q = q.Where("guest_id = ?", *guestID)
	}

	var out []domain.Booking
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStartDate counts bookings arriving on the given calendar day.
func (r *BookingRepository) CountByStartDate(ctx context.Context, day time.Time, includeCancelled bool) (int64, error) {
	return r.countByDateColumn(ctx, "start_date", day, includeCancelled)
}

// CountByEndDate counts bookings departing on the given calendar day.
func (r *BookingRepository) CountByEndDate(ctx context.Context, day time.Time, includeCancelled bool) (int64, error) {
	return r.countByDateColumn(ctx, "end_date", day, includeCancelled)
}

func (r *BookingRepository) countByDateColumn(ctx context.Context, column string, day time.Time, includeCancelled bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where(column+" = ?", day)
	if !includeCancelled {
		q = q.Where("status <> ?", domain.BookingCancelled)
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// mapOverlapError folds a violation of the schema-level exclusion constraint
// into the same conflict outcome as the in-transaction check.
func mapOverlapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation
		if pgErr.Code == "23P01" && pgErr.ConstraintName == overlapConstraint {
			return ErrConflict
		}
	}
	return err
}

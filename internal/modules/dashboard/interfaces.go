package dashboard

import (
	"context"
	"time"
)

type TransactionReader interface {
	SumAmountBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type RoomCounter interface {
	CountByOccupancy(ctx context.Context) (occupied int64, total int64, err error)
}

type BookingCounter interface {
	CountByStartDate(ctx context.Context, day time.Time, includeCancelled bool) (int64, error)
	CountByEndDate(ctx context.Context, day time.Time, includeCancelled bool) (int64, error)
}

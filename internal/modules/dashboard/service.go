package dashboard

import (
	"context"
	"math"
	"time"
)

// TodaySnapshot is the fixed set of daily operational KPIs.
type TodaySnapshot struct {
	RevenueToday  int64 `json:"revenue_today"`
	OccupancyRate int64 `json:"occupancy_rate"`
	Arrivals      int64 `json:"arrivals"`
	Departures    int64 `json:"departures"`
}

type Service struct {
	transactions TransactionReader
	rooms        RoomCounter
	bookings     BookingCounter

	// Arrivals and departures historically count every booking, cancelled
	// included; front desks wanting only live bookings flip this off.
	IncludeCancelled bool
}

func NewService(transactions TransactionReader, rooms RoomCounter, bookings BookingCounter) *Service {
	return &Service{
		transactions:     transactions,
		rooms:            rooms,
		bookings:         bookings,
		IncludeCancelled: true,
	}
}

// Today composes the KPIs for the current UTC calendar day.
func (s *Service) Today(ctx context.Context) (*TodaySnapshot, error) {
	return s.snapshotFor(ctx, time.Now())
}

func (s *Service) snapshotFor(ctx context.Context, now time.Time) (*TodaySnapshot, error) {
	day, from, to := dayWindow(now)

	revenue, err := s.transactions.SumAmountBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	occupied, total, err := s.rooms.CountByOccupancy(ctx)
	if err != nil {
		return nil, err
	}
	var rate int64
	if total > 0 {
		rate = int64(math.Round(float64(occupied) / float64(total) * 100))
	}

	arrivals, err := s.bookings.CountByStartDate(ctx, day, s.IncludeCancelled)
	if err != nil {
		return nil, err
	}
	departures, err := s.bookings.CountByEndDate(ctx, day, s.IncludeCancelled)
	if err != nil {
		return nil, err
	}

	return &TodaySnapshot{
		RevenueToday:  revenue,
		OccupancyRate: rate,
		Arrivals:      arrivals,
		Departures:    departures,
	}, nil
}

// dayWindow pins "today" to the UTC calendar day: midnight for the
// date-equality counts, [00:00:00.000, 23:59:59.999] for the revenue window.
func dayWindow(now time.Time) (day, from, to time.Time) {
	y, m, d := now.UTC().Date()
	day = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	from = day
	to = day.Add(24*time.Hour - time.Millisecond)
	return day, from, to
}

package billing

import (
	"math"
	"time"

	"hotelms/internal/domain"
)

// BalanceStatement is the stay balance of one booking: theoretical cost of
// the stay against the payments recorded so far. Balance <= 0 means settled
// (or in credit), > 0 means outstanding.
type BalanceStatement struct {
	BookingID        string `json:"booking_id"`
	Nights           int64  `json:"nights"`
	NightlyPrice     int64  `json:"nightly_price"`
	TheoreticalTotal int64  `json:"theoretical_total"`
	PaidTotal        int64  `json:"paid_total"`
	Balance          int64  `json:"balance"`
	Settled          bool   `json:"settled"`
}

// Nights bills the half-open range [start, end) at one night per day,
// never fewer than one night regardless of how degenerate the range is.
func Nights(start, end time.Time) int64 {
	days := end.Sub(start).Hours() / 24
	n := int64(math.Round(days))
	if n < 1 {
		return 1
	}
	return n
}

// Compute derives the statement from a booking, its room's nightly price and
// its recorded payments. This is the only balance computation in the system;
// staff and guest views both go through it.
func Compute(b domain.Booking, nightlyPrice int64, txns []domain.Transaction) BalanceStatement {
	nights := Nights(b.StartDate, b.EndDate)
	total := nightlyPrice * nights

	var paid int64
	for _, t := range txns {
		paid += t.Amount
	}

	balance := total - paid
	return BalanceStatement{
		BookingID:        b.ID.String(),
		Nights:           nights,
		NightlyPrice:     nightlyPrice,
		TheoreticalTotal: total,
		PaidTotal:        paid,
		Balance:          balance,
		Settled:          balance <= 0,
	}
}

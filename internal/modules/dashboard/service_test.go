package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/repository"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:dashboard_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Room{}, &domain.Booking{}, &domain.Transaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	return db
}

func newSnapshotService(db *gorm.DB) *Service {
	return NewService(
		repository.NewTransactionRepository(db),
		repository.NewRoomRepository(db),
		repository.NewBookingRepository(db),
	)
}

func seedGuest(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	guest := domain.Profile{Role: domain.RoleUser, FullName: "Mariam Sy", Email: "mariam@example.com"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest: %v", err)
	}
	return guest.ID
}

func seedBooking(t *testing.T, db *gorm.DB, guestID uuid.UUID, start, end time.Time, status domain.BookingStatus) uuid.UUID {
	t.Helper()
	room := domain.Room{Number: fmt.Sprintf("r-%s", uuid.NewString()[:8]), Type: "DOUBLE", Price: 50000, Status: domain.RoomAvailable}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	b := domain.Booking{GuestID: guestID, RoomID: room.ID, StartDate: start, EndDate: end, Status: status}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return b.ID
}

func seedPayment(t *testing.T, db *gorm.DB, bookingID uuid.UUID, amount int64, at time.Time) {
	t.Helper()
	txn := domain.Transaction{BookingID: bookingID, Amount: amount, Type: domain.TransactionCash, CreatedAt: at}
	if err := db.Create(&txn).Error; err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
}

var now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestRevenueCountsOnlyTodaysWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := newSnapshotService(db)
	guestID := seedGuest(t, db)
	bookingID := seedBooking(t, db, guestID,
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		domain.BookingCheckedIn)

	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	seedPayment(t, db, bookingID, 10000, day)                                 // first instant of the day
	seedPayment(t, db, bookingID, 20000, day.Add(23*time.Hour+59*time.Minute+59*time.Second)) // last second
	seedPayment(t, db, bookingID, 40000, day.Add(-time.Second))               // yesterday
	seedPayment(t, db, bookingID, 80000, day.Add(24*time.Hour))               // tomorrow midnight

	snap, err := svc.snapshotFor(context.Background(), now)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if snap.RevenueToday != 30000 {
		t.Fatalf("expected revenue 30000, got %d", snap.RevenueToday)
	}
}

func TestOccupancyRateRoundsAndHandlesNoRooms(t *testing.T) {
	db := setupTestDB(t)
	svc := newSnapshotService(db)

	snap, err := svc.snapshotFor(context.Background(), now)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if snap.OccupancyRate != 0 {
		t.Fatalf("expected 0 occupancy with no rooms, got %d", snap.OccupancyRate)
	}

	rooms := []domain.Room{
		{Number: "101", Type: "SINGLE", Price: 35000, Status: domain.RoomOccupied},
		{Number: "102", Type: "SINGLE", Price: 35000, Status: domain.RoomAvailable},
		{Number: "103", Type: "SINGLE", Price: 35000, Status: domain.RoomCleaning},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
	}

	snap, err = svc.snapshotFor(context.Background(), now)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if snap.OccupancyRate != 33 {
		t.Fatalf("expected occupancy 33, got %d", snap.OccupancyRate)
	}
}

func TestArrivalsAndDeparturesMatchByCalendarDay(t *testing.T) {
	db := setupTestDB(t)
	svc := newSnapshotService(db)
	guestID := seedGuest(t, db)

	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	seedBooking(t, db, guestID, today, today.AddDate(0, 0, 3), domain.BookingConfirmed)   // arrival
	seedBooking(t, db, guestID, today, today.AddDate(0, 0, 1), domain.BookingCancelled)   // cancelled arrival
	seedBooking(t, db, guestID, today.AddDate(0, 0, -2), today, domain.BookingCheckedIn)  // departure
	seedBooking(t, db, guestID, today.AddDate(0, 0, 1), today.AddDate(0, 0, 4), domain.BookingPending) // tomorrow

	snap, err := svc.snapshotFor(context.Background(), now)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if snap.Arrivals != 2 {
		t.Fatalf("expected 2 arrivals with cancelled included, got %d", snap.Arrivals)
	}
	if snap.Departures != 1 {
		t.Fatalf("expected 1 departure, got %d", snap.Departures)
	}

	svc.IncludeCancelled = false
	snap, err = svc.snapshotFor(context.Background(), now)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if snap.Arrivals != 1 {
		t.Fatalf("expected 1 arrival with cancelled excluded, got %d", snap.Arrivals)
	}
}

package public

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hotelms/internal/domain"
	"hotelms/internal/modules/booking"
	"hotelms/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

func setupFunnel(t *testing.T) (*Service, *gorm.DB, uuid.UUID) {
	t.Helper()
	dsn := fmt.Sprintf("file:public_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Profile{}, &domain.Room{}, &domain.Booking{}, &domain.Transaction{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	room := domain.Room{Number: "102", Type: "DOUBLE", Price: 50000, Status: domain.RoomAvailable}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	profiles := repository.NewProfileRepository(db)
	bookings := booking.NewService(repository.NewBookingRepository(db), repository.NewRoomRepository(db), profiles)
	return NewService(profiles, bookings), db, room.ID
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBookCreatesGuestAndPendingBooking(t *testing.T) {
	svc, db, roomID := setupFunnel(t)

	b, err := svc.Book(context.Background(), GuestBookingInput{
		GuestName:  "Fatou Ndiaye",
		GuestEmail: "fatou@example.com",
		GuestPhone: "+221770000000",
		RoomID:     roomID,
		StartDate:  day(2024, 7, 1),
		EndDate:    day(2024, 7, 4),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)

	var guest domain.Profile
	assert.NoError(t, db.First(&guest, "email = ?", "fatou@example.com").Error)
	assert.Equal(t, domain.RoleUser, guest.Role)
	assert.Equal(t, guest.ID, b.GuestID)
}

func TestBookReusesExistingGuestByEmail(t *testing.T) {
	svc, db, roomID := setupFunnel(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, GuestBookingInput{
		GuestName:  "Fatou Ndiaye",
		GuestEmail: "fatou@example.com",
		RoomID:     roomID,
		StartDate:  day(2024, 7, 1),
		EndDate:    day(2024, 7, 4),
	})
	assert.NoError(t, err)

	second, err := svc.Book(ctx, GuestBookingInput{
		GuestName:  "Fatou N. Diaye",
		GuestEmail: "fatou@example.com",
		GuestPhone: "+221771111111",
		RoomID:     roomID,
		StartDate:  day(2024, 7, 4),
		EndDate:    day(2024, 7, 6),
	})
	assert.NoError(t, err)
	assert.Equal(t, first.GuestID, second.GuestID)

	var count int64
	assert.NoError(t, db.Model(&domain.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var guest domain.Profile
	assert.NoError(t, db.First(&guest, "id = ?", first.GuestID).Error)
	assert.Equal(t, "Fatou N. Diaye", guest.FullName)
	if assert.NotNil(t, guest.Phone) {
		assert.Equal(t, "+221771111111", *guest.Phone)
	}
}

func TestBookKeepsGuestWhenDatesAreTaken(t *testing.T) {
	svc, db, roomID := setupFunnel(t)
	ctx := context.Background()

	_, err := svc.Book(ctx, GuestBookingInput{
		GuestName:  "First Guest",
		GuestEmail: "first@example.com",
		RoomID:     roomID,
		StartDate:  day(2024, 7, 1),
		EndDate:    day(2024, 7, 4),
	})
	assert.NoError(t, err)

	_, err = svc.Book(ctx, GuestBookingInput{
		GuestName:  "Second Guest",
		GuestEmail: "second@example.com",
		RoomID:     roomID,
		StartDate:  day(2024, 7, 2),
		EndDate:    day(2024, 7, 5),
	})
	assert.ErrorIs(t, err, booking.ErrConflict)

	// the interested guest's profile survives the failed booking
	var guest domain.Profile
	assert.NoError(t, db.First(&guest, "email = ?", "second@example.com").Error)

	var bookings int64
	assert.NoError(t, db.Model(&domain.Booking{}).Count(&bookings).Error)
	assert.Equal(t, int64(1), bookings)
}

package billing

import (
	"context"
	"testing"

	"hotelms/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListAll(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]domain.Transaction, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]domain.Transaction, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockRoomReader struct {
	mock.Mock
}

func (m *MockRoomReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func newTestService() (*Service, *MockTransactionRepository, *MockBookingReader, *MockRoomReader) {
	transactions := new(MockTransactionRepository)
	bookings := new(MockBookingReader)
	rooms := new(MockRoomReader)
	return NewService(transactions, bookings, rooms), transactions, bookings, rooms
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, transactions, bookings, _ := newTestService()

	for _, amount := range []int64{0, -500} {
		_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
			BookingID: uuid.New(),
			Amount:    amount,
			Type:      domain.TransactionCash,
		})
		assert.ErrorIs(t, err, ErrValidation)
	}
	transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRecordPaymentRejectsUnknownType(t *testing.T) {
	svc, transactions, _, _ := newTestService()

	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		BookingID: uuid.New(),
		Amount:    1000,
		Type:      domain.TransactionType("CRYPTO"),
	})

	assert.ErrorIs(t, err, ErrValidation)
	transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	svc, transactions, bookings, _ := newTestService()
	bookingID := uuid.New()

	bookings.On("GetByID", mock.Anything, bookingID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		BookingID: bookingID,
		Amount:    1000,
		Type:      domain.TransactionCard,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPayment(t *testing.T) {
	svc, transactions, bookings, _ := newTestService()
	bookingID := uuid.New()

	bookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{ID: bookingID}, nil)
	transactions.On("Create", mock.Anything, mock.MatchedBy(func(tx *domain.Transaction) bool {
		return tx.BookingID == bookingID && tx.Amount == 25000 && tx.Type == domain.TransactionTransfer
	})).Return(nil)

	tx, err := svc.RecordPayment(context.Background(), RecordPaymentInput{
		BookingID: bookingID,
		Amount:    25000,
		Type:      domain.TransactionTransfer,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(25000), tx.Amount)
	transactions.AssertExpectations(t)
}

func TestBalanceUsesRoomPriceAndPayments(t *testing.T) {
	svc, transactions, bookings, rooms := newTestService()
	bookingID := uuid.New()
	roomID := uuid.New()

	bookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID:        bookingID,
		RoomID:    roomID,
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 4),
	}, nil)
	rooms.On("GetByID", mock.Anything, roomID).Return(&domain.Room{ID: roomID, Price: 50000}, nil)
	transactions.On("ListByBooking", mock.Anything, bookingID).Return([]domain.Transaction{
		{Amount: 60000}, {Amount: 40000},
	}, nil)

	stmt, err := svc.Balance(context.Background(), bookingID)

	assert.NoError(t, err)
	assert.Equal(t, int64(150000), stmt.TheoreticalTotal)
	assert.Equal(t, int64(100000), stmt.PaidTotal)
	assert.Equal(t, int64(50000), stmt.Balance)
	assert.False(t, stmt.Settled)
}

func TestBalanceUnknownBooking(t *testing.T) {
	svc, _, bookings, _ := newTestService()
	bookingID := uuid.New()

	bookings.On("GetByID", mock.Anything, bookingID).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Balance(context.Background(), bookingID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAllAppliesDefaultLimit(t *testing.T) {
	svc, transactions, _, _ := newTestService()

	transactions.On("ListAll", mock.Anything, defaultListLimit).Return([]domain.Transaction{}, nil)

	_, err := svc.ListAll(context.Background(), 0)

	assert.NoError(t, err)
	transactions.AssertExpectations(t)
}

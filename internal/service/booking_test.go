package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockBookingStore, *mocks.MockNotifier, *BookingService) {
	t.Helper()
	store := mocks.NewMockBookingStore(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	slots := NewSlotService(store, 9, 18, log)
	svc := NewBookingService(store, slots, notifier, log)

	return store, notifier, svc
}

func TestBookingService_Create_Success(t *testing.T) {
	store, notifier, svc := newBookingService(t)

	store.EXPECT().OccupiedTimes(mock.Anything, "2024-06-01").Return([]string{"11:00"}, nil)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:        "Иван",
		Phone:       "+79991234567",
		CarBrand:    "Toyota",
		CarModel:    "Camry",
		Year:        "2015",
		Reason:      "замена масла",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Camry (2015)", booking.CarModel)
	assert.True(t, booking.Persisted)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Create_WithoutSlot(t *testing.T) {
	store, notifier, svc := newBookingService(t)

	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "Иван",
		Phone: "+79991234567",
	})

	require.NoError(t, err)
	assert.False(t, booking.HasSlot())
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateBookingInput
	}{
		{"missing name", domain.CreateBookingInput{Phone: "+79991234567"}},
		{"missing phone", domain.CreateBookingInput{Name: "Иван"}},
		{"bad date", domain.CreateBookingInput{Name: "Иван", Phone: "+79991234567", BookingDate: "01.06.2024"}},
		{"bad time", domain.CreateBookingInput{Name: "Иван", Phone: "+79991234567", BookingDate: "2024-06-01", BookingTime: "10am"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newBookingService(t)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_SlotTakenPreCheck(t *testing.T) {
	store, _, svc := newBookingService(t)

	store.EXPECT().OccupiedTimes(mock.Anything, "2024-06-01").Return([]string{"10:00"}, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:        "Иван",
		Phone:       "+79991234567",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Create_SlotTakenOnInsert(t *testing.T) {
	store, _, svc := newBookingService(t)

	// предварительная проверка прошла, но вставку отклонил уникальный индекс
	store.EXPECT().OccupiedTimes(mock.Anything, "2024-06-01").Return(nil, nil)
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotTaken)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:        "Иван",
		Phone:       "+79991234567",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Create_AcceptedWithoutPersistence(t *testing.T) {
	store, notifier, svc := newBookingService(t)

	store.EXPECT().OccupiedTimes(mock.Anything, "2024-06-01").Return(nil, errors.New("db down"))
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrNotPersisted)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:        "Иван",
		Phone:       "+79991234567",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(booking.ID, "no-db-"))
	assert.False(t, booking.Persisted)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create_StoreError(t *testing.T) {
	store, _, svc := newBookingService(t)

	store.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		Name:  "Иван",
		Phone: "+79991234567",
	})

	require.Error(t, err)
}

func TestBookingService_List(t *testing.T) {
	store, _, svc := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", Name: "Иван", Status: domain.BookingStatusPending},
	}
	store.EXPECT().List(mock.Anything).Return(bookings, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

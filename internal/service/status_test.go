package service

import (
	"context"
	"testing"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatusService(t *testing.T) (*mocks.MockBookingStore, *mocks.MockNotifier, *StatusService) {
	t.Helper()
	store := mocks.NewMockBookingStore(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	return store, notifier, NewStatusService(store, notifier, log)
}

func TestStatusService_Apply_OperatorConfirm(t *testing.T) {
	store, _, svc := newStatusService(t)

	store.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	store.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusConfirmed).Return(nil)

	booking, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "b1",
		Target:    domain.BookingStatusConfirmed,
		Origin:    domain.ActorOperator,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
}

func TestStatusService_Apply_CustomerCancelNotifiesOperator(t *testing.T) {
	store, notifier, svc := newStatusService(t)

	store.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)
	store.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).Return(nil)
	notifier.EXPECT().NotifyStatusChanged(mock.Anything, mock.Anything, domain.ActorCustomer).Return()

	booking, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "b1",
		Target:    domain.BookingStatusCancelled,
		Origin:    domain.ActorCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestStatusService_Apply_IdempotentRepeat(t *testing.T) {
	store, notifier, svc := newStatusService(t)

	store.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)

	booking, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "b1",
		Target:    domain.BookingStatusConfirmed,
		Origin:    domain.ActorCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	// повтор текущего статуса не пишет в хранилище и не шлёт уведомлений
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, notifier.Calls)
}

func TestStatusService_Apply_ForbiddenTransition(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.BookingStatus
		target domain.BookingStatus
	}{
		{"cancelled to confirmed", domain.BookingStatusCancelled, domain.BookingStatusConfirmed},
		{"completed to cancelled", domain.BookingStatusCompleted, domain.BookingStatusCancelled},
		{"pending to completed", domain.BookingStatusPending, domain.BookingStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, svc := newStatusService(t)

			store.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", Status: tt.from}, nil)

			_, err := svc.Apply(context.Background(), domain.StatusCommand{
				BookingID: "b1",
				Target:    tt.target,
				Origin:    domain.ActorOperator,
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrStatusTransition)
		})
	}
}

func TestStatusService_Apply_UnknownStatus(t *testing.T) {
	_, _, svc := newStatusService(t)

	_, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "b1",
		Target:    "banana",
		Origin:    domain.ActorOperator,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStatusService_Apply_BookingNotFound(t *testing.T) {
	store, _, svc := newStatusService(t)

	store.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "missing",
		Target:    domain.BookingStatusConfirmed,
		Origin:    domain.ActorOperator,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestStatusService_Apply_UpdateError(t *testing.T) {
	store, _, svc := newStatusService(t)

	store.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	store.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCancelled).
		Return(domain.ErrStoreUnavailable)

	_, err := svc.Apply(context.Background(), domain.StatusCommand{
		BookingID: "b1",
		Target:    domain.BookingStatusCancelled,
		Origin:    domain.ActorOperator,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

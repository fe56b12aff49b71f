package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/scheduler/mocks"
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

func tomorrow(loc *time.Location) string {
	return time.Now().In(loc).AddDate(0, 0, 1).Format("2006-01-02")
}

func TestScheduler_Sweep_CollectsOutcomes(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "0 10 * * *", time.UTC, newTestLogger(t))

	chatOK := int64(100)
	chatFail := int64(200)
	bookings := []*domain.Booking{
		{ID: "b1", ChatID: &chatOK},
		{ID: "b2", ChatID: &chatFail},
		{ID: "b3"}, // заявка с сайта, канала для напоминания нет
	}

	date := tomorrow(time.UTC)
	store.EXPECT().ListActiveByDate(mock.Anything, date).Return(bookings, nil)
	notifier.EXPECT().RemindCustomer(mock.Anything, bookings[0]).Return(nil)
	notifier.EXPECT().RemindCustomer(mock.Anything, bookings[1]).Return(errors.New("blocked by user"))

	var got []domain.ReminderResult
	notifier.EXPECT().SendReminderDigest(mock.Anything, date, mock.Anything).
		Run(func(ctx context.Context, date string, results []domain.ReminderResult) {
			got = results
		}).
		Return(nil)

	s.sweep(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, domain.ReminderSent, got[0].Outcome)
	assert.Equal(t, domain.ReminderFailed, got[1].Outcome)
	assert.Equal(t, domain.ReminderNoChannel, got[2].Outcome)
}

func TestScheduler_Sweep_EmptyDaySkipsDigest(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "0 10 * * *", time.UTC, newTestLogger(t))

	store.EXPECT().ListActiveByDate(mock.Anything, tomorrow(time.UTC)).Return(nil, nil)

	s.sweep(context.Background())

	assert.Empty(t, notifier.Calls)
}

func TestScheduler_Sweep_StoreError(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "0 10 * * *", time.UTC, newTestLogger(t))

	store.EXPECT().ListActiveByDate(mock.Anything, tomorrow(time.UTC)).
		Return(nil, errors.New("db down"))

	s.sweep(context.Background())

	assert.Empty(t, notifier.Calls)
}

func TestScheduler_Sweep_DigestError(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "0 10 * * *", time.UTC, newTestLogger(t))

	date := tomorrow(time.UTC)
	store.EXPECT().ListActiveByDate(mock.Anything, date).
		Return([]*domain.Booking{{ID: "b1"}}, nil)
	notifier.EXPECT().SendReminderDigest(mock.Anything, date, mock.Anything).
		Return(errors.New("telegram down"))

	s.sweep(context.Background()) // ошибка сводки логируется, паники нет
}

func TestScheduler_Start_InvalidSpec(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "not-a-cron-spec", time.UTC, newTestLogger(t))

	err := s.Start(context.Background())

	require.Error(t, err)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	store := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)

	s := New(store, notifier, "0 10 * * *", time.UTC, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		_ = s.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/logger"
)

type BookingLister interface {
	ListActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error)
}

type ReminderNotifier interface {
	RemindCustomer(ctx context.Context, b *domain.Booking) error
	SendReminderDigest(ctx context.Context, date string, results []domain.ReminderResult) error
}

// Scheduler раз в день (по умолчанию в 10:00 локального времени) собирает
// неотменённые заявки на завтра, напоминает клиентам с известным chat_id и
// шлёт оператору одну сводку. Работает параллельно с обработкой запросов
// и не блокирует её.
type Scheduler struct {
	store    BookingLister
	notifier ReminderNotifier
	spec     string
	location *time.Location
	logger   logger.Logger
}

func New(
	store BookingLister,
	notifier ReminderNotifier,
	spec string,
	location *time.Location,
	log logger.Logger,
) *Scheduler {
	return &Scheduler{
		store:    store,
		notifier: notifier,
		spec:     spec,
		location: location,
		logger:   log,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.location))

	if _, err := c.AddFunc(s.spec, func() {
		s.sweep(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}

	c.Start()
	s.logger.Info("reminder scheduler started",
		logger.String("spec", s.spec),
		logger.String("location", s.location.String()),
	)

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("reminder scheduler stopped")

	return nil
}

// sweep — один прогон напоминаний. Список заявок читается один раз:
// заявки, созданные или отменённые во время прогона, попадут в следующий.
// Ошибка доставки одному клиенту не прерывает остальных, все исходы
// собираются в сводку.
func (s *Scheduler) sweep(ctx context.Context) {
	date := time.Now().In(s.location).AddDate(0, 0, 1).Format("2006-01-02")

	bookings, err := s.store.ListActiveByDate(ctx, date)
	if err != nil {
		s.logger.Error("reminder sweep failed",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
		return
	}

	if len(bookings) == 0 {
		s.logger.Info("no bookings for tomorrow", logger.String("date", date))
		return
	}

	results := make([]domain.ReminderResult, 0, len(bookings))
	for _, b := range bookings {
		res := domain.ReminderResult{Booking: b, Outcome: domain.ReminderNoChannel}
		if b.ChatID != nil {
			if err := s.notifier.RemindCustomer(ctx, b); err != nil {
				s.logger.Error("customer reminder failed",
					logger.String("booking_id", b.ID),
					logger.String("error", err.Error()),
				)
				res.Outcome = domain.ReminderFailed
			} else {
				res.Outcome = domain.ReminderSent
			}
		}
		results = append(results, res)
	}

	if err := s.notifier.SendReminderDigest(ctx, date, results); err != nil {
		s.logger.Error("reminder digest failed",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("reminder sweep finished",
		logger.String("date", date),
		logger.Int("count", len(results)),
	)
}

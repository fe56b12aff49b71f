package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type BookingService struct {
	store    ports.BookingStore
	slots    *SlotService
	notifier ports.Notifier
	logger   logger.Logger
}

func NewBookingService(
	store ports.BookingStore,
	slots *SlotService,
	notifier ports.Notifier,
	log logger.Logger,
) *BookingService {
	return &BookingService{
		store:    store,
		slots:    slots,
		notifier: notifier,
		logger:   log,
	}
}

// Create принимает заявку, проверяет слот и сохраняет запись.
// Конфликт слота окончательно решает уникальный индекс хранилища;
// предварительная проверка нужна только для быстрого ответа.
// Если оба хранилища недоступны, заявка принимается без сохранения:
// уведомление оператору важнее потерянного клиента.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	if input.BookingDate != "" {
		if _, err := time.Parse(dateLayout, input.BookingDate); err != nil {
			return nil, fmt.Errorf("%w: booking_date must be YYYY-MM-DD", domain.ErrValidation)
		}
	}
	if input.BookingTime != "" {
		if _, err := time.Parse(timeLayout, input.BookingTime); err != nil {
			return nil, fmt.Errorf("%w: booking_time must be HH:MM", domain.ErrValidation)
		}
	}

	fullModel := input.CarModel
	if input.Year != "" {
		fullModel = fmt.Sprintf("%s (%s)", input.CarModel, input.Year)
	}

	if input.BookingDate != "" && input.BookingTime != "" {
		free, err := s.slots.IsFree(ctx, input.BookingDate, input.BookingTime)
		if err != nil {
			// проверка недоступна — пропускаем, конфликт поймает индекс
			s.logger.Error("slot pre-check skipped",
				logger.String("date", input.BookingDate),
				logger.String("time", input.BookingTime),
				logger.String("error", err.Error()),
			)
		} else if !free {
			return nil, domain.ErrSlotTaken
		}
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Phone:       input.Phone,
		CarBrand:    input.CarBrand,
		CarModel:    fullModel,
		Reason:      input.Reason,
		BookingDate: input.BookingDate,
		BookingTime: input.BookingTime,
		Status:      domain.BookingStatusPending,
		ChatID:      input.ChatID,
		Platform:    input.Platform,
		CreatedAt:   time.Now().UTC(),
		Persisted:   true,
	}

	if err := s.store.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotTaken):
			return nil, err
		case errors.Is(err, domain.ErrNotPersisted):
			booking.ID = "no-db-" + booking.ID
			booking.Persisted = false
			s.logger.Error("booking accepted without persistence",
				logger.String("booking_id", booking.ID),
				logger.String("phone", booking.Phone),
			)
		default:
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("date", booking.BookingDate),
		logger.String("time", booking.BookingTime),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// List возвращает все заявки для календаря оператора, новые первыми.
func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.store.List(ctx)
}

package repository

import (
	"context"
	"errors"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// FallbackStore оборачивает основное и резервное хранилища. Запись и чтение
// идут сначала в основное; при его отказе — в резервное. Это не репликация:
// каждое срабатывание фолбэка логируется как алерт, расхождение двух баз
// разбирают руками. Конфликт слота из основного хранилища — окончательный
// ответ, фолбэк для него не выполняется.
type FallbackStore struct {
	primary   ports.BookingStore
	secondary ports.BookingStore
	log       logger.Logger
}

func NewFallbackStore(primary, secondary ports.BookingStore, log logger.Logger) *FallbackStore {
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
		log:       log,
	}
}

func (s *FallbackStore) Create(ctx context.Context, b *domain.Booking) error {
	if s.primary != nil {
		err := s.primary.Create(ctx, b)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrSlotTaken) {
			return err
		}
		s.log.Error("primary store create failed",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	if s.secondary != nil {
		s.logFallback("create", b.ID)
		err := s.secondary.Create(ctx, b)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrSlotTaken) {
			return err
		}
		s.log.Error("secondary store create failed",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
	}

	return domain.ErrNotPersisted
}

func (s *FallbackStore) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if s.primary != nil {
		b, err := s.primary.GetByID(ctx, id)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			s.logFallback("get", id)
		}
		// not found в основном хранилище не финален: запись могла
		// попасть только в резервное
		if s.secondary == nil {
			return nil, err
		}
	}

	if s.secondary != nil {
		return s.secondary.GetByID(ctx, id)
	}

	return nil, domain.ErrStoreUnavailable
}

func (s *FallbackStore) List(ctx context.Context) ([]*domain.Booking, error) {
	return fallbackList(ctx, s, "list", func(ctx context.Context, store ports.BookingStore) ([]*domain.Booking, error) {
		return store.List(ctx)
	})
}

func (s *FallbackStore) ListActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	return fallbackList(ctx, s, "list_by_date", func(ctx context.Context, store ports.BookingStore) ([]*domain.Booking, error) {
		return store.ListActiveByDate(ctx, date)
	})
}

func (s *FallbackStore) OccupiedTimes(ctx context.Context, date string) ([]string, error) {
	return fallbackList(ctx, s, "occupied_times", func(ctx context.Context, store ports.BookingStore) ([]string, error) {
		return store.OccupiedTimes(ctx, date)
	})
}

func (s *FallbackStore) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if s.primary != nil {
		err := s.primary.UpdateStatus(ctx, id, status)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrBookingNotFound) {
			s.log.Error("primary store update failed",
				logger.String("booking_id", id),
				logger.String("error", err.Error()),
			)
		}
		if s.secondary == nil {
			return err
		}
	}

	if s.secondary != nil {
		s.logFallback("update_status", id)
		return s.secondary.UpdateStatus(ctx, id, status)
	}

	return domain.ErrStoreUnavailable
}

func fallbackList[T any](ctx context.Context, s *FallbackStore, op string, call func(context.Context, ports.BookingStore) (T, error)) (T, error) {
	var zero T

	if s.primary != nil {
		res, err := call(ctx, s.primary)
		if err == nil {
			return res, nil
		}
		s.log.Error("primary store read failed",
			logger.String("op", op),
			logger.String("error", err.Error()),
		)
		if s.secondary == nil {
			return zero, err
		}
	}

	if s.secondary != nil {
		s.logFallback(op, "")
		return call(ctx, s.secondary)
	}

	return zero, domain.ErrStoreUnavailable
}

// logFallback фиксирует каждое переключение на резервное хранилище:
// по этим записям строится алерт и ручная сверка данных.
func (s *FallbackStore) logFallback(op, bookingID string) {
	if bookingID != "" {
		s.log.LogAttrs(context.Background(), logger.WarnLevel, "falling back to secondary booking store",
			logger.String("op", op),
			logger.String("booking_id", bookingID),
		)
		return
	}
	s.log.LogAttrs(context.Background(), logger.WarnLevel, "falling back to secondary booking store",
		logger.String("op", op),
	)
}

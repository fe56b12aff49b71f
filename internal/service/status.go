package service

import (
	"context"
	"fmt"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// StatusService — единственная точка смены статуса заявки. Через неё проходят
// все три источника команд: консоль оператора, кнопки оператора и клиента в
// Telegram. Переходы вне графа отклоняются, повтор текущего статуса
// идемпотентен и не порождает повторных уведомлений.
type StatusService struct {
	store    ports.BookingStore
	notifier ports.Notifier
	logger   logger.Logger
}

func NewStatusService(store ports.BookingStore, notifier ports.Notifier, log logger.Logger) *StatusService {
	return &StatusService{
		store:    store,
		notifier: notifier,
		logger:   log,
	}
}

func (s *StatusService) Apply(ctx context.Context, cmd domain.StatusCommand) (*domain.Booking, error) {
	if !cmd.Target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, cmd.Target)
	}

	booking, err := s.store.GetByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status == cmd.Target {
		return booking, nil
	}

	if !domain.CanTransition(booking.Status, cmd.Target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrStatusTransition, booking.Status, cmd.Target)
	}

	if err := s.store.UpdateStatus(ctx, cmd.BookingID, cmd.Target); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	booking.Status = cmd.Target

	s.logger.Info("booking status changed",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(cmd.Target)),
		logger.String("origin", string(cmd.Origin)),
	)

	// статус уже зафиксирован в хранилище; обрыв уведомления его не откатит
	if cmd.Origin == domain.ActorCustomer {
		go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), booking, cmd.Origin)
	}

	return booking, nil
}

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/Konstantinn1179/SERVICE/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SlotService вычисляет свободные часовые слоты на дату: сетка рабочих часов
// минус занятые времена. Слот занят при точном совпадении времени с
// неотменённой заявкой; интервалы не пересекаются, т.к. длительность слота
// равна шагу сетки.
type SlotService struct {
	store     ports.BookingStore
	openHour  int
	closeHour int
	logger    logger.Logger
}

func NewSlotService(store ports.BookingStore, openHour, closeHour int, log logger.Logger) *SlotService {
	return &SlotService{
		store:     store,
		openHour:  openHour,
		closeHour: closeHour,
		logger:    log,
	}
}

// Available возвращает свободные слоты на дату по возрастанию времени.
// verified = false означает деградацию: хранилище недоступно, отдана полная
// статическая сетка без проверки занятости. Запись при этом не блокируется —
// финальную проверку делает уникальный индекс при вставке.
func (s *SlotService) Available(ctx context.Context, date string) (slots []string, verified bool) {
	occupied, err := s.store.OccupiedTimes(ctx, date)
	if err != nil {
		s.logger.Error("slot availability check degraded",
			logger.String("date", date),
			logger.String("error", err.Error()),
		)
		return s.DefaultSlots(), false
	}

	all := s.DefaultSlots()
	slots = make([]string, 0, len(all))
	for _, slot := range all {
		if !slices.Contains(occupied, slot) {
			slots = append(slots, slot)
		}
	}

	return slots, true
}

// IsFree проверяет один конкретный слот перед вставкой. Это оптимистичная
// проверка для быстрого ответа пользователю, а не гарантия.
func (s *SlotService) IsFree(ctx context.Context, date, t string) (bool, error) {
	occupied, err := s.store.OccupiedTimes(ctx, date)
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}

	return !slices.Contains(occupied, t), nil
}

// DefaultSlots — полная сетка рабочих часов.
func (s *SlotService) DefaultSlots() []string {
	slots := make([]string, 0, s.closeHour-s.openHour)
	for hour := s.openHour; hour < s.closeHour; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
	}
	return slots
}

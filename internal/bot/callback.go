package bot

import (
	"errors"
	"strings"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/notification"
)

var ErrUnknownAction = errors.New("unknown callback action")

// ParseCallback разбирает составной идентификатор кнопки вида
// "confirm_<id>", "cancel_<id>", "client_confirm_<id>", "client_cancel_<id>".
// Префикс client_ означает действие клиента, от него зависит направление
// ответного уведомления. Суффикс после последнего подчёркивания — id заявки.
func ParseCallback(data string) (domain.StatusCommand, error) {
	idx := strings.LastIndex(data, "_")
	if idx <= 0 || idx == len(data)-1 {
		return domain.StatusCommand{}, ErrUnknownAction
	}

	action := data[:idx]
	bookingID := data[idx+1:]
	if bookingID == "unknown" {
		return domain.StatusCommand{}, ErrUnknownAction
	}

	cmd := domain.StatusCommand{BookingID: bookingID}
	switch action {
	case notification.CallbackConfirm:
		cmd.Target = domain.BookingStatusConfirmed
		cmd.Origin = domain.ActorOperator
	case notification.CallbackCancel:
		cmd.Target = domain.BookingStatusCancelled
		cmd.Origin = domain.ActorOperator
	case notification.CallbackClientConfirm:
		cmd.Target = domain.BookingStatusConfirmed
		cmd.Origin = domain.ActorCustomer
	case notification.CallbackClientCancel:
		cmd.Target = domain.BookingStatusCancelled
		cmd.Origin = domain.ActorCustomer
	default:
		return domain.StatusCommand{}, ErrUnknownAction
	}

	return cmd, nil
}

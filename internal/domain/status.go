package domain

// ActorRole различает, с чьей стороны пришла команда смены статуса.
// От роли зависит направление ответного уведомления.
type ActorRole string

const (
	ActorOperator ActorRole = "operator"
	ActorCustomer ActorRole = "customer"
)

// StatusCommand — единая команда смены статуса для всех трёх источников:
// консоль оператора, кнопка оператора в Telegram, кнопка клиента в Telegram.
type StatusCommand struct {
	BookingID string
	Target    BookingStatus
	Origin    ActorRole
}

// transitions задаёт граф статусов: pending -> {confirmed, cancelled},
// confirmed -> {cancelled, completed}; cancelled и completed терминальны.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

// CanTransition reports whether a booking may move from one status to another.
// Повтор текущего статуса не является переходом и обрабатывается отдельно.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

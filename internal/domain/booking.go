package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// KnownStatuses перечисляет все допустимые статусы заявки.
var KnownStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking — заявка на запись в сервис. Дата и время не обязательны:
// заявка из чата может прийти без слота, оператор дозаполняет её вручную.
type Booking struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	CarBrand    string        `json:"car_brand"`
	CarModel    string        `json:"car_model"`
	Reason      string        `json:"reason"`
	BookingDate string        `json:"booking_date"` // YYYY-MM-DD
	BookingTime string        `json:"booking_time"` // HH:MM
	Status      BookingStatus `json:"status"`
	ChatID      *int64        `json:"chat_id,omitempty"`
	Platform    string        `json:"platform,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`

	// Persisted = false, когда оба хранилища были недоступны и заявка
	// существует только в уведомлении оператору.
	Persisted bool `json:"-"`
}

// HasSlot reports whether the booking occupies a concrete calendar slot.
func (b *Booking) HasSlot() bool {
	return b.BookingDate != "" && b.BookingTime != ""
}

type CreateBookingInput struct {
	Name        string
	Phone       string
	CarBrand    string
	CarModel    string
	Year        string
	Reason      string
	BookingDate string
	BookingTime string
	ChatID      *int64
	Platform    string
}

package dto

import (
	"fmt"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
)

type SlotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"available_slots"`
	Verified       bool     `json:"verified"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CarBrand    string `json:"car_brand"`
	CarModel    string `json:"car_model"`
	Reason      string `json:"reason"`
	BookingDate string `json:"booking_date,omitempty"`
	BookingTime string `json:"booking_time,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	Persisted   bool   `json:"persisted"`
}

// CalendarEventResponse — элемент календаря оператора.
type CalendarEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	AllDay      bool      `json:"allDay"`
	Status      string    `json:"status"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	CarInfo     string    `json:"carInfo"`
	Reason      string    `json:"reason"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		CarBrand:    b.CarBrand,
		CarModel:    b.CarModel,
		Reason:      b.Reason,
		BookingDate: b.BookingDate,
		BookingTime: b.BookingTime,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		Persisted:   b.Persisted,
	}
}

// ToCalendarEvent разворачивает заявку в событие календаря: слот длится час;
// заявка с одной датой превращается в событие на весь рабочий день; заявка
// без слота привязывается к моменту создания.
func ToCalendarEvent(b *domain.Booking, loc *time.Location, openHour, closeHour int) CalendarEventResponse {
	var (
		start  time.Time
		end    time.Time
		allDay bool
	)

	switch {
	case b.HasSlot():
		start, _ = time.ParseInLocation("2006-01-02 15:04", b.BookingDate+" "+b.BookingTime, loc)
		end = start.Add(time.Hour)
	case b.BookingDate != "":
		day, _ := time.ParseInLocation("2006-01-02", b.BookingDate, loc)
		start = day.Add(time.Duration(openHour) * time.Hour)
		end = day.Add(time.Duration(closeHour) * time.Hour)
		allDay = true
	default:
		start = b.CreatedAt.In(loc)
		end = start.Add(time.Hour)
	}

	return CalendarEventResponse{
		ID:          b.ID,
		Title:       fmt.Sprintf("%s (%s)", b.Name, b.CarBrand),
		Start:       start,
		End:         end,
		AllDay:      allDay,
		Status:      string(b.Status),
		ClientName:  b.Name,
		ClientPhone: b.Phone,
		CarInfo:     fmt.Sprintf("%s %s", b.CarBrand, b.CarModel),
		Reason:      b.Reason,
	}
}

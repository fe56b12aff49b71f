package dto

type CreateBookingRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	CarBrand    string `json:"car_brand"`
	CarModel    string `json:"car_model"`
	Year        string `json:"year"`
	Reason      string `json:"reason"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	ChatID      *int64 `json:"chat_id"`
	Platform    string `json:"platform"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

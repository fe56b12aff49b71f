package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	Available(ctx context.Context, date string) (slots []string, verified bool)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

type StatusSvc interface {
	Apply(ctx context.Context, cmd domain.StatusCommand) (*domain.Booking, error)
}

type Handler struct {
	slotService    SlotSvc
	bookingService BookingSvc
	statusService  StatusSvc
	location       *time.Location
	openHour       int
	closeHour      int
}

func NewHandler(
	slotService SlotSvc,
	bookingService BookingSvc,
	statusService StatusSvc,
	location *time.Location,
	openHour, closeHour int,
) *Handler {
	return &Handler{
		slotService:    slotService,
		bookingService: bookingService,
		statusService:  statusService,
		location:       location,
		openHour:       openHour,
		closeHour:      closeHour,
	}
}

// GetSlots отдаёт свободные слоты на дату. При недоступном хранилище ответ
// содержит полную сетку с verified=false, а не ошибку.
func (h *Handler) GetSlots(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date is required"})
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
		return
	}

	slots, verified := h.slotService.Available(c.Request.Context(), date)

	c.JSON(http.StatusOK, dto.SlotsResponse{
		Date:           date,
		AvailableSlots: slots,
		Verified:       verified,
	})
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		Name:        req.Name,
		Phone:       req.Phone,
		CarBrand:    req.CarBrand,
		CarModel:    req.CarModel,
		Year:        req.Year,
		Reason:      req.Reason,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		ChatID:      req.ChatID,
		Platform:    req.Platform,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CalendarEventResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToCalendarEvent(b, h.location, h.openHour, h.closeHour))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateStatus(c *ginext.Context) {
	id := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.statusService.Apply(c.Request.Context(), domain.StatusCommand{
		BookingID: id,
		Target:    domain.BookingStatus(req.Status),
		Origin:    domain.ActorOperator,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Status:  string(booking.Status),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "К сожалению, это время уже занято. Пожалуйста, выберите другое время.",
		})

	case errors.Is(err, domain.ErrStatusTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

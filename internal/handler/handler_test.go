package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/Konstantinn1179/SERVICE/internal/handler/dto"
	hmocks "github.com/Konstantinn1179/SERVICE/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockBookingSvc, *hmocks.MockStatusSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	statusSvc := hmocks.NewMockStatusSvc(t)

	h := NewHandler(slotSvc, bookingSvc, statusSvc, time.UTC, 9, 18)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.GetSlots)
		api.POST("/bookings", h.CreateBooking)

		admin := api.Group("/admin")
		{
			admin.GET("/bookings", h.ListBookings)
			admin.PUT("/bookings/:id", h.UpdateStatus)
		}
	}

	return slotSvc, bookingSvc, statusSvc, r
}

// --- Slots ---

func TestHandler_GetSlots_Success(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Available(mock.Anything, "2024-06-01").
		Return([]string{"09:00", "11:00"}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2024-06-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, []string{"09:00", "11:00"}, resp.AvailableSlots)
	assert.True(t, resp.Verified)
}

func TestHandler_GetSlots_Degraded(t *testing.T) {
	slotSvc, _, _, r := setupRouter(t)

	slotSvc.EXPECT().Available(mock.Anything, "2024-06-01").
		Return([]string{"09:00", "10:00"}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2024-06-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Verified)
}

func TestHandler_GetSlots_MissingDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSlots_BadDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=01.06.2024", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	booking := &domain.Booking{
		ID:          "b1",
		Name:        "Иван",
		Phone:       "+79991234567",
		CarBrand:    "Toyota",
		CarModel:    "Camry (2015)",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
		Status:      domain.BookingStatusPending,
		CreatedAt:   time.Now(),
		Persisted:   true,
	}

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Name:        "Иван",
		Phone:       "+79991234567",
		CarBrand:    "Toyota",
		CarModel:    "Camry",
		Year:        "2015",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.Persisted)
}

func TestHandler_CreateBooking_MissingPhone(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Иван"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_SlotTaken(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Name:        "Иван",
		Phone:       "+79991234567",
		BookingDate: "2024-06-01",
		BookingTime: "10:00",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "занято")
}

func TestHandler_CreateBooking_ValidationError(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Name:        "Иван",
		Phone:       "+79991234567",
		BookingDate: "bad-date",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin calendar ---

func TestHandler_ListBookings_CalendarMapping(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	created := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	bookings := []*domain.Booking{
		{
			ID: "b1", Name: "Иван", Phone: "+79991234567",
			CarBrand: "Toyota", CarModel: "Camry",
			BookingDate: "2024-06-01", BookingTime: "10:00",
			Status: domain.BookingStatusConfirmed, CreatedAt: created,
		},
		{
			ID: "b2", Name: "Пётр", Phone: "+79990000000",
			BookingDate: "2024-06-02",
			Status:      domain.BookingStatusPending, CreatedAt: created,
		},
	}

	bookingSvc.EXPECT().List(mock.Anything).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CalendarEventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	// заявка со слотом занимает ровно час
	assert.Equal(t, "b1", resp[0].ID)
	assert.False(t, resp[0].AllDay)
	assert.Equal(t, time.Hour, resp[0].End.Sub(resp[0].Start))
	assert.Equal(t, "Toyota Camry", resp[0].CarInfo)

	// заявка без времени растягивается на весь рабочий день
	assert.Equal(t, "b2", resp[1].ID)
	assert.True(t, resp[1].AllDay)
	assert.Equal(t, 9*time.Hour, resp[1].End.Sub(resp[1].Start))
}

func TestHandler_ListBookings_StoreError(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().List(mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Status ---

func TestHandler_UpdateStatus_Success(t *testing.T) {
	_, _, statusSvc, r := setupRouter(t)

	statusSvc.EXPECT().Apply(mock.Anything, domain.StatusCommand{
		BookingID: "b1",
		Target:    domain.BookingStatusConfirmed,
		Origin:    domain.ActorOperator,
	}).Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/b1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_UpdateStatus_NotFound(t *testing.T) {
	_, _, statusSvc, r := setupRouter(t)

	statusSvc.EXPECT().Apply(mock.Anything, mock.Anything).
		Return(nil, domain.ErrBookingNotFound)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/missing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateStatus_ForbiddenTransition(t *testing.T) {
	_, _, statusSvc, r := setupRouter(t)

	statusSvc.EXPECT().Apply(mock.Anything, mock.Anything).
		Return(nil, domain.ErrStatusTransition)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/b1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateStatus_MissingStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/b1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

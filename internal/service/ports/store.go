package ports

import (
	"context"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
)

type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListActiveByDate(ctx context.Context, date string) ([]*domain.Booking, error)
	OccupiedTimes(ctx context.Context, date string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

package ports

import (
	"context"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
)

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, origin domain.ActorRole)
	RemindCustomer(ctx context.Context, b *domain.Booking) error
	SendReminderDigest(ctx context.Context, date string, results []domain.ReminderResult) error
}

package notification

import (
	"encoding/json"
	"testing"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemovedKeyboard_SerializesWithoutRows(t *testing.T) {
	raw, err := json.Marshal(removedKeyboard())

	require.NoError(t, err)
	// именно [], а не [[]]: пустой ряд Telegram не считает снятием клавиатуры
	assert.JSONEq(t, `{"inline_keyboard":[]}`, string(raw))
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status domain.BookingStatus
		origin domain.ActorRole
		want   string
	}{
		{domain.BookingStatusConfirmed, domain.ActorCustomer, "✅ Подтверждено клиентом"},
		{domain.BookingStatusCancelled, domain.ActorCustomer, "❌ Отменено клиентом"},
		{domain.BookingStatusConfirmed, domain.ActorOperator, "✅ Подтверждено (Оператор)"},
		{domain.BookingStatusCancelled, domain.ActorOperator, "❌ Отменено (Оператор)"},
		{domain.BookingStatusCompleted, domain.ActorOperator, "🏁 Выполнено"},
		{domain.BookingStatusPending, domain.ActorOperator, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusLabel(tt.status, tt.origin))
		})
	}
}

package bot

import (
	"testing"

	"github.com/Konstantinn1179/SERVICE/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		data   string
		target domain.BookingStatus
		origin domain.ActorRole
		id     string
	}{
		{"confirm_b1", domain.BookingStatusConfirmed, domain.ActorOperator, "b1"},
		{"cancel_b1", domain.BookingStatusCancelled, domain.ActorOperator, "b1"},
		{"client_confirm_b1", domain.BookingStatusConfirmed, domain.ActorCustomer, "b1"},
		{"client_cancel_b1", domain.BookingStatusCancelled, domain.ActorCustomer, "b1"},
		{
			"confirm_no-db-550e8400-e29b-41d4-a716-446655440000",
			domain.BookingStatusConfirmed, domain.ActorOperator,
			"no-db-550e8400-e29b-41d4-a716-446655440000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			cmd, err := ParseCallback(tt.data)

			require.NoError(t, err)
			assert.Equal(t, tt.id, cmd.BookingID)
			assert.Equal(t, tt.target, cmd.Target)
			assert.Equal(t, tt.origin, cmd.Origin)
		})
	}
}

func TestParseCallback_Invalid(t *testing.T) {
	tests := []string{
		"",
		"nonsense",
		"confirm_",
		"_b1",
		"approve_b1",
		"confirm_unknown",
	}

	for _, data := range tests {
		t.Run("data="+data, func(t *testing.T) {
			_, err := ParseCallback(data)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownAction)
		})
	}
}

package models_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Граница: контракт, который заканчивается сегодня, ещё действует
func TestContract_IsValid(t *testing.T) {
	today := sm.NewDate(2025, 6, 15)

	cases := []struct {
		name string
		end  sm.Date
		want bool
	}{
		{"в прошлом", sm.NewDate(2025, 6, 14), false},
		{"сегодня", today, true},
		{"в будущем", sm.NewDate(2026, 1, 1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := models.Contract{StartDate: sm.NewDate(2024, 1, 1), EndDate: tc.end}
			require.Equal(t, tc.want, c.IsValid(today))
		})
	}
}

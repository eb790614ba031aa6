package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// Вид ошибки находится через errors.Is даже после оборачивания
func TestDomainError_KindIsMatchable(t *testing.T) {
	err := fmt.Errorf("wrap: %w", serr.NotFound("User.NotFound", "User 'x' not found"))

	require.ErrorIs(t, err, serr.ErrNotFound)
	require.NotErrorIs(t, err, serr.ErrConflict)

	de, ok := serr.As(err)
	require.True(t, ok)
	require.Equal(t, "User.NotFound", de.Code)
	require.Equal(t, "User 'x' not found", de.Message)
}

// Причина внутренней ошибки тоже доступна
func TestDomainError_InternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := serr.Internal("Passport.Create", "Something went wrong when saving the data", cause)

	require.ErrorIs(t, err, serr.ErrInternal)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "connection reset")
}

// Ошибка валидации несёт поля
func TestDomainError_ValidationFields(t *testing.T) {
	err := serr.Validation("User.Validation", "Validation errors occurred",
		map[string][]string{"Password": {"Password was expected"}})

	require.ErrorIs(t, err, serr.ErrInvalidInput)
	require.Equal(t, []string{"Password was expected"}, err.Fields["Password"])
	require.Equal(t, "User.Validation: Validation errors occurred", err.Error())
}

// Обычная ошибка не является доменной
func TestAs_PlainError(t *testing.T) {
	_, ok := serr.As(errors.New("plain"))
	require.False(t, ok)
}

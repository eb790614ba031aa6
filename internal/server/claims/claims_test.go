package claims_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Пользователь даёт только email
func TestFromUser(t *testing.T) {
	got := claims.FromUser(models.User{Email: "a@b.com"})

	require.Equal(t, []models.Claim{{Type: claims.TypeEmail, Value: "a@b.com"}}, got)
}

// Паспорт даёт имя, фамилию и дату рождения в ISO формате
func TestFromPassport(t *testing.T) {
	p := models.Passport{
		Firstname: "Ivan",
		Lastname:  "Ivanov",
		BirthDate: sm.NewDate(2000, 1, 1),
	}

	require.Equal(t, []models.Claim{
		{Type: claims.TypeGivenName, Value: "Ivan"},
		{Type: claims.TypeFamilyName, Value: "Ivanov"},
		{Type: claims.TypeBirthdate, Value: "2000-01-01"},
	}, claims.FromPassport(p))
}

// Пустое хранилище: всё добавляется
func TestReconcile_AllNew(t *testing.T) {
	target := []models.Claim{{Type: "given_name", Value: "Ivan"}, {Type: "birthdate", Value: "2000-01-01"}}

	plan := claims.Reconcile(nil, target)

	require.Equal(t, target, plan.Add)
	require.Empty(t, plan.Replace)
}

// Тот же тип заменяется, а не дублируется
func TestReconcile_ReplaceByType(t *testing.T) {
	current := []models.Claim{
		{Type: "email", Value: "a@b.com"},
		{Type: "birthdate", Value: "2000-01-01"},
	}
	target := []models.Claim{
		{Type: "given_name", Value: "Ivan"},
		{Type: "birthdate", Value: "2001-02-03"},
	}

	plan := claims.Reconcile(current, target)

	require.Equal(t, []models.Claim{{Type: "given_name", Value: "Ivan"}}, plan.Add)
	require.Equal(t, []claims.Replacement{{
		Old: models.Claim{Type: "birthdate", Value: "2000-01-01"},
		New: models.Claim{Type: "birthdate", Value: "2001-02-03"},
	}}, plan.Replace)
}

// Типы вне проекции не удаляются, одинаковые значения не переписываются
func TestReconcile_KeepsOtherTypes(t *testing.T) {
	current := []models.Claim{
		{Type: "email", Value: "a@b.com"},
		{Type: "given_name", Value: "Ivan"},
	}

	plan := claims.Reconcile(current, []models.Claim{{Type: "given_name", Value: "Ivan"}})

	require.True(t, plan.Empty())
}

// Из двух claims одного типа сверяется только первый
func TestReconcile_DuplicateTypeFirstOnly(t *testing.T) {
	current := []models.Claim{
		{Type: "birthdate", Value: "2000-01-01"},
		{Type: "birthdate", Value: "1990-05-05"},
	}

	plan := claims.Reconcile(current, []models.Claim{{Type: "birthdate", Value: "1985-03-03"}})

	require.Empty(t, plan.Add)
	require.Equal(t, []claims.Replacement{{
		Old: models.Claim{Type: "birthdate", Value: "2000-01-01"},
		New: models.Claim{Type: "birthdate", Value: "1985-03-03"},
	}}, plan.Replace)
}

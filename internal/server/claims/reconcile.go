package claims

import (
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
)

// Replacement — замена claim того же типа.
type Replacement struct {
	Old models.Claim
	New models.Claim
}

// Plan — что нужно записать в хранилище, чтобы оно содержало target.
type Plan struct {
	Add     []models.Claim
	Replace []Replacement
}

// Empty — писать нечего.
func (p Plan) Empty() bool {
	return len(p.Add) == 0 && len(p.Replace) == 0
}

// Reconcile сверяет текущие claims пользователя с целевой проекцией.
//
// Для каждого claim из target: если claim того же типа уже есть — он заменяется
// (первый найденный), иначе добавляется. Совпадающее значение не переписывается.
// Типы, которых нет в target, не трогаются и не удаляются.
// Если в хранилище несколько claims одного типа (паспорт удалили и создали новый),
// сверяется только первый, остальные остаются со старыми значениями.
func Reconcile(current, target []models.Claim) Plan {
	byType := make(map[string]models.Claim, len(current))
	for _, c := range current {
		if _, ok := byType[c.Type]; !ok {
			byType[c.Type] = c
		}
	}

	var plan Plan
	for _, want := range target {
		have, ok := byType[want.Type]
		switch {
		case !ok:
			plan.Add = append(plan.Add, want)
		case have.Value != want.Value:
			plan.Replace = append(plan.Replace, Replacement{Old: have, New: want})
		}
		byType[want.Type] = want
	}
	return plan
}

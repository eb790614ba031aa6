package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Тексты внутренних ошибок.
const (
	msgSave           = "Something went wrong when saving the data"
	msgSaveClaims     = "Something went wrong when saving user claims"
	msgRemove         = "Something went wrong when removing the data"
	msgAssignRole     = "Something went wrong when assigning the role"
	msgChangePassword = "Something went wrong when changing the password"
	msgRead           = "Something went wrong when reading the data"
)

// Исходы операций для метрик.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeValidation = "validation"
	OutcomeInternal   = "internal"
)

// Metrics — то, что сервисы сообщают наружу (реализация в пакете metrics).
type Metrics interface {
	ObserveOperation(entity, op, outcome string, start time.Time)
	IncClaimsSyncFailure(entity, op string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string, string, time.Time) {}
func (nopMetrics) IncClaimsSyncFailure(string, string)                {}

// Option настраивает общие зависимости сервисов.
type Option func(*engine)

// WithLogger задаёт логгер (по умолчанию zap.NewNop).
func WithLogger(l *logger.Logger) Option {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithMetrics задаёт приёмник метрик.
func WithMetrics(m Metrics) Option {
	return func(e *engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithClock задаёт источник текущего времени (для IsValid контрактов).
func WithClock(now func() time.Time) Option {
	return func(e *engine) {
		if now != nil {
			e.now = now
		}
	}
}

// engine — общее для сервисов, которые пишут сущности и claims.
type engine struct {
	log     *logger.Logger
	metrics Metrics
	now     func() time.Time
}

func newEngine(opts []Option) engine {
	e := engine{
		log:     &logger.Logger{Logger: zap.NewNop()},
		metrics: nopMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// today — текущая календарная дата в UTC.
func (e *engine) today() sm.Date {
	return sm.DateOf(e.now().UTC())
}

// observe пишет длительность и исход операции; вызывается через defer.
func (e *engine) observe(entity, op string, start time.Time, err *error) {
	e.metrics.ObserveOperation(entity, op, Outcome(*err), start)
}

// claimsFailed — сущность записана, claims нет. Хранилища расходятся до следующего обновления.
func (e *engine) claimsFailed(entity, op string, userID uuid.UUID, err error) {
	e.metrics.IncClaimsSyncFailure(entity, op)
	e.log.Warn("claims write failed after entity write",
		zap.String("entity", entity),
		zap.String("operation", op),
		zap.String("user_id", userID.String()),
		zap.Error(err),
	)
}

func (e *engine) storageFailed(code string, err error) {
	e.log.Error("storage operation failed", zap.String("code", code), zap.Error(err))
}

// syncClaims приводит claims пользователя к target: тот же тип заменяется, новый добавляется.
func syncClaims(ctx context.Context, repo ClaimsRepo, userID uuid.UUID, target []models.Claim) error {
	current, err := repo.GetClaims(ctx, userID)
	if err != nil {
		return err
	}

	plan := claims.Reconcile(current, target)
	for _, r := range plan.Replace {
		if err := repo.ReplaceClaim(ctx, userID, r.Old, r.New); err != nil {
			return err
		}
	}
	if len(plan.Add) > 0 {
		return repo.AddClaims(ctx, userID, plan.Add)
	}
	return nil
}

// Outcome классифицирует результат операции для метрик.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, serr.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, serr.ErrConflict):
		return OutcomeConflict
	case errors.Is(err, serr.ErrInvalidInput):
		return OutcomeValidation
	default:
		return OutcomeInternal
	}
}

// constraintConflict переводит нарушение ограничения БД в доменную ошибку.
// Возвращает nil, если err не связан с известным ограничением.
func constraintConflict(err error, known map[string]error) error {
	var ce *serr.ConstraintError
	if !errors.As(err, &ce) {
		return nil
	}
	return known[ce.Constraint]
}

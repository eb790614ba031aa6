// Package api реализует HTTP-слой сервера учёта сотрудников автопарка.
//
// Пакет отвечает за:
//   - разбор и валидацию запросов (JSON, query, form);
//   - вызов сервисного слоя и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и тела ответов.
//
// Маршруты регистрирует пакет net/http.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc       *service.Services
	Log       *logger.Logger
	Sanitizer *Sanitizer
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
func NewHandler(svc *service.Services, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		Svc:       svc,
		Log:       log,
		Sanitizer: NewSanitizer(),
	}
}

// WriteJSON пишет v с указанным статусом.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError переводит ошибку сервисного слоя в ответ {"code","message","errors"?}.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	resp := sm.ErrorResponse{Code: "Internal", Message: "internal error"}
	if de, ok := serr.As(err); ok {
		resp = sm.ErrorResponse{Code: de.Code, Message: de.Message, Errors: de.Fields}
	} else if status != http.StatusInternalServerError {
		resp = sm.ErrorResponse{Code: http.StatusText(status), Message: err.Error()}
	}

	if status >= http.StatusInternalServerError {
		h.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("code", resp.Code),
			zap.Error(err),
		)
	}
	WriteJSON(w, status, resp)
}

// StatusOf — HTTP-статус для ошибки по её виду.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, serr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serr.ErrConflict), errors.Is(err, serr.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrBadJSON):
		return http.StatusBadRequest
	case errors.Is(err, serr.ErrUnauthorized), errors.Is(err, serr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, serr.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON читает тело запроса в v; неизвестные поля допускаются.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serr.Validation("BadJSON", serr.ErrBadJSON.Error(), nil)
	}
	return nil
}

// pathID разбирает {id} как uuid. id не в формате uuid — такой же 404, как для отсутствующей записи.
func pathID(r *http.Request, entity string) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serr.NotFound(entity+".NotFound", fmt.Sprintf("%s '%s' not found", entity, raw))
	}
	return id, nil
}

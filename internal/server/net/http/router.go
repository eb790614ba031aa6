// Package http реализует маршрутизацию HTTP-слоя сервера.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - порядок middleware: логирование, метрики, проверка JWT, правила доступа.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/api"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

// Options — всё, что роутеру нужно кроме хендлеров.
type Options struct {
	Verifier *middleware.JWTVerifier
	Authz    middleware.Authorizer
	Log      *logger.Logger
	// Metrics == nil — метрики не собираются и /metrics не регистрируется.
	Metrics      *metrics.Metrics
	MetricsPath  string
	MaxBodyBytes int64
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные /connect/token, /healthz, /swagger/* и (если включены) метрики;
//   - группу /api/v1, защищённую JWT и правилами доступа.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(log))
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}
	// паника в хендлере — 500, который видят лог и метрики
	r.Use(chimw.Recoverer)
	if opts.MaxBodyBytes > 0 {
		r.Use(chimw.RequestSize(opts.MaxBodyBytes))
	}

	// Публичные пути
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", h.Health)
	r.Post("/connect/token", h.Token)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Method(http.MethodGet, path, opts.Metrics.Handler())
	}

	// защищены пути
	r.Route("/api/v1", func(r chi.Router) {
		// проверка access токена
		r.Use(opts.Verifier.AuthMiddleware())
		// роль из токена против правил
		r.Use(middleware.PolicyGuard(opts.Authz, log))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.CreateUser)
			r.Get("/email/{email}", h.GetUserByEmail)
			r.Get("/{id}", h.GetUser)
			r.Put("/{id}", h.UpdateUser)
			r.Delete("/{id}", h.DeleteUser)
		})
		r.Route("/passports", func(r chi.Router) {
			r.Get("/", h.ListPassports)
			r.Post("/", h.CreatePassport)
			r.Get("/{id}", h.GetPassport)
			r.Put("/{id}", h.UpdatePassport)
			r.Delete("/{id}", h.DeletePassport)
		})
		r.Route("/work-books", func(r chi.Router) {
			r.Get("/", h.ListWorkBooks)
			r.Post("/", h.CreateWorkBook)
			r.Get("/{id}", h.GetWorkBook)
			r.Put("/{id}", h.UpdateWorkBook)
			r.Delete("/{id}", h.DeleteWorkBook)
		})
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ListContracts)
			r.Post("/", h.CreateContract)
			r.Get("/{id}", h.GetContract)
			r.Put("/{id}", h.UpdateContract)
			r.Delete("/{id}", h.DeleteContract)
		})
		r.Get("/roles", h.ListRoles)
	})

	return r
}

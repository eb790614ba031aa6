package cli

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/api"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/config"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/middleware"
	h "github.com/IvanChernomyrdin/go-fleet-identity/internal/server/net/http"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/policy"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/seed"
)

// NewServeCmd создаёт команду запуска HTTP(S)-сервера.
//
// Порядок старта: конфиг и логгер, БД (и Redis), миграции и seed (если включены),
// правила доступа, роутер. Остановка по SIGINT/SIGTERM/SIGQUIT с таймаутом
// server.shutdown_timeout.
func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			// создаём контекст и errgroup
			ctx, stop := signal.NotifyContext(
				cmd.Context(),
				os.Interrupt,
				syscall.SIGTERM,
				syscall.SIGQUIT,
			)
			defer stop()

			return serve(ctx, app.ConfigPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	rt, err := bootstrap(ctx, configPath)
	if err != nil {
		return err
	}
	defer rt.Close()
	cfg, log := rt.cfg, rt.log

	if cfg.Migrations.Enabled {
		if err := config.Migrate(ctx, rt.db, config.MigrateUp, log); err != nil {
			return err
		}
	}
	if cfg.Seed.Enabled {
		if err := seed.Run(ctx, rt.svc, log); err != nil {
			return err
		}
	}

	authz, err := loadPolicy(ctx, cfg.Auth.PolicyFile)
	if err != nil {
		return err
	}

	handler := api.NewHandler(rt.svc, log)
	router := h.NewRouter(handler, h.Options{
		Verifier:     middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience),
		Authz:        authz,
		Log:          log,
		Metrics:      rt.metrics,
		MetricsPath:  cfg.Observability.Metrics.Path,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}
	if cfg.TLS.Enabled {
		server.TLSConfig = &tls.Config{MinVersion: tlsVersion(cfg.TLS.MinVersion)}
	}

	g, ctx := errgroup.WithContext(ctx)

	// запускаем сервер
	g.Go(func() error {
		log.Info("server started", zap.String("addr", server.Addr), zap.Bool("tls", cfg.TLS.Enabled))

		var err error
		if cfg.TLS.Enabled {
			err = server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// graceful shutdown с таймаутом из конфига
	g.Go(func() error {
		<-ctx.Done()

		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	// ожидание и единная обработка ошибок
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	log.Info("server gracefully stopped")
	return nil
}

// loadPolicy — правила из файла или встроенные.
func loadPolicy(ctx context.Context, path string) (*policy.Engine, error) {
	if path == "" {
		return policy.New(ctx, "")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	return policy.New(ctx, string(b))
}

func tlsVersion(v string) uint16 {
	if v == "1.3" {
		return tls.VersionTLS13
	}
	return tls.VersionTLS12
}

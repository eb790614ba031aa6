package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/config"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/metrics"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/repository"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
)

// process — открытые ресурсы процесса; закрываются одним Close.
type process struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *sql.DB
	rdb     *redis.Client
	metrics *metrics.Metrics
	svc     *service.Services
}

// loadConfig читает конфиг и поднимает логгер по его секции log.
func loadConfig(path string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		File:    cfg.Log.File,
		Console: cfg.Log.Console,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, log, nil
}

// bootstrap открывает БД и (для claims.store=redis) Redis и собирает сервисы.
func bootstrap(ctx context.Context, path string) (*process, error) {
	cfg, log, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	rt := &process{cfg: cfg, log: log}

	rt.db, err = config.OpenDB(ctx, cfg.DB)
	if err != nil {
		rt.Close()
		return nil, err
	}

	var claimsRepo service.ClaimsRepo = repository.NewClaimsRepository(rt.db)
	if cfg.Claims.Store == config.ClaimsStoreRedis {
		rt.rdb, err = config.OpenRedis(ctx, cfg.Redis)
		if err != nil {
			rt.Close()
			return nil, err
		}
		claimsRepo = repository.NewRedisClaimsStore(rt.rdb, cfg.Redis.KeyPrefix)
	}
	log.Info("claims store selected", zap.String("store", cfg.Claims.Store))

	opts := []service.Option{service.WithLogger(log)}
	if cfg.Observability.Metrics.Enabled {
		rt.metrics = metrics.New()
		opts = append(opts, service.WithMetrics(rt.metrics))
	}

	rt.svc = service.NewServices(service.Repositories{
		Users:     repository.NewUsersRepository(rt.db),
		Roles:     repository.NewRolesRepository(rt.db),
		Passports: repository.NewPassportsRepository(rt.db),
		WorkBooks: repository.NewWorkBooksRepository(rt.db),
		Contracts: repository.NewContractsRepository(rt.db),
		Claims:    claimsRepo,
		Health:    repository.NewHealthRepository(rt.db, rt.rdb),
	}, cfg, opts...)

	return rt, nil
}

func (rt *process) Close() {
	if rt.rdb != nil {
		if err := rt.rdb.Close(); err != nil {
			rt.log.Warn("redis close failed", zap.Error(err))
		}
	}
	if rt.db != nil {
		if err := rt.db.Close(); err != nil {
			rt.log.Warn("db close failed", zap.Error(err))
		}
	}
	_ = rt.log.Sync()
}

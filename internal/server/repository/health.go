package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// HealthRepository проверяет доступность хранилищ для /healthz.
type HealthRepository struct {
	db    *sql.DB
	redis *redis.Client // nil, если claims живут в Postgres
}

func NewHealthRepository(db *sql.DB, rdb *redis.Client) *HealthRepository {
	return &HealthRepository{db: db, redis: rdb}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if r.redis != nil {
		if err := r.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// RedisClaimsStore — claims пользователей в Redis: один hash на пользователя,
// поле — тип claim, значение — значение claim.
//
// В отличие от user_claims, тип здесь уникален: повторный AddClaims того же типа перезаписывает значение.
type RedisClaimsStore struct {
	client *redis.Client
	prefix string
}

func NewRedisClaimsStore(client *redis.Client, prefix string) *RedisClaimsStore {
	return &RedisClaimsStore{client: client, prefix: prefix}
}

func (s *RedisClaimsStore) key(userID uuid.UUID) string {
	return s.prefix + "claims:" + userID.String()
}

// GetClaims — claims, отсортированные по типу.
func (s *RedisClaimsStore) GetClaims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error) {
	m, err := s.client.HGetAll(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get claims: %w", err)
	}

	out := make([]models.Claim, 0, len(m))
	for typ, val := range m {
		out = append(out, models.Claim{Type: typ, Value: val})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (s *RedisClaimsStore) AddClaims(ctx context.Context, userID uuid.UUID, claims []models.Claim) error {
	if len(claims) == 0 {
		return nil
	}

	values := make([]any, 0, len(claims)*2)
	for _, c := range claims {
		values = append(values, c.Type, c.Value)
	}
	if err := s.client.HSet(ctx, s.key(userID), values...).Err(); err != nil {
		return fmt.Errorf("add claims: %w", err)
	}
	return nil
}

// ReplaceClaim заменяет old на updated под WATCH: если между чтением и записью
// hash изменился, транзакция не применяется и возвращается ошибка.
func (s *RedisClaimsStore) ReplaceClaim(ctx context.Context, userID uuid.UUID, old, updated models.Claim) error {
	key := s.key(userID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.HGet(ctx, key, old.Type).Result()
		if errors.Is(err, redis.Nil) || (err == nil && cur != old.Value) {
			return serr.ErrNotFound
		}
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if old.Type != updated.Type {
				pipe.HDel(ctx, key, old.Type)
			}
			pipe.HSet(ctx, key, updated.Type, updated.Value)
			return nil
		})
		return err
	}, key)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, serr.ErrNotFound):
		return serr.ErrNotFound
	default:
		return fmt.Errorf("replace claim: %w", err)
	}
}

// DeleteClaims убирает все claims пользователя. В Postgres это делает каскад
// при удалении пользователя, здесь его нет.
func (s *RedisClaimsStore) DeleteClaims(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("delete claims: %w", err)
	}
	return nil
}

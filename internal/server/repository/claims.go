package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
)

// ClaimsRepository — claims пользователей в таблице user_claims.
//
// Тип claim в таблице не уникален: сверку по типу делает сервисный слой.
type ClaimsRepository struct {
	db *sql.DB
}

func NewClaimsRepository(db *sql.DB) *ClaimsRepository {
	return &ClaimsRepository{db: db}
}

// GetClaims — claims в порядке добавления.
func (r *ClaimsRepository) GetClaims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT claim_type, claim_value FROM user_claims WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, mapError("get claims", err)
	}
	defer rows.Close()

	out := []models.Claim{}
	for rows.Next() {
		var c models.Claim
		if err := rows.Scan(&c.Type, &c.Value); err != nil {
			return nil, mapError("scan claim", err)
		}
		out = append(out, c)
	}
	return out, mapError("get claims", rows.Err())
}

// AddClaims добавляет claims одной транзакцией.
func (r *ClaimsRepository) AddClaims(ctx context.Context, userID uuid.UUID, claims []models.Claim) error {
	if len(claims) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("add claims", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO user_claims (user_id, claim_type, claim_value) VALUES ($1, $2, $3)`)
	if err != nil {
		return mapError("add claims", err)
	}
	defer stmt.Close()

	for _, c := range claims {
		if _, err := stmt.ExecContext(ctx, userID, c.Type, c.Value); err != nil {
			return mapError("add claims", err)
		}
	}
	return mapError("add claims", tx.Commit())
}

// ReplaceClaim заменяет claim old на updated. Если old нет — ErrNotFound.
func (r *ClaimsRepository) ReplaceClaim(ctx context.Context, userID uuid.UUID, old, updated models.Claim) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_claims SET claim_type = $4, claim_value = $5
		 WHERE user_id = $1 AND claim_type = $2 AND claim_value = $3`,
		userID, old.Type, old.Value, updated.Type, updated.Value,
	)
	if err != nil {
		return mapError("replace claim", err)
	}
	return affected("replace claim", res)
}

package repository

import (
	"context"
	"database/sql"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
)

// RolesRepository — справочник ролей. Роли заводятся миграцией.
type RolesRepository struct {
	db *sql.DB
}

func NewRolesRepository(db *sql.DB) *RolesRepository {
	return &RolesRepository{db: db}
}

// Exists — точное сравнение имени.
func (r *RolesRepository) Exists(ctx context.Context, name string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`, name).Scan(&ok)
	return ok, mapError("role exists", err)
}

func (r *RolesRepository) List(ctx context.Context) ([]models.Role, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM roles ORDER BY name`)
	if err != nil {
		return nil, mapError("list roles", err)
	}
	defer rows.Close()

	out := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.Name); err != nil {
			return nil, mapError("scan role", err)
		}
		out = append(out, role)
	}
	return out, mapError("list roles", rows.Err())
}

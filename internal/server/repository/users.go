package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
)

// selectUser — пользователь вместе с ролью и идентификаторами связанных документов.
// При нескольких назначенных ролях берётся первая по имени.
const selectUser = `
	SELECT u.id, u.email, u.password_hash,
		COALESCE((SELECT ur.role_name FROM user_roles ur WHERE ur.user_id = u.id ORDER BY ur.role_name LIMIT 1), '') AS role,
		(SELECT p.id FROM passports p WHERE p.user_id = u.id) AS passport_id,
		(SELECT w.id FROM work_books w WHERE w.user_id = u.id) AS work_book_id,
		COALESCE((SELECT string_agg(c.id::text, ',' ORDER BY c.id) FROM contracts c WHERE c.user_id = u.id), '') AS contract_ids
	FROM users u`

// UsersRepository — пользователи и их роли (PostgreSQL).
type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+` WHERE u.id = $1`, id)
	u, err := scanUser(row)
	return u, mapError("get user", err)
}

// GetByEmail ищет без учёта регистра, как и уникальный индекс.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+` WHERE lower(u.email) = lower($1)`, email)
	u, err := scanUser(row)
	return u, mapError("get user by email", err)
}

// List — страница пользователей по фильтру, порядок по id.
func (r *UsersRepository) List(ctx context.Context, filter models.UserFilter) (pagination.Page[models.User], error) {
	var w where
	if filter.Role != nil {
		w.add(`EXISTS (SELECT 1 FROM user_roles ur WHERE ur.user_id = u.id AND lower(ur.role_name) = lower($%d))`, *filter.Role)
	}
	if filter.BirthdateFrom != nil {
		w.add(`EXISTS (SELECT 1 FROM passports p WHERE p.user_id = u.id AND p.birth_date >= $%d)`, *filter.BirthdateFrom)
	}
	if filter.BirthdateTo != nil {
		w.add(`EXISTS (SELECT 1 FROM passports p WHERE p.user_id = u.id AND p.birth_date <= $%d)`, *filter.BirthdateTo)
	}

	q := pagination.QueryFuncs[models.User]{
		CountFunc: func(ctx context.Context) (int, error) {
			var n int
			err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users u`+w.sql(), w.args...).Scan(&n)
			return n, mapError("count users", err)
		},
		FetchFunc: func(ctx context.Context, offset, limit int) ([]models.User, error) {
			query := fmt.Sprintf(`%s%s ORDER BY u.id LIMIT $%d OFFSET $%d`, selectUser, w.sql(), w.next(), w.next()+1)
			rows, err := r.db.QueryContext(ctx, query, w.with(limit, offset)...)
			if err != nil {
				return nil, mapError("list users", err)
			}
			defer rows.Close()

			out := []models.User{}
			for rows.Next() {
				u, err := scanUser(rows)
				if err != nil {
					return nil, mapError("scan user", err)
				}
				out = append(out, u)
			}
			return out, mapError("list users", rows.Err())
		},
	}
	return pagination.Paginate[models.User](ctx, q, filter.Page, filter.PageSize)
}

// Create вставляет пользователя без роли. Роль назначается отдельно через AssignRole.
func (r *UsersRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1, $2)
		 RETURNING id`,
		user.Email, user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		return models.User{}, mapError("create user", err)
	}
	return user, nil
}

// Update меняет email. Пароль и роль меняются своими методами.
func (r *UsersRepository) Update(ctx context.Context, user models.User) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET email = $2, updated_at = now() WHERE id = $1`,
		user.ID, user.Email,
	)
	if err != nil {
		return mapError("update user", err)
	}
	return affected("update user", res)
}

func (r *UsersRepository) ChangePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return mapError("change password", err)
	}
	return affected("change password", res)
}

// AssignRole снимает все роли пользователя и назначает role в одной транзакции.
func (r *UsersRepository) AssignRole(ctx context.Context, id uuid.UUID, role string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError("assign role", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
		return mapError("assign role", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role_name) VALUES ($1, $2)`,
		id, role,
	); err != nil {
		return mapError("assign role", err)
	}
	return mapError("assign role", tx.Commit())
}

// Delete удаляет пользователя; паспорт, книжку, контракты, роли и claims убирает каскад.
func (r *UsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError("delete user", err)
	}
	return affected("delete user", res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var (
		u           models.User
		passportID  uuid.NullUUID
		workBookID  uuid.NullUUID
		contractIDs string
	)
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &passportID, &workBookID, &contractIDs); err != nil {
		return models.User{}, err
	}
	if passportID.Valid {
		u.PassportID = &passportID.UUID
	}
	if workBookID.Valid {
		u.WorkBookID = &workBookID.UUID
	}

	u.ContractIDs = []uuid.UUID{}
	if contractIDs != "" {
		for _, s := range strings.Split(contractIDs, ",") {
			id, err := uuid.Parse(s)
			if err != nil {
				return models.User{}, fmt.Errorf("contract id %q: %w", s, err)
			}
			u.ContractIDs = append(u.ContractIDs, id)
		}
	}
	return u, nil
}

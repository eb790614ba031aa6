package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
)

// WorkBooksRepository — трудовые книжки (PostgreSQL), одна на пользователя (work_books_user_id_key).
type WorkBooksRepository struct {
	db *sql.DB
}

func NewWorkBooksRepository(db *sql.DB) *WorkBooksRepository {
	return &WorkBooksRepository{db: db}
}

func (r *WorkBooksRepository) GetByID(ctx context.Context, id uuid.UUID) (models.WorkBook, error) {
	var wb models.WorkBook
	err := r.db.QueryRowContext(ctx,
		`SELECT id, number, issue_date, user_id FROM work_books WHERE id = $1`, id,
	).Scan(&wb.ID, &wb.Number, &wb.IssueDate, &wb.UserID)
	if err != nil {
		return models.WorkBook{}, mapError("get work book", err)
	}
	return wb, nil
}

func (r *WorkBooksRepository) ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM work_books WHERE user_id = $1)`, userID).Scan(&ok)
	return ok, mapError("work book exists for user", err)
}

func (r *WorkBooksRepository) List(ctx context.Context, page models.PageRequest) (pagination.Page[models.WorkBook], error) {
	q := pagination.QueryFuncs[models.WorkBook]{
		CountFunc: func(ctx context.Context) (int, error) {
			var n int
			err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM work_books`).Scan(&n)
			return n, mapError("count work books", err)
		},
		FetchFunc: func(ctx context.Context, offset, limit int) ([]models.WorkBook, error) {
			rows, err := r.db.QueryContext(ctx,
				`SELECT id, number, issue_date, user_id FROM work_books ORDER BY id LIMIT $1 OFFSET $2`,
				limit, offset,
			)
			if err != nil {
				return nil, mapError("list work books", err)
			}
			defer rows.Close()

			out := []models.WorkBook{}
			for rows.Next() {
				var wb models.WorkBook
				if err := rows.Scan(&wb.ID, &wb.Number, &wb.IssueDate, &wb.UserID); err != nil {
					return nil, mapError("scan work book", err)
				}
				out = append(out, wb)
			}
			return out, mapError("list work books", rows.Err())
		},
	}
	return pagination.Paginate[models.WorkBook](ctx, q, page.Page, page.PageSize)
}

func (r *WorkBooksRepository) Create(ctx context.Context, wb models.WorkBook) (models.WorkBook, error) {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO work_books (number, issue_date, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		wb.Number, wb.IssueDate, wb.UserID,
	).Scan(&wb.ID)
	if err != nil {
		return models.WorkBook{}, mapError("create work book", err)
	}
	return wb, nil
}

func (r *WorkBooksRepository) Update(ctx context.Context, wb models.WorkBook) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE work_books SET number = $2, issue_date = $3, user_id = $4 WHERE id = $1`,
		wb.ID, wb.Number, wb.IssueDate, wb.UserID,
	)
	if err != nil {
		return mapError("update work book", err)
	}
	return affected("update work book", res)
}

func (r *WorkBooksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_books WHERE id = $1`, id)
	if err != nil {
		return mapError("delete work book", err)
	}
	return affected("delete work book", res)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

const entityWorkBook = "work_book"

// WorkBookService — операции над трудовыми книжками. Claims книжка не несёт.
type WorkBookService struct {
	engine
	workBooks WorkBooksRepo
	verify    *Verifier
}

func NewWorkBookService(workBooks WorkBooksRepo, verify *Verifier, opts ...Option) *WorkBookService {
	return &WorkBookService{
		engine:    newEngine(opts),
		workBooks: workBooks,
		verify:    verify,
	}
}

func (s *WorkBookService) GetAll(ctx context.Context, page models.PageRequest) (pagination.Page[models.WorkBook], error) {
	res, err := s.workBooks.List(ctx, page)
	if err != nil {
		return pagination.Page[models.WorkBook]{}, serr.Internal(codeWorkBookGet, msgRead, err)
	}
	return res, nil
}

func (s *WorkBookService) GetByID(ctx context.Context, id uuid.UUID) (models.WorkBook, error) {
	return s.get(ctx, codeWorkBookGet, id)
}

// Create: владелец существует, у владельца ещё нет книжки, запись.
//
// Проверка и запись не атомарны: два одновременных Create для одного владельца
// могут оба пройти проверку. Уникальный индекс work_books.user_id в Postgres
// отклонит вторую запись, и она вернётся тем же Conflict.
func (s *WorkBookService) Create(ctx context.Context, in models.WorkBook) (_ models.WorkBook, err error) {
	defer s.observe(entityWorkBook, "create", time.Now(), &err)

	if err := s.checkOwner(ctx, codeWorkBookCreate, in.UserID); err != nil {
		return models.WorkBook{}, err
	}
	if err := s.checkNoWorkBookFor(ctx, codeWorkBookCreate, in.UserID); err != nil {
		return models.WorkBook{}, err
	}

	in.ID = uuid.Nil
	created, err := s.workBooks.Create(ctx, in)
	if err != nil {
		return models.WorkBook{}, s.writeError(codeWorkBookCreate, in, err)
	}
	return created, nil
}

// Update: при смене владельца перепроверяются его существование и кардинальность.
func (s *WorkBookService) Update(ctx context.Context, id uuid.UUID, in models.WorkBook) (_ models.WorkBook, err error) {
	defer s.observe(entityWorkBook, "update", time.Now(), &err)

	current, err := s.get(ctx, codeWorkBookUpdate, id)
	if err != nil {
		return models.WorkBook{}, err
	}

	if current.UserID != in.UserID {
		if err := s.checkOwner(ctx, codeWorkBookUpdate, in.UserID); err != nil {
			return models.WorkBook{}, err
		}
		if err := s.checkNoWorkBookFor(ctx, codeWorkBookUpdate, in.UserID); err != nil {
			return models.WorkBook{}, err
		}
	}

	current.Number = in.Number
	current.IssueDate = in.IssueDate
	current.UserID = in.UserID
	if err := s.workBooks.Update(ctx, current); err != nil {
		return models.WorkBook{}, s.writeError(codeWorkBookUpdate, current, err)
	}
	return current, nil
}

func (s *WorkBookService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer s.observe(entityWorkBook, "delete", time.Now(), &err)

	if _, err := s.get(ctx, codeWorkBookDelete, id); err != nil {
		return err
	}
	if err := s.workBooks.Delete(ctx, id); err != nil {
		s.storageFailed(codeWorkBookDelete, err)
		return serr.Internal(codeWorkBookDelete, msgRemove, err)
	}
	return nil
}

func (s *WorkBookService) get(ctx context.Context, code string, id uuid.UUID) (models.WorkBook, error) {
	wb, err := s.workBooks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.WorkBook{}, workBookNotFound(id)
		}
		return models.WorkBook{}, serr.Internal(code, msgRead, err)
	}
	return wb, nil
}

func (s *WorkBookService) checkOwner(ctx context.Context, code string, userID uuid.UUID) error {
	u, err := s.verify.UserByID(ctx, userID)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if u == nil {
		return userNotFound(userID)
	}
	return nil
}

func (s *WorkBookService) checkNoWorkBookFor(ctx context.Context, code string, userID uuid.UUID) error {
	exists, err := s.verify.WorkBookForUserExists(ctx, userID)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if exists {
		return workBookForUserTaken(userID)
	}
	return nil
}

func (s *WorkBookService) writeError(code string, wb models.WorkBook, err error) error {
	if de := constraintConflict(err, map[string]error{
		"work_books_user_id_key":  workBookForUserTaken(wb.UserID),
		"work_books_user_id_fkey": userNotFound(wb.UserID),
	}); de != nil {
		return de
	}
	s.storageFailed(code, err)
	return serr.Internal(code, msgSave, err)
}

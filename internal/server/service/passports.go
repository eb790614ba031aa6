package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/claims"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

const entityPassport = "passport"

// PassportService — операции над паспортами.
//
// Паспорт несёт claims given_name, family_name и birthdate владельца.
// Удаление паспорта claims не чистит: они остаются у пользователя.
type PassportService struct {
	engine
	passports PassportsRepo
	claims    ClaimsRepo
	verify    *Verifier
}

func NewPassportService(passports PassportsRepo, claims ClaimsRepo, verify *Verifier, opts ...Option) *PassportService {
	return &PassportService{
		engine:    newEngine(opts),
		passports: passports,
		claims:    claims,
		verify:    verify,
	}
}

func (s *PassportService) GetAll(ctx context.Context, page models.PageRequest) (pagination.Page[models.Passport], error) {
	res, err := s.passports.List(ctx, page)
	if err != nil {
		return pagination.Page[models.Passport]{}, serr.Internal(codePassportGet, msgRead, err)
	}
	return res, nil
}

func (s *PassportService) GetByID(ctx context.Context, id uuid.UUID) (models.Passport, error) {
	p, err := s.passports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Passport{}, passportNotFound(id)
		}
		return models.Passport{}, serr.Internal(codePassportGet, msgRead, err)
	}
	return p, nil
}

// Create создаёт паспорт.
//
// Порядок проверок фиксирован: идентификационный номер, серия+номер,
// существование владельца, отсутствие у владельца другого паспорта.
func (s *PassportService) Create(ctx context.Context, in models.Passport) (_ models.Passport, err error) {
	defer s.observe(entityPassport, "create", time.Now(), &err)

	if err := s.checkIdentificationNumber(ctx, codePassportCreate, in.IdentificationNumber, uuid.Nil); err != nil {
		return models.Passport{}, err
	}
	if err := s.checkSeriesNumber(ctx, codePassportCreate, in.Series, in.Number, uuid.Nil); err != nil {
		return models.Passport{}, err
	}
	if err := s.checkOwner(ctx, codePassportCreate, in.UserID); err != nil {
		return models.Passport{}, err
	}
	if err := s.checkNoPassportFor(ctx, codePassportCreate, in.UserID); err != nil {
		return models.Passport{}, err
	}

	in.ID = uuid.Nil
	created, err := s.passports.Create(ctx, in)
	if err != nil {
		return models.Passport{}, s.writeError(codePassportCreate, in, err)
	}

	if err := s.claims.AddClaims(ctx, created.UserID, claims.FromPassport(created)); err != nil {
		s.claimsFailed(entityPassport, "create", created.UserID, err)
		return models.Passport{}, serr.Internal(codePassportCreate, msgSaveClaims, err)
	}
	return created, nil
}

// Update обновляет паспорт id.
//
// Уникальность перепроверяется только для изменившихся значений,
// владелец проверяется всегда, кардинальность — только при смене владельца.
func (s *PassportService) Update(ctx context.Context, id uuid.UUID, in models.Passport) (_ models.Passport, err error) {
	defer s.observe(entityPassport, "update", time.Now(), &err)

	current, err := s.passports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Passport{}, passportNotFound(id)
		}
		return models.Passport{}, serr.Internal(codePassportUpdate, msgRead, err)
	}

	if current.IdentificationNumber != in.IdentificationNumber {
		if err := s.checkIdentificationNumber(ctx, codePassportUpdate, in.IdentificationNumber, id); err != nil {
			return models.Passport{}, err
		}
	}
	if current.Series != in.Series || current.Number != in.Number {
		if err := s.checkSeriesNumber(ctx, codePassportUpdate, in.Series, in.Number, id); err != nil {
			return models.Passport{}, err
		}
	}
	if err := s.checkOwner(ctx, codePassportUpdate, in.UserID); err != nil {
		return models.Passport{}, err
	}
	if current.UserID != in.UserID {
		if err := s.checkNoPassportFor(ctx, codePassportUpdate, in.UserID); err != nil {
			return models.Passport{}, err
		}
	}

	applyPassport(&current, in)
	if err := s.passports.Update(ctx, current); err != nil {
		return models.Passport{}, s.writeError(codePassportUpdate, current, err)
	}

	if err := syncClaims(ctx, s.claims, current.UserID, claims.FromPassport(current)); err != nil {
		s.claimsFailed(entityPassport, "update", current.UserID, err)
		return models.Passport{}, serr.Internal(codePassportUpdate, msgSaveClaims, err)
	}
	return current, nil
}

// Delete удаляет паспорт. Claims владельца не удаляются.
func (s *PassportService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer s.observe(entityPassport, "delete", time.Now(), &err)

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.passports.Delete(ctx, id); err != nil {
		s.storageFailed(codePassportDelete, err)
		return serr.Internal(codePassportDelete, msgRemove, err)
	}
	return nil
}

func (s *PassportService) checkIdentificationNumber(ctx context.Context, code, idn string, exclude uuid.UUID) error {
	found, err := s.verify.PassportWithIdentificationNumber(ctx, idn, exclude)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if found != nil {
		return passportIdentificationTaken(idn)
	}
	return nil
}

func (s *PassportService) checkSeriesNumber(ctx context.Context, code, series, number string, exclude uuid.UUID) error {
	found, err := s.verify.PassportWithSeriesNumber(ctx, series, number, exclude)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if found != nil {
		return passportSeriesNumberTaken(series, number)
	}
	return nil
}

func (s *PassportService) checkOwner(ctx context.Context, code string, userID uuid.UUID) error {
	u, err := s.verify.UserByID(ctx, userID)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if u == nil {
		return userNotFound(userID)
	}
	return nil
}

func (s *PassportService) checkNoPassportFor(ctx context.Context, code string, userID uuid.UUID) error {
	exists, err := s.verify.PassportForUserExists(ctx, userID)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if exists {
		return passportForUserTaken(userID)
	}
	return nil
}

// writeError: нарушение уникального индекса при записи — тот же Conflict,
// что вернула бы предварительная проверка; остальное — Internal.
func (s *PassportService) writeError(code string, p models.Passport, err error) error {
	if de := constraintConflict(err, map[string]error{
		"passports_identification_number_key": passportIdentificationTaken(p.IdentificationNumber),
		"passports_series_number_key":         passportSeriesNumberTaken(p.Series, p.Number),
		"passports_user_id_key":               passportForUserTaken(p.UserID),
		"passports_user_id_fkey":              userNotFound(p.UserID),
	}); de != nil {
		return de
	}
	s.storageFailed(code, err)
	return serr.Internal(code, msgSave, err)
}

func applyPassport(dst *models.Passport, src models.Passport) {
	dst.Series = src.Series
	dst.Number = src.Number
	dst.IdentificationNumber = src.IdentificationNumber
	dst.Firstname = src.Firstname
	dst.Lastname = src.Lastname
	dst.Patronymic = src.Patronymic
	dst.BirthDate = src.BirthDate
	dst.IssueDate = src.IssueDate
	dst.ExpiryDate = src.ExpiryDate
	dst.UserID = src.UserID
}

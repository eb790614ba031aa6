package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

const entityContract = "contract"

// ContractView — контракт вместе с признаком IsValid на момент чтения.
type ContractView struct {
	models.Contract
	IsValid bool
}

// ContractService — операции над контрактами. Контрактов у пользователя может быть сколько угодно.
type ContractService struct {
	engine
	contracts ContractsRepo
	verify    *Verifier
}

func NewContractService(contracts ContractsRepo, verify *Verifier, opts ...Option) *ContractService {
	return &ContractService{
		engine:    newEngine(opts),
		contracts: contracts,
		verify:    verify,
	}
}

// GetAll — список по фильтру; IsValid фильтра и ответа считается от сегодняшней даты.
func (s *ContractService) GetAll(ctx context.Context, filter models.ContractFilter) (pagination.Page[ContractView], error) {
	today := s.today()
	filter.Today = today

	res, err := s.contracts.List(ctx, filter)
	if err != nil {
		return pagination.Page[ContractView]{}, serr.Internal(codeContractGet, msgRead, err)
	}
	return pagination.Map(res, func(c models.Contract) ContractView { return view(c, today) }), nil
}

func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (ContractView, error) {
	c, err := s.get(ctx, codeContractGet, id)
	if err != nil {
		return ContractView{}, err
	}
	return view(c, s.today()), nil
}

func (s *ContractService) Create(ctx context.Context, in models.Contract) (_ ContractView, err error) {
	defer s.observe(entityContract, "create", time.Now(), &err)

	if err := s.checkOwner(ctx, codeContractCreate, in.UserID); err != nil {
		return ContractView{}, err
	}

	in.ID = uuid.Nil
	created, err := s.contracts.Create(ctx, in)
	if err != nil {
		return ContractView{}, s.writeError(codeContractCreate, in, err)
	}
	return view(created, s.today()), nil
}

// Update: владелец перепроверяется только если он изменился.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, in models.Contract) (_ ContractView, err error) {
	defer s.observe(entityContract, "update", time.Now(), &err)

	current, err := s.get(ctx, codeContractUpdate, id)
	if err != nil {
		return ContractView{}, err
	}

	if current.UserID != in.UserID {
		if err := s.checkOwner(ctx, codeContractUpdate, in.UserID); err != nil {
			return ContractView{}, err
		}
	}

	current.Number = in.Number
	current.StartDate = in.StartDate
	current.EndDate = in.EndDate
	current.UserID = in.UserID
	if err := s.contracts.Update(ctx, current); err != nil {
		return ContractView{}, s.writeError(codeContractUpdate, current, err)
	}
	return view(current, s.today()), nil
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer s.observe(entityContract, "delete", time.Now(), &err)

	if _, err := s.get(ctx, codeContractDelete, id); err != nil {
		return err
	}
	if err := s.contracts.Delete(ctx, id); err != nil {
		s.storageFailed(codeContractDelete, err)
		return serr.Internal(codeContractDelete, msgRemove, err)
	}
	return nil
}

func (s *ContractService) get(ctx context.Context, code string, id uuid.UUID) (models.Contract, error) {
	c, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.Contract{}, contractNotFound(id)
		}
		return models.Contract{}, serr.Internal(code, msgRead, err)
	}
	return c, nil
}

func (s *ContractService) checkOwner(ctx context.Context, code string, userID uuid.UUID) error {
	u, err := s.verify.UserByID(ctx, userID)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if u == nil {
		return userNotFound(userID)
	}
	return nil
}

func (s *ContractService) writeError(code string, c models.Contract, err error) error {
	if de := constraintConflict(err, map[string]error{
		"contracts_user_id_fkey": userNotFound(c.UserID),
	}); de != nil {
		return de
	}
	s.storageFailed(code, err)
	return serr.Internal(code, msgSave, err)
}

func view(c models.Contract, today sm.Date) ContractView {
	return ContractView{Contract: c, IsValid: c.IsValid(today)}
}

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

const entityUser = "user"

// UserService — операции над пользователями.
//
// Пользователь несёт claim email. Связанные паспорт, книжку и контракты
// при удалении убирает хранилище (каскад), сервис их не трогает.
type UserService struct {
	engine
	users  UsersRepo
	claims ClaimsRepo
	verify *Verifier
	hasher PasswordHasher
}

func NewUserService(users UsersRepo, claims ClaimsRepo, verify *Verifier, hasher PasswordHasher, opts ...Option) *UserService {
	return &UserService{
		engine: newEngine(opts),
		users:  users,
		claims: claims,
		verify: verify,
		hasher: hasher,
	}
}

func (s *UserService) GetAll(ctx context.Context, filter models.UserFilter) (pagination.Page[models.User], error) {
	res, err := s.users.List(ctx, filter)
	if err != nil {
		return pagination.Page[models.User]{}, serr.Internal(codeUserGet, msgRead, err)
	}
	return res, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	u, err := s.verify.UserByID(ctx, id)
	if err != nil {
		return models.User{}, serr.Internal(codeUserGet, msgRead, err)
	}
	if u == nil {
		return models.User{}, userNotFound(id)
	}
	return *u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := s.verify.UserByEmail(ctx, email)
	if err != nil {
		return models.User{}, serr.Internal(codeUserGet, msgRead, err)
	}
	if u == nil {
		return models.User{}, userNotFound(email)
	}
	return *u, nil
}

// Create: роль существует, пароль передан, email свободен; затем запись
// пользователя, назначение роли и claims.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (_ models.User, err error) {
	defer s.observe(entityUser, "create", time.Now(), &err)

	if err := s.checkRole(ctx, codeUserCreate, in.Role); err != nil {
		return models.User{}, err
	}
	if in.Password == nil {
		return models.User{}, passwordRequired()
	}
	if err := s.checkEmail(ctx, codeUserCreate, in.Email, uuid.Nil); err != nil {
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(*in.Password)
	if err != nil {
		return models.User{}, serr.Internal(codeUserCreate, msgSave, err)
	}
	created, err := s.users.Create(ctx, models.User{Email: in.Email, PasswordHash: hash})
	if err != nil {
		return models.User{}, s.writeError(codeUserCreate, in.Email, err)
	}

	// новая запись может прийти с ролью по умолчанию: AssignRole снимает все роли
	if err := s.users.AssignRole(ctx, created.ID, in.Role); err != nil {
		s.storageFailed(codeUserCreate, err)
		return models.User{}, serr.Internal(codeUserCreate, msgAssignRole, err)
	}
	created.Role = in.Role

	if err := s.claims.AddClaims(ctx, created.ID, claims.FromUser(created)); err != nil {
		s.claimsFailed(entityUser, "create", created.ID, err)
		return models.User{}, serr.Internal(codeUserCreate, msgSaveClaims, err)
	}
	return created, nil
}

// Update: email перепроверяется при изменении, пароль меняется если передан,
// роль проверяется и переназначается только если отличается от текущей.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in models.UserInput) (_ models.User, err error) {
	defer s.observe(entityUser, "update", time.Now(), &err)

	found, err := s.verify.UserByID(ctx, id)
	if err != nil {
		return models.User{}, serr.Internal(codeUserUpdate, msgRead, err)
	}
	if found == nil {
		return models.User{}, userNotFound(id)
	}
	current := *found

	if current.Email != in.Email {
		if err := s.checkEmail(ctx, codeUserUpdate, in.Email, id); err != nil {
			return models.User{}, err
		}
	}

	current.Email = in.Email
	if err := s.users.Update(ctx, current); err != nil {
		return models.User{}, s.writeError(codeUserUpdate, in.Email, err)
	}

	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return models.User{}, serr.Internal(codeUserUpdate, msgChangePassword, err)
		}
		if err := s.users.ChangePassword(ctx, id, hash); err != nil {
			s.storageFailed(codeUserUpdate, err)
			return models.User{}, serr.Internal(codeUserUpdate, msgChangePassword, err)
		}
		current.PasswordHash = hash
	}

	if current.Role != in.Role {
		if err := s.checkRole(ctx, codeUserUpdate, in.Role); err != nil {
			return models.User{}, err
		}
		if err := s.users.AssignRole(ctx, id, in.Role); err != nil {
			s.storageFailed(codeUserUpdate, err)
			return models.User{}, serr.Internal(codeUserUpdate, msgAssignRole, err)
		}
		current.Role = in.Role
	}

	if err := syncClaims(ctx, s.claims, id, claims.FromUser(current)); err != nil {
		s.claimsFailed(entityUser, "update", id, err)
		return models.User{}, serr.Internal(codeUserUpdate, msgSaveClaims, err)
	}
	return current, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) (err error) {
	defer s.observe(entityUser, "delete", time.Now(), &err)

	found, err := s.verify.UserByID(ctx, id)
	if err != nil {
		return serr.Internal(codeUserDelete, msgRead, err)
	}
	if found == nil {
		return userNotFound(id)
	}
	if err := s.users.Delete(ctx, id); err != nil {
		s.storageFailed(codeUserDelete, err)
		return serr.Internal(codeUserDelete, msgRemove, err)
	}

	// пользователь уже удалён: оставшиеся claims никто не прочитает, ошибку только логируем
	if p, ok := s.claims.(ClaimsPurger); ok {
		if err := p.DeleteClaims(ctx, id); err != nil {
			s.claimsFailed(entityUser, "delete", id, err)
		}
	}
	return nil
}

func (s *UserService) checkRole(ctx context.Context, code, role string) error {
	ok, err := s.verify.RoleExists(ctx, role)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if !ok {
		return roleNotFound(role)
	}
	return nil
}

// checkEmail: занятый email — конфликт, если он принадлежит не exclude.
func (s *UserService) checkEmail(ctx context.Context, code, email string, exclude uuid.UUID) error {
	u, err := s.verify.UserByEmail(ctx, email)
	if err != nil {
		return serr.Internal(code, msgRead, err)
	}
	if u != nil && (exclude == uuid.Nil || u.ID != exclude) {
		return emailTaken(email)
	}
	return nil
}

func (s *UserService) writeError(code, email string, err error) error {
	if errors.Is(err, serr.ErrAlreadyExists) {
		return emailTaken(email)
	}
	s.storageFailed(code, err)
	return serr.Internal(code, msgSave, err)
}

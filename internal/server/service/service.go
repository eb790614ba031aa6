// Package service содержит бизнес-логику сервиса учёта сотрудников автопарка.
// Это прослойка между HTTP-обработчиками (api) и хранилищами (repository).
//
// Для Passport, WorkBook, Contract и User операции Create/Update/Delete выполняют
// проверки в фиксированном порядке, затем пишут сущность и после неё claims.
// Проверки и записи не атомарны: между проверкой и записью параллельный запрос
// может успеть занять тот же ключ, а ошибка записи claims после успешной записи
// сущности не откатывает сущность.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/config"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users     UsersRepo
	Roles     RolesRepo
	Passports PassportsRepo
	WorkBooks WorkBooksRepo
	Contracts ContractsRepo
	Claims    ClaimsRepo
	Health    HealthRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Users     *UserService
	Passports *PassportService
	WorkBooks *WorkBookService
	Contracts *ContractService
	Roles     *RoleService
	Auth      *AuthService
	Health    HealthRepo
}

// NewServices собирает все сервисы приложения.
// cfg нужен для параметров хеширования пароля и выпуска токенов.
func NewServices(repos Repositories, cfg *config.Config, opts ...Option) *Services {
	hasher := crypto.NewArgon2Hasher(crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	})
	verifier := NewVerifier(repos.Users, repos.Roles, repos.Passports, repos.WorkBooks)

	return &Services{
		Users:     NewUserService(repos.Users, repos.Claims, verifier, hasher, opts...),
		Passports: NewPassportService(repos.Passports, repos.Claims, verifier, opts...),
		WorkBooks: NewWorkBookService(repos.WorkBooks, verifier, opts...),
		Contracts: NewContractService(repos.Contracts, verifier, opts...),
		Roles:     NewRoleService(repos.Roles),
		Auth: NewAuthService(repos.Users, repos.Claims, hasher, crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		}),
		Health: repos.Health,
	}
}

// HealthRepo — минимально нужное для health-check.
type HealthRepo interface {
	Ping(ctx context.Context) error
}

// UsersRepo — хранилище пользователей.
//
// Get* возвращают serr.ErrNotFound, если записи нет.
// AssignRole снимает все роли пользователя и назначает одну.
type UsersRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context, filter models.UserFilter) (pagination.Page[models.User], error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) error
	ChangePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	AssignRole(ctx context.Context, id uuid.UUID, role string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RolesRepo — справочник ролей.
type RolesRepo interface {
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Role, error)
}

// PassportsRepo — хранилище паспортов.
type PassportsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Passport, error)
	GetByIdentificationNumber(ctx context.Context, idn string) (models.Passport, error)
	GetBySeriesNumber(ctx context.Context, series, number string) (models.Passport, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	List(ctx context.Context, page models.PageRequest) (pagination.Page[models.Passport], error)
	Create(ctx context.Context, p models.Passport) (models.Passport, error)
	Update(ctx context.Context, p models.Passport) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// WorkBooksRepo — хранилище трудовых книжек.
type WorkBooksRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.WorkBook, error)
	ExistsForUser(ctx context.Context, userID uuid.UUID) (bool, error)
	List(ctx context.Context, page models.PageRequest) (pagination.Page[models.WorkBook], error)
	Create(ctx context.Context, wb models.WorkBook) (models.WorkBook, error)
	Update(ctx context.Context, wb models.WorkBook) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContractsRepo — хранилище контрактов.
type ContractsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.Contract, error)
	List(ctx context.Context, filter models.ContractFilter) (pagination.Page[models.Contract], error)
	Create(ctx context.Context, c models.Contract) (models.Contract, error)
	Update(ctx context.Context, c models.Contract) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClaimsRepo — хранилище claims пользователя, из которого читает выдача токенов.
type ClaimsRepo interface {
	GetClaims(ctx context.Context, userID uuid.UUID) ([]models.Claim, error)
	AddClaims(ctx context.Context, userID uuid.UUID, claims []models.Claim) error
	ReplaceClaim(ctx context.Context, userID uuid.UUID, old, updated models.Claim) error
}

// ClaimsPurger — хранилище claims, которое не чистится каскадом вместе с пользователем (Redis).
type ClaimsPurger interface {
	DeleteClaims(ctx context.Context, userID uuid.UUID) error
}

// Package seed заполняет пустую базу данными для разработки: администратор
// и по одному документу каждого вида, через те же сервисы, что и API.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/logger"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/utils"
)

const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "Pass123$"
)

// Run создаёт администратора с документами, если его ещё нет.
// Повторный запуск ничего не меняет.
func Run(ctx context.Context, svc *service.Services, log *logger.Logger) error {
	if log == nil {
		log = logger.NewNop()
	}

	_, err := svc.Users.GetByEmail(ctx, AdminEmail)
	switch {
	case err == nil:
		log.Info("seed skipped, admin already exists", zap.String("email", AdminEmail))
		return nil
	case !errors.Is(err, serr.ErrNotFound):
		return fmt.Errorf("seed: lookup admin: %w", err)
	}

	admin, err := svc.Users.Create(ctx, models.UserInput{
		Email:    AdminEmail,
		Password: utils.Ptr(AdminPassword),
		Role:     models.RoleAdministrator,
	})
	if err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}

	if _, err := svc.WorkBooks.Create(ctx, models.WorkBook{
		Number:    "1234",
		IssueDate: sm.NewDate(2024, 1, 1),
		UserID:    admin.ID,
	}); err != nil {
		return fmt.Errorf("seed: create work book: %w", err)
	}

	if _, err := svc.Passports.Create(ctx, models.Passport{
		Series:               "AB",
		Number:               "1234567",
		IdentificationNumber: "1234567a123PB1",
		Firstname:            "Ivan",
		Lastname:             "Ivanov",
		Patronymic:           utils.Ptr("Ivanovich"),
		BirthDate:            sm.NewDate(2000, 1, 1),
		IssueDate:            sm.NewDate(2024, 1, 1),
		ExpiryDate:           sm.NewDate(2029, 1, 1),
		UserID:               admin.ID,
	}); err != nil {
		return fmt.Errorf("seed: create passport: %w", err)
	}

	if _, err := svc.Contracts.Create(ctx, models.Contract{
		Number:    "1234",
		StartDate: sm.NewDate(2024, 1, 1),
		EndDate:   sm.NewDate(2026, 1, 1),
		UserID:    admin.ID,
	}); err != nil {
		return fmt.Errorf("seed: create contract: %w", err)
	}

	log.Info("seed completed", zap.String("admin_id", admin.ID.String()))
	return nil
}

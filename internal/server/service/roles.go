package service

import (
	"context"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
)

// RoleService — чтение фиксированного справочника ролей.
type RoleService struct {
	roles RolesRepo
}

func NewRoleService(roles RolesRepo) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) GetAll(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, serr.Internal(codeRoleGet, msgRead, err)
	}
	return roles, nil
}

package api

import (
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/pagination"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/service"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

func pagedList[T, R any](p pagination.Page[T], conv func(T) R) sm.PagedList[R] {
	items := make([]R, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, conv(it))
	}
	return sm.PagedList[R]{
		Items:           items,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalCount:      p.TotalCount,
		HasNextPage:     p.HasNextPage(),
		HasPreviousPage: p.HasPreviousPage(),
	}
}

func userResponse(u models.User) sm.UserResponse {
	ids := u.ContractIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return sm.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		WorkBookID:  u.WorkBookID,
		PassportID:  u.PassportID,
		ContractIDs: ids,
	}
}

func passportResponse(p models.Passport) sm.PassportResponse {
	return sm.PassportResponse{
		ID:                   p.ID,
		Series:               p.Series,
		Number:               p.Number,
		IdentificationNumber: p.IdentificationNumber,
		Firstname:            p.Firstname,
		Lastname:             p.Lastname,
		Patronymic:           p.Patronymic,
		BirthDate:            p.BirthDate,
		IssueDate:            p.IssueDate,
		ExpiryDate:           p.ExpiryDate,
		UserID:               p.UserID,
	}
}

func workBookResponse(wb models.WorkBook) sm.WorkBookResponse {
	return sm.WorkBookResponse{
		ID:        wb.ID,
		Number:    wb.Number,
		IssueDate: wb.IssueDate,
		UserID:    wb.UserID,
	}
}

func contractResponse(c service.ContractView) sm.ContractResponse {
	return sm.ContractResponse{
		ID:        c.ID,
		Number:    c.Number,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
		IsValid:   c.IsValid,
		UserID:    c.UserID,
	}
}

func roleResponse(r models.Role) sm.RoleResponse {
	return sm.RoleResponse{Name: r.Name}
}

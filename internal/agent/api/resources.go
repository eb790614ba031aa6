// Методы клиента для пользователей, документов и ролей.
package api

import (
	"context"
	"net/url"
	"strconv"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Page — номер и размер страницы.
type Page struct {
	Number int
	Size   int
}

func (p Page) values() url.Values {
	q := url.Values{}
	q.Set("page_number", strconv.Itoa(p.Number))
	q.Set("page_size", strconv.Itoa(p.Size))
	return q
}

// UserQuery — фильтр списка пользователей.
type UserQuery struct {
	Page
	Role string
}

// ContractQuery — фильтр списка контрактов.
type ContractQuery struct {
	Page
	IsValid *bool
	UserID  string
}

func (c *Client) ListUsers(ctx context.Context, token string, uq UserQuery) (sm.PagedList[sm.UserResponse], error) {
	q := uq.values()
	if uq.Role != "" {
		q.Set("role", uq.Role)
	}
	var resp sm.PagedList[sm.UserResponse]
	err := c.GetJSON(ctx, "/api/v1/users", q, &resp, token)
	return resp, err
}

func (c *Client) GetUser(ctx context.Context, token, id string) (sm.UserResponse, error) {
	var resp sm.UserResponse
	err := c.GetJSON(ctx, "/api/v1/users/"+url.PathEscape(id), nil, &resp, token)
	return resp, err
}

func (c *Client) GetUserByEmail(ctx context.Context, token, email string) (sm.UserResponse, error) {
	var resp sm.UserResponse
	err := c.GetJSON(ctx, "/api/v1/users/email/"+url.PathEscape(email), nil, &resp, token)
	return resp, err
}

func (c *Client) CreateUser(ctx context.Context, token string, req sm.UserRequest) (sm.UserResponse, error) {
	var resp sm.UserResponse
	err := c.PostJSON(ctx, "/api/v1/users", req, &resp, token)
	return resp, err
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	return c.Delete(ctx, "/api/v1/users/"+url.PathEscape(id), token)
}

func (c *Client) ListPassports(ctx context.Context, token string, p Page) (sm.PagedList[sm.PassportResponse], error) {
	var resp sm.PagedList[sm.PassportResponse]
	err := c.GetJSON(ctx, "/api/v1/passports", p.values(), &resp, token)
	return resp, err
}

func (c *Client) GetPassport(ctx context.Context, token, id string) (sm.PassportResponse, error) {
	var resp sm.PassportResponse
	err := c.GetJSON(ctx, "/api/v1/passports/"+url.PathEscape(id), nil, &resp, token)
	return resp, err
}

func (c *Client) ListContracts(ctx context.Context, token string, cq ContractQuery) (sm.PagedList[sm.ContractResponse], error) {
	q := cq.values()
	if cq.IsValid != nil {
		q.Set("is_valid", strconv.FormatBool(*cq.IsValid))
	}
	if cq.UserID != "" {
		q.Set("user_id", cq.UserID)
	}
	var resp sm.PagedList[sm.ContractResponse]
	err := c.GetJSON(ctx, "/api/v1/contracts", q, &resp, token)
	return resp, err
}

func (c *Client) ListRoles(ctx context.Context, token string) ([]sm.RoleResponse, error) {
	var resp []sm.RoleResponse
	err := c.GetJSON(ctx, "/api/v1/roles", nil, &resp, token)
	return resp, err
}

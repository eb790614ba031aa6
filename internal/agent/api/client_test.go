package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/api"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/utils"
)

func newServer(t *testing.T, mux *http.ServeMux) *api.Client {
	t.Helper()
	srv := httptest.NewTLSServer(mux)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL+"/", api.Options{Insecure: true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Token(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "password", r.PostForm.Get("grant_type"))
		require.Equal(t, "admin@example.com", r.PostForm.Get("username"))
		require.Equal(t, "Secret#123", r.PostForm.Get("password"))

		writeJSON(w, http.StatusOK, sm.TokenResponse{AccessToken: "access-1", TokenType: "Bearer", ExpiresIn: 3600})
	})
	c := newServer(t, mux)

	resp, err := c.Token(context.Background(), "admin@example.com", "Secret#123")
	require.NoError(t, err)
	require.Equal(t, "access-1", resp.AccessToken)
	require.EqualValues(t, 3600, resp.ExpiresIn)
}

func TestClient_Token_InvalidGrant(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{Error: "invalid_grant", ErrorDescription: "invalid credentials"})
	})
	c := newServer(t, mux)

	_, err := c.Token(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	require.True(t, api.IsStatus(err, http.StatusBadRequest))
	require.Equal(t, "invalid_grant: invalid credentials", err.Error())
}

func TestClient_ListUsers_QueryAndBearer(t *testing.T) {
	id := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		require.Equal(t, "2", r.URL.Query().Get("page_number"))
		require.Equal(t, "5", r.URL.Query().Get("page_size"))
		require.Equal(t, "Driver", r.URL.Query().Get("role"))

		writeJSON(w, http.StatusOK, sm.PagedList[sm.UserResponse]{
			Items:      []sm.UserResponse{{ID: id, Email: "d@example.com", Role: "Driver", ContractIDs: []uuid.UUID{}}},
			Page:       2,
			PageSize:   5,
			TotalCount: 6,
		})
	})
	c := newServer(t, mux)

	page, err := c.ListUsers(context.Background(), "access-1", api.UserQuery{Page: api.Page{Number: 2, Size: 5}, Role: "Driver"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, id, page.Items[0].ID)
	require.Equal(t, 6, page.TotalCount)
}

func TestClient_CreateUser_ValidationError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req sm.UserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "bad", req.Email)

		writeJSON(w, http.StatusBadRequest, sm.ErrorResponse{
			Code:    "Validation",
			Message: "Validation errors occurred",
			Errors:  map[string][]string{"Email": {"Email has invalid format"}, "Role": {"Role was expected"}},
		})
	})
	c := newServer(t, mux)

	_, err := c.CreateUser(context.Background(), "t", sm.UserRequest{Email: "bad", Password: utils.Ptr("x")})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Validation", apiErr.Code)
	require.Equal(t, "Validation: Validation errors occurred\n  Email: Email has invalid format\n  Role: Role was expected", err.Error())
}

func TestClient_DeleteUser_NoContent(t *testing.T) {
	id := uuid.NewString()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/"+id, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	c := newServer(t, mux)

	require.NoError(t, c.DeleteUser(context.Background(), "t", id))
}

func TestClient_ListContracts_IsValid(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/contracts", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "false", r.URL.Query().Get("is_valid"))
		require.Empty(t, r.URL.Query().Get("user_id"))
		writeJSON(w, http.StatusOK, sm.PagedList[sm.ContractResponse]{Items: []sm.ContractResponse{}, Page: 1, PageSize: 10})
	})
	c := newServer(t, mux)

	page, err := c.ListContracts(context.Background(), "t", api.ContractQuery{Page: api.Page{Number: 1, Size: 10}, IsValid: utils.Ptr(false)})
	require.NoError(t, err)
	require.Empty(t, page.Items)
}

func TestClient_PlainTextError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/roles", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})
	c := newServer(t, mux)

	_, err := c.ListRoles(context.Background(), "t")
	require.True(t, api.IsStatus(err, http.StatusBadGateway))
	require.Equal(t, "upstream down", err.Error())
}

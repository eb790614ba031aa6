package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/config"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

var now = time.Date(2026, 1, 16, 10, 0, 0, 0, time.UTC)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newApp — App с HTTP тестовым сервером и валидным токеном.
func newApp(t *testing.T, mux *http.ServeMux) *cli.App {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &cli.App{
		Settings:  config.Settings{Server: srv.URL, Timeout: 5 * time.Second},
		CredsPath: filepath.Join(t.TempDir(), "credentials.json"),
		Creds:     &config.Credentials{Server: srv.URL, AccessToken: "access-1", ExpiresAt: now.Add(time.Hour)},
		Now:       func() time.Time { return now },
		ReadPassword: func(*cobra.Command, string, bool) (string, error) {
			return "Secret#123", nil
		},
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoginCmd_SavesToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin@example.com", r.PostForm.Get("username"))
		require.Equal(t, "Secret#123", r.PostForm.Get("password"))
		writeJSON(w, http.StatusOK, sm.TokenResponse{AccessToken: "new-token", TokenType: "Bearer", ExpiresIn: 3600})
	})
	app := newApp(t, mux)
	app.Creds = &config.Credentials{}

	out, err := run(t, cli.NewLoginCmd(app), "--email", "admin@example.com")
	require.NoError(t, err)
	require.Contains(t, out, "login ok (token valid until 2026-01-16T11:00:00Z)")

	saved, err := config.Load(app.CredsPath)
	require.NoError(t, err)
	require.Equal(t, "new-token", saved.AccessToken)
	require.Equal(t, app.Settings.Server, saved.Server)
	require.Equal(t, "admin@example.com", saved.Email)
	require.True(t, saved.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestLoginCmd_InvalidGrant(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{Error: "invalid_grant", ErrorDescription: "invalid credentials"})
	})
	app := newApp(t, mux)

	_, err := run(t, cli.NewLoginCmd(app), "--email", "admin@example.com")
	require.EqualError(t, err, "invalid_grant: invalid credentials")
}

func TestUsersList_Table(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		require.Equal(t, "Driver", r.URL.Query().Get("role"))
		writeJSON(w, http.StatusOK, sm.PagedList[sm.UserResponse]{
			Items:      []sm.UserResponse{{ID: id, Email: "d@example.com", Role: "Driver", ContractIDs: []uuid.UUID{uuid.New()}}},
			Page:       1,
			PageSize:   20,
			TotalCount: 1,
		})
	})
	app := newApp(t, mux)

	out, err := run(t, cli.NewUsersCmd(app), "list", "--role", "Driver")
	require.NoError(t, err)
	require.Contains(t, out, "EMAIL")
	require.Contains(t, out, "d@example.com")
	require.Contains(t, out, id.String())
	require.Contains(t, out, "page 1, size 20, total 1")
}

func TestUsersGet_ByEmailJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/email/admin@example.com", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sm.UserResponse{ID: uuid.New(), Email: "admin@example.com", Role: "Administrator", ContractIDs: []uuid.UUID{}})
	})
	app := newApp(t, mux)
	app.Output = "json"

	out, err := run(t, cli.NewUsersCmd(app), "get", "admin@example.com")
	require.NoError(t, err)

	var got sm.UserResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "Administrator", got.Role)
}

func TestUsersCreate(t *testing.T) {
	id := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req sm.UserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "driver@example.com", req.Email)
		require.Equal(t, "Driver", req.Role)
		require.NotNil(t, req.Password)
		require.Equal(t, "Secret#123", *req.Password)
		writeJSON(w, http.StatusCreated, sm.UserResponse{ID: id, Email: req.Email, Role: req.Role})
	})
	app := newApp(t, mux)

	out, err := run(t, cli.NewUsersCmd(app), "create", "--email", "driver@example.com", "--role", "Driver")
	require.NoError(t, err)
	require.Contains(t, out, "user created: "+id.String())
}

func TestUsersDelete_NotFound(t *testing.T) {
	id := uuid.NewString()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/users/"+id, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, sm.ErrorResponse{Code: "User.NotFound", Message: "User '" + id + "' not found"})
	})
	app := newApp(t, mux)

	_, err := run(t, cli.NewUsersCmd(app), "delete", id)
	require.EqualError(t, err, "User.NotFound: User '"+id+"' not found")
}

func TestCommands_RequireLogin(t *testing.T) {
	app := newApp(t, http.NewServeMux())

	t.Run("no token", func(t *testing.T) {
		app.Creds = &config.Credentials{}
		_, err := run(t, cli.NewRolesCmd(app))
		require.ErrorContains(t, err, "run fleetctl login")
	})

	t.Run("expired", func(t *testing.T) {
		app.Creds = &config.Credentials{AccessToken: "t", ExpiresAt: now.Add(-time.Minute)}
		_, err := run(t, cli.NewRolesCmd(app))
		require.ErrorContains(t, err, "token expired")
	})

	t.Run("other server", func(t *testing.T) {
		app.Creds = &config.Credentials{Server: "https://other:8443", AccessToken: "t"}
		_, err := run(t, cli.NewRolesCmd(app))
		require.ErrorContains(t, err, "token was issued by https://other:8443")
	})
}

func TestContractsList_ValidFlag(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/contracts", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("is_valid"))
		writeJSON(w, http.StatusOK, sm.PagedList[sm.ContractResponse]{
			Items:    []sm.ContractResponse{{ID: uuid.New(), Number: "1234", StartDate: sm.NewDate(2024, 1, 1), EndDate: sm.NewDate(2026, 1, 1), IsValid: true}},
			Page:     1,
			PageSize: 20,
		})
	})
	app := newApp(t, mux)

	out, err := run(t, cli.NewContractsCmd(app), "list", "--valid=true")
	require.NoError(t, err)
	require.Contains(t, out, "2026-01-01")
	require.Contains(t, out, "true")

	_, err = run(t, cli.NewContractsCmd(app), "list", "--valid=maybe")
	require.EqualError(t, err, "--valid must be true or false")
}

func TestPassportsGet(t *testing.T) {
	id := uuid.New()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/passports/"+id.String(), func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sm.PassportResponse{ID: id, Series: "AB", Number: "1234567", Firstname: "Ivan", Lastname: "Ivanov"})
	})
	app := newApp(t, mux)

	out, err := run(t, cli.NewPassportsCmd(app), "get", id.String())
	require.NoError(t, err)
	require.Contains(t, out, "Ivanov")
	require.Contains(t, out, "PATRONYMIC")
}

func TestRoles_UnknownOutput(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/roles", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []sm.RoleResponse{{Name: "Administrator"}, {Name: "Driver"}})
	})
	app := newApp(t, mux)

	out, err := run(t, cli.NewRolesCmd(app))
	require.NoError(t, err)
	require.Contains(t, out, "Administrator")

	app.Output = "xml"
	_, err = run(t, cli.NewRolesCmd(app))
	require.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, cli.NewVersionCmd("1.2.3", "2026-01-16"))
	require.NoError(t, err)
	require.Contains(t, out, "version=1.2.3")
	require.Contains(t, out, "build_date=2026-01-16")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := cli.NewRootCmd("dev", "unknown")
	for _, path := range [][]string{
		{"login"}, {"users", "list"}, {"users", "get"}, {"users", "create"}, {"users", "delete"},
		{"passports", "list"}, {"passports", "get"}, {"contracts", "list"}, {"roles"}, {"version"},
	} {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], found.Name())
	}
}

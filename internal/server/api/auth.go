// HTTP-хендлер выдачи токенов
package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	serr "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/errors"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// Token выдаёт access-токен по логину и паролю (OAuth 2.0 password grant).
//
// Ответы:
//   - 200 OK: токен выдан;
//   - 400 Bad Request: unsupported_grant_type, invalid_request или invalid_grant;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Issue access token
// @Description  OAuth 2.0 resource owner password grant. username is the user's email.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        grant_type formData string true "password"
// @Param        username   formData string true "Email"
// @Param        password   formData string true "Password"
// @Success      200 {object} models.TokenResponse
// @Failure      400 {object} models.TokenErrorResponse
// @Router       /connect/token [post]
func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	// токен не кэшируется (RFC 6749, 5.1)
	w.Header().Set("Cache-Control", "no-store")

	if err := r.ParseForm(); err != nil {
		WriteJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{Error: "invalid_request", ErrorDescription: "malformed form body"})
		return
	}
	if gt := r.PostForm.Get("grant_type"); gt != "password" {
		WriteJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{
			Error:            "unsupported_grant_type",
			ErrorDescription: "only grant_type=password is supported",
		})
		return
	}

	tok, err := h.Svc.Auth.Token(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "username and password are required",
			})
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteJSON(w, http.StatusBadRequest, sm.TokenErrorResponse{
				Error:            "invalid_grant",
				ErrorDescription: "the username/password couple is invalid",
			})
		default:
			h.Log.Error("token issue failed", zap.Error(err))
			WriteJSON(w, http.StatusInternalServerError, sm.TokenErrorResponse{Error: "server_error"})
		}
		return
	}

	WriteJSON(w, http.StatusOK, sm.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
	})
}

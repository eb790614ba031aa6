// HTTP-хендлеры пользователей
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page_number    query int    true  "Page number, from 1"
// @Param        page_size      query int    true  "Page size"
// @Param        role           query string false "Role name, case insensitive"
// @Param        birthdate_from query string false "yyyy-MM-dd"
// @Param        birthdate_to   query string false "yyyy-MM-dd"
// @Success      200 {object} models.PagedList[models.UserResponse]
// @Failure      400 {object} models.ErrorResponse
// @Router       /api/v1/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseUserFilter(r.URL.Query())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	page, err := h.Svc.Users.GetAll(r.Context(), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, pagedList(page, userResponse))
}

// GetUser godoc
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} models.UserResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /api/v1/users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "User")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	user, err := h.Svc.Users.GetByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, userResponse(user))
}

// GetUserByEmail godoc
// @Summary      Get user by email
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Email"
// @Success      200 {object} models.UserResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /api/v1/users/email/{email} [get]
func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.Svc.Users.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, userResponse(user))
}

// CreateUser godoc
// @Summary      Create user
// @Description  Password is required on create. The role must exist.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UserRequest true "User"
// @Success      201 {object} models.UserResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse "Role not found"
// @Failure      409 {object} models.ErrorResponse "Email already taken"
// @Router       /api/v1/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req sm.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseUser(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	user, err := h.Svc.Users.Create(r.Context(), in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, userResponse(user))
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Password and role change only when they differ from the stored ones.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string             true "User ID"
// @Param        request body models.UserRequest true "User"
// @Success      200 {object} models.UserResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse
// @Failure      409 {object} models.ErrorResponse
// @Router       /api/v1/users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "User")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	var req sm.UserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseUser(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	user, err := h.Svc.Users.Update(r.Context(), id, in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, userResponse(user))
}

// DeleteUser godoc
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      204
// @Failure      404 {object} models.ErrorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "User")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.Svc.Users.Delete(r.Context(), id); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

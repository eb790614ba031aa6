package api

import (
	"net/http"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// ListRoles godoc
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.RoleResponse
// @Router       /api/v1/roles [get]
func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.Svc.Roles.GetAll(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	out := make([]sm.RoleResponse, 0, len(roles))
	for _, role := range roles {
		out = append(out, roleResponse(role))
	}
	WriteJSON(w, http.StatusOK, out)
}

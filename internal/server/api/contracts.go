// HTTP-хендлеры контрактов
package api

import (
	"net/http"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// @Summary  List contracts
// @Description is_valid=true keeps contracts ending today or later, is_valid=false keeps expired ones.
// @Tags     contracts
// @Security BearerAuth
// @Param    page_number query int    true  "Page number, from 1"
// @Param    page_size   query int    true  "Page size"
// @Param    number      query string false "Number contains, case insensitive"
// @Param    start_date  query string false "Start date on or after, yyyy-MM-dd"
// @Param    end_date    query string false "End date on or before, yyyy-MM-dd"
// @Param    is_valid    query bool   false "Validity today"
// @Param    user_id     query string false "Owner"
// @Success  200 {object} models.PagedList[models.ContractResponse]
// @Failure  400 {object} models.ErrorResponse
// @Router   /api/v1/contracts [get]
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	filter, err := h.parseContractFilter(r.URL.Query())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	res, err := h.Svc.Contracts.GetAll(r.Context(), filter)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, pagedList(res, contractResponse))
}

// @Summary  Get contract
// @Tags     contracts
// @Security BearerAuth
// @Param    id path string true "Contract ID"
// @Success  200 {object} models.ContractResponse
// @Failure  404 {object} models.ErrorResponse
// @Router   /api/v1/contracts/{id} [get]
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Contract")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contracts.GetByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, contractResponse(c))
}

// @Summary  Create contract
// @Tags     contracts
// @Security BearerAuth
// @Param    request body models.ContractRequest true "Contract"
// @Success  201 {object} models.ContractResponse
// @Failure  400 {object} models.ErrorResponse
// @Failure  404 {object} models.ErrorResponse
// @Router   /api/v1/contracts [post]
func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req sm.ContractRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseContract(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contracts.Create(r.Context(), in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, contractResponse(c))
}

// @Summary  Update contract
// @Tags     contracts
// @Security BearerAuth
// @Param    id      path string                 true "Contract ID"
// @Param    request body models.ContractRequest true "Contract"
// @Success  200 {object} models.ContractResponse
// @Router   /api/v1/contracts/{id} [put]
func (h *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Contract")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	var req sm.ContractRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseContract(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	c, err := h.Svc.Contracts.Update(r.Context(), id, in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, contractResponse(c))
}

// @Summary  Delete contract
// @Tags     contracts
// @Security BearerAuth
// @Param    id path string true "Contract ID"
// @Success  204
// @Router   /api/v1/contracts/{id} [delete]
func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Contract")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.Svc.Contracts.Delete(r.Context(), id); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HTTP-хендлеры паспортов
package api

import (
	"net/http"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// ListPassports godoc
// @Summary      List passports
// @Tags         passports
// @Produce      json
// @Security     BearerAuth
// @Param        page_number query int true "Page number, from 1"
// @Param        page_size   query int true "Page size"
// @Success      200 {object} models.PagedList[models.PassportResponse]
// @Failure      400 {object} models.ErrorResponse
// @Router       /api/v1/passports [get]
func (h *Handler) ListPassports(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r.URL.Query())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	res, err := h.Svc.Passports.GetAll(r.Context(), page)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, pagedList(res, passportResponse))
}

// GetPassport godoc
// @Summary      Get passport
// @Tags         passports
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Passport ID"
// @Success      200 {object} models.PassportResponse
// @Failure      404 {object} models.ErrorResponse
// @Router       /api/v1/passports/{id} [get]
func (h *Handler) GetPassport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Passport")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	p, err := h.Svc.Passports.GetByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, passportResponse(p))
}

// CreatePassport godoc
// @Summary      Create passport
// @Description  Identification number, series+number and owner are unique. Updates the owner's identity claims.
// @Tags         passports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.PassportRequest true "Passport"
// @Success      201 {object} models.PassportResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse "User not found"
// @Failure      409 {object} models.ErrorResponse
// @Router       /api/v1/passports [post]
func (h *Handler) CreatePassport(w http.ResponseWriter, r *http.Request) {
	var req sm.PassportRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parsePassport(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	p, err := h.Svc.Passports.Create(r.Context(), in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, passportResponse(p))
}

// UpdatePassport godoc
// @Summary      Update passport
// @Tags         passports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                 true "Passport ID"
// @Param        request body models.PassportRequest true "Passport"
// @Success      200 {object} models.PassportResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      404 {object} models.ErrorResponse
// @Failure      409 {object} models.ErrorResponse
// @Router       /api/v1/passports/{id} [put]
func (h *Handler) UpdatePassport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Passport")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	var req sm.PassportRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parsePassport(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	p, err := h.Svc.Passports.Update(r.Context(), id, in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, passportResponse(p))
}

// DeletePassport godoc
// @Summary      Delete passport
// @Description  Identity claims of the owner are kept.
// @Tags         passports
// @Security     BearerAuth
// @Param        id path string true "Passport ID"
// @Success      204
// @Failure      404 {object} models.ErrorResponse
// @Router       /api/v1/passports/{id} [delete]
func (h *Handler) DeletePassport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "Passport")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.Svc.Passports.Delete(r.Context(), id); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

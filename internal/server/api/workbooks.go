// HTTP-хендлеры трудовых книжек
package api

import (
	"net/http"

	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// @Summary  List work books
// @Tags     work-books
// @Security BearerAuth
// @Param    page_number query int true "Page number, from 1"
// @Param    page_size   query int true "Page size"
// @Success  200 {object} models.PagedList[models.WorkBookResponse]
// @Router   /api/v1/work-books [get]
func (h *Handler) ListWorkBooks(w http.ResponseWriter, r *http.Request) {
	page, err := h.parsePage(r.URL.Query())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	res, err := h.Svc.WorkBooks.GetAll(r.Context(), page)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, pagedList(res, workBookResponse))
}

// @Summary  Get work book
// @Tags     work-books
// @Security BearerAuth
// @Param    id path string true "WorkBook ID"
// @Success  200 {object} models.WorkBookResponse
// @Failure  404 {object} models.ErrorResponse
// @Router   /api/v1/work-books/{id} [get]
func (h *Handler) GetWorkBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "WorkBook")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	wb, err := h.Svc.WorkBooks.GetByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, workBookResponse(wb))
}

// @Summary  Create work book
// @Tags     work-books
// @Security BearerAuth
// @Param    request body models.WorkBookRequest true "WorkBook"
// @Success  201 {object} models.WorkBookResponse
// @Failure  400 {object} models.ErrorResponse
// @Failure  404 {object} models.ErrorResponse
// @Failure  409 {object} models.ErrorResponse
// @Router   /api/v1/work-books [post]
func (h *Handler) CreateWorkBook(w http.ResponseWriter, r *http.Request) {
	var req sm.WorkBookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseWorkBook(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	wb, err := h.Svc.WorkBooks.Create(r.Context(), in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, workBookResponse(wb))
}

// @Summary  Update work book
// @Tags     work-books
// @Security BearerAuth
// @Param    id      path string                 true "WorkBook ID"
// @Param    request body models.WorkBookRequest true "WorkBook"
// @Success  200 {object} models.WorkBookResponse
// @Router   /api/v1/work-books/{id} [put]
func (h *Handler) UpdateWorkBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "WorkBook")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	var req sm.WorkBookRequest
	if err := decodeJSON(r, &req); err != nil {
		h.WriteError(w, r, err)
		return
	}
	in, err := h.parseWorkBook(req)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}

	wb, err := h.Svc.WorkBooks.Update(r.Context(), id, in)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, workBookResponse(wb))
}

// @Summary  Delete work book
// @Tags     work-books
// @Security BearerAuth
// @Param    id path string true "WorkBook ID"
// @Success  204
// @Router   /api/v1/work-books/{id} [delete]
func (h *Handler) DeleteWorkBook(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "WorkBook")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.Svc.WorkBooks.Delete(r.Context(), id); err != nil {
		h.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

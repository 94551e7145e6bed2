package handlers

import (
	"net/http"

	"shiphub/internal/domain"
	"shiphub/internal/logx"
)

// CompanyHandler serves HTTP endpoints for shipping companies.
type CompanyHandler struct {
	logger logx.Logger
	uc     companyUsecase
}

// NewCompanyHandler wires the company directory into HTTP handlers.
func NewCompanyHandler(logger logx.Logger, uc companyUsecase) *CompanyHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &CompanyHandler{logger: logger, uc: uc}
}

// GetByID handles GET /companies/{id}.
func (h *CompanyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, c)
}

// List handles GET /companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.uc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.Company{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createCompanyBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	id, err := h.uc.Create(r.Context(), body.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/companies/"+id)
	writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
}

// Update handles PATCH /companies/{id}.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body updateCompanyBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	if _, err := h.uc.UpdatePartial(r.Context(), body.toModel(id)); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
}

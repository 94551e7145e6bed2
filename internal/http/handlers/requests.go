package handlers

import (
	"net/http"
	"strings"

	"shiphub/internal/domain"
	"shiphub/internal/logx"
)

// RequestHandler serves the shipping request workflow.
type RequestHandler struct {
	logger logx.Logger
	uc     shippingUsecase
}

// NewRequestHandler wires the shipping workflow into HTTP handlers.
func NewRequestHandler(logger logx.Logger, uc shippingUsecase) *RequestHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RequestHandler{logger: logger, uc: uc}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	req, err := h.uc.Create(r.Context(), body.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/requests/"+req.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, req)
}

// List handles GET /requests?userId=&status=&limit=&offset=.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	q := r.URL.Query()
	list, err := h.uc.List(r.Context(), domain.RequestFilter{
		UserID:        q.Get("userId"),
		RequestStatus: domain.RequestStatus(strings.TrimSpace(q.Get("status"))),
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.ShippingRequest{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	req, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, req)
}

// UpdateStatus handles PUT /requests/status.
func (h *RequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body statusUpdateBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	req, err := h.uc.UpdateStatus(r.Context(), body.RequestID, body.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, successResponse{Success: true, Request: req})
}

// CompanyAction handles POST /company/requests: add-offer or reject-request.
func (h *RequestHandler) CompanyAction(w http.ResponseWriter, r *http.Request) {
	var body companyActionBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}

	var msg string
	switch body.Action {
	case actionAddOffer:
		out, err := h.uc.AddOffer(r.Context(), body.offerInput())
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		msg = "Offer submitted successfully"
		if out.Updated {
			msg = "Offer updated successfully"
		}
	case actionRejectRequest:
		added, err := h.uc.RejectRequest(r.Context(), body.RequestID, body.CompanyID)
		if err != nil {
			writeServiceError(h.logger, w, r, err)
			return
		}
		msg = "Request rejected successfully"
		if !added {
			msg = "Request already rejected"
		}
	}
	writeJSON(h.logger, w, r, http.StatusOK, successResponse{Success: true, Message: msg})
}

// ListForCompany handles GET /companies/{id}/requests.
func (h *RequestHandler) ListForCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
		return
	}
	list, err := h.uc.ListVisible(r.Context(), companyID, limit, offset)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if list == nil {
		list = []domain.ShippingRequest{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// SubmitOffer handles POST /requests/{id}/submit-offer, the requester's
// acceptance of one offer.
func (h *RequestHandler) SubmitOffer(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body submitOfferBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	req, err := h.uc.AcceptOffer(r.Context(), id, body.OfferID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, successResponse{
		Success: true,
		Message: "Offer accepted successfully",
		Request: req,
	})
}

// AssignWarehouses handles PUT /requests/{id}/warehouses.
func (h *RequestHandler) AssignWarehouses(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body warehousesBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	req, err := h.uc.AssignWarehouses(r.Context(), id, body.SourceWarehouseID, body.DestinationWarehouseID)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, successResponse{Success: true, Request: req})
}

// History handles GET /requests/{id}/activity.
func (h *RequestHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	entries, err := h.uc.History(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.ActivityEntry{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, activityResponse{RequestID: id, ActivityHistory: entries})
}

// AppendActivity handles POST /requests/{id}/activity.
func (h *RequestHandler) AppendActivity(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var body activityBody
	if !decodeJSON(h.logger, w, r, &body) {
		return
	}
	req, err := h.uc.AppendActivity(r.Context(), id, body.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, successResponse{Success: true, Request: req})
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	clientdomain "care-app-go/internal/domain/client"
	"github.com/go-chi/chi/v5"
)

type createClientRequest struct {
	ProgramID string  `json:"programId" validate:"required,notblank"`
	FullName  string  `json:"fullName" validate:"required,notblank"`
	Email     *string `json:"email" validate:"omitnil,omitempty,email"`
	Phone     *string `json:"phone"`
}

type updateClientRequest struct {
	FullName  *string `json:"fullName" validate:"omitnil,notblank"`
	Email     *string `json:"email" validate:"omitnil,omitempty,email"`
	Phone     *string `json:"phone"`
	ProgramID *string `json:"programId" validate:"omitnil,notblank"`
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.Clients.Create(r.Context(), clientdomain.CreateInput{
		ProgramID: req.ProgramID,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientdomain.ErrProgramReference):
			h.log.BusinessError("clients.create: referenced program missing", err, "program_id", req.ProgramID)
			writeError(w, http.StatusUnprocessableEntity, "invalid_reference", "referenced program does not exist")
		case errors.Is(err, clientdomain.ErrFullNameRequired):
			writeFieldError(w, "fullName", "must not be blank")
		case errors.Is(err, clientdomain.ErrProgramRequired):
			writeFieldError(w, "programId", "must not be blank")
		default:
			h.internalError(w, "clients.create: create client failed", err, "program_id", req.ProgramID)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toClientResponse(result))
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(chi.URLParam(r, "client_id"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}

	result, err := h.Clients.Get(r.Context(), clientID)
	if err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			h.log.BusinessError("clients.get: client not found", err, "client_id", clientID)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.internalError(w, "clients.get: get client failed", err, "client_id", clientID)
		return
	}

	writeJSON(w, http.StatusOK, toClientDetailResponse(result))
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := clientdomain.ListFilter{
		ProgramID: strings.TrimSpace(query.Get("programId")),
		FullName:  strings.TrimSpace(query.Get("fullName")),
		Email:     strings.TrimSpace(query.Get("email")),
		Phone:     strings.TrimSpace(query.Get("phone")),
	}

	items, err := h.Clients.List(r.Context(), filter)
	if err != nil {
		h.internalError(w, "clients.list: list clients failed", err)
		return
	}

	response := make([]clientResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toClientResponse(&item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(chi.URLParam(r, "client_id"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}

	var req updateClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.Clients.Update(r.Context(), clientID, clientdomain.Patch{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		ProgramID: req.ProgramID,
	})
	if err != nil {
		switch {
		case errors.Is(err, clientdomain.ErrClientNotFound):
			h.log.BusinessError("clients.update: client not found", err, "client_id", clientID)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
		case errors.Is(err, clientdomain.ErrProgramReference):
			h.log.BusinessError("clients.update: referenced program missing", err, "client_id", clientID)
			writeError(w, http.StatusUnprocessableEntity, "invalid_reference", "referenced program does not exist")
		case errors.Is(err, clientdomain.ErrFullNameRequired):
			writeFieldError(w, "fullName", "must not be blank")
		case errors.Is(err, clientdomain.ErrProgramRequired):
			writeFieldError(w, "programId", "must not be blank")
		default:
			h.internalError(w, "clients.update: update client failed", err, "client_id", clientID)
		}
		return
	}

	writeJSON(w, http.StatusOK, toClientResponse(result))
}

func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(chi.URLParam(r, "client_id"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}

	if err := h.Clients.Delete(r.Context(), clientID); err != nil {
		if errors.Is(err, clientdomain.ErrClientNotFound) {
			h.log.BusinessError("clients.delete: client not found", err, "client_id", clientID)
			writeError(w, http.StatusNotFound, "client_not_found", "client not found")
			return
		}
		h.internalError(w, "clients.delete: delete client failed", err, "client_id", clientID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type clientResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	ProgramID string    `json:"programId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type clientDetailResponse struct {
	clientResponse
	Program clientProgramSummary `json:"program"`
}

type clientProgramSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toClientResponse(model *clientdomain.Client) clientResponse {
	return clientResponse{
		ID:        model.ID,
		FullName:  model.FullName,
		Email:     model.Email,
		Phone:     model.Phone,
		ProgramID: model.ProgramID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toClientDetailResponse(model *clientdomain.Detail) clientDetailResponse {
	return clientDetailResponse{
		clientResponse: toClientResponse(&model.Client),
		Program: clientProgramSummary{
			Name:        model.ProgramName,
			Description: model.ProgramDescription,
		},
	}
}

package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	programdomain "care-app-go/internal/domain/program"
	"github.com/go-chi/chi/v5"
)

type createProgramRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description"`
	Logo        string `json:"logo" validate:"omitempty,url"`
}

// updateProgramRequest fields are pointers so a field absent from the
// payload is distinguishable from a field intentionally set to empty.
type updateProgramRequest struct {
	Name        *string `json:"name" validate:"omitnil,notblank"`
	Description *string `json:"description"`
	Logo        *string `json:"logo" validate:"omitnil,omitempty,url"`
}

func (h *Handlers) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req createProgramRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.Programs.Create(r.Context(), programdomain.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
	})
	if err != nil {
		if errors.Is(err, programdomain.ErrNameRequired) {
			writeFieldError(w, "name", "must not be blank")
			return
		}
		h.internalError(w, "programs.create: create program failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toProgramResponse(result))
}

func (h *Handlers) GetProgram(w http.ResponseWriter, r *http.Request) {
	programID := strings.TrimSpace(chi.URLParam(r, "program_id"))
	if programID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "program_id is required")
		return
	}

	result, err := h.Programs.Get(r.Context(), programID)
	if err != nil {
		if errors.Is(err, programdomain.ErrProgramNotFound) {
			h.log.BusinessError("programs.get: program not found", err, "program_id", programID)
			writeError(w, http.StatusNotFound, "program_not_found", "program not found")
			return
		}
		h.internalError(w, "programs.get: get program failed", err, "program_id", programID)
		return
	}

	writeJSON(w, http.StatusOK, toProgramResponse(result))
}

func (h *Handlers) ListPrograms(w http.ResponseWriter, r *http.Request) {
	items, err := h.Programs.List(r.Context())
	if err != nil {
		h.internalError(w, "programs.list: list programs failed", err)
		return
	}

	response := make([]programResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toProgramResponse(&item))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	programID := strings.TrimSpace(chi.URLParam(r, "program_id"))
	if programID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "program_id is required")
		return
	}

	var req updateProgramRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.Programs.Update(r.Context(), programID, programdomain.Patch{
		Name:        req.Name,
		Description: req.Description,
		Logo:        req.Logo,
	})
	if err != nil {
		switch {
		case errors.Is(err, programdomain.ErrProgramNotFound):
			h.log.BusinessError("programs.update: program not found", err, "program_id", programID)
			writeError(w, http.StatusNotFound, "program_not_found", "program not found")
		case errors.Is(err, programdomain.ErrNameRequired):
			writeFieldError(w, "name", "must not be blank")
		default:
			h.internalError(w, "programs.update: update program failed", err, "program_id", programID)
		}
		return
	}

	writeJSON(w, http.StatusOK, toProgramResponse(result))
}

func (h *Handlers) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	programID := strings.TrimSpace(chi.URLParam(r, "program_id"))
	if programID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "program_id is required")
		return
	}

	if err := h.Programs.Delete(r.Context(), programID); err != nil {
		switch {
		case errors.Is(err, programdomain.ErrProgramNotFound):
			h.log.BusinessError("programs.delete: program not found", err, "program_id", programID)
			writeError(w, http.StatusNotFound, "program_not_found", "program not found")
		case errors.Is(err, programdomain.ErrProgramHasClients):
			h.log.BusinessError("programs.delete: program has enrolled clients", err, "program_id", programID)
			writeError(w, http.StatusConflict, "program_has_clients", "cannot delete a program with enrolled clients")
		default:
			h.internalError(w, "programs.delete: delete program failed", err, "program_id", programID)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type programResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Logo        string    `json:"logo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProgramResponse(model *programdomain.Program) programResponse {
	return programResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Logo:        model.Logo,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

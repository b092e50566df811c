package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	reviewdomain "care-app-go/internal/domain/review"
	"github.com/go-chi/chi/v5"
)

type createReviewRequest struct {
	DoctorReview string `json:"doctorReview" validate:"required,notblank"`
}

func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(chi.URLParam(r, "client_id"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	result, err := h.Reviews.Create(r.Context(), clientID, req.DoctorReview)
	if err != nil {
		switch {
		case errors.Is(err, reviewdomain.ErrClientReference):
			h.log.BusinessError("reviews.create: referenced client missing", err, "client_id", clientID)
			writeError(w, http.StatusUnprocessableEntity, "invalid_reference", "referenced client does not exist")
		case errors.Is(err, reviewdomain.ErrCommentRequired):
			writeFieldError(w, "doctorReview", "must not be blank")
		default:
			h.internalError(w, "reviews.create: create review failed", err, "client_id", clientID)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(result))
}

func (h *Handlers) ListReviews(w http.ResponseWriter, r *http.Request) {
	clientID := strings.TrimSpace(chi.URLParam(r, "client_id"))
	if clientID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "client_id is required")
		return
	}

	items, err := h.Reviews.ListByClient(r.Context(), clientID)
	if err != nil {
		h.internalError(w, "reviews.list: list reviews failed", err, "client_id", clientID)
		return
	}

	response := make([]reviewResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toReviewResponse(&item))
	}
	writeJSON(w, http.StatusOK, response)
}

type reviewResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(model *reviewdomain.Review) reviewResponse {
	return reviewResponse{
		ID:        model.ID,
		ClientID:  model.ClientID,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
	}
}

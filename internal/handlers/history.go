package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/middlewares"
	"github.com/medichat/symptom-predictor/internal/models"
	"github.com/medichat/symptom-predictor/internal/services"
)

// HistoryRecorder defines the interface for saving history entries.
type HistoryRecorder interface {
	Record(ctx context.Context, userID int64, symptoms, prediction string) error
}

// HistoryLister defines the interface for listing history entries.
type HistoryLister interface {
	ListForUser(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error)
}

// SaveHistoryRequest represents the JSON body for saving a history entry
// swagger:model SaveHistoryRequest
type SaveHistoryRequest struct {
	// Symptoms text
	// required: true
	// default: fever, cough
	Symptoms string `json:"symptoms"`

	// Prediction label
	// required: true
	// default: flu
	Prediction string `json:"prediction"`
}

// SaveHistoryResponse represents a successful save response
// swagger:model SaveHistoryResponse
type SaveHistoryResponse struct {
	// Success message
	// default: History saved
	Message string `json:"msg"`
}

// HistoryItem is one entry in the history list response
// swagger:model HistoryItem
type HistoryItem struct {
	// Symptoms text
	Symptoms string `json:"symptoms"`

	// Predicted disease
	Prediction string `json:"prediction"`

	// Entry timestamp, RFC 3339
	Timestamp time.Time `json:"timestamp"`
}

// HistoryErrorResponse represents an error response for history endpoints
// swagger:model HistoryErrorResponse
type HistoryErrorResponse struct {
	// Error message
	// default: Missing data
	Error string `json:"error"`
}

// NewSaveHistoryHandler returns an HTTP handler for saving a history entry.
// @Summary Save a history entry
// @Description Appends an immutable prediction history entry for the authenticated user
// @Tags history
// @Accept json
// @Produce json
// @Param saveHistoryRequest body handlers.SaveHistoryRequest true "History entry"
// @Success 201 {object} handlers.SaveHistoryResponse "Entry saved"
// @Failure 400 {object} handlers.HistoryErrorResponse "Missing data / invalid request"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Router /api/history [post]
// @Security BearerAuth
func NewSaveHistoryHandler(svc HistoryRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SaveHistoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Invalid request body"})
			return
		}

		err := svc.Record(ctx, userID, req.Symptoms, req.Prediction)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyHistoryFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Missing data"})
			default:
				logger.Log.Errorw("failed to save history", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SaveHistoryResponse{Message: "History saved"})
	}
}

// NewListHistoryHandler returns an HTTP handler for listing history entries.
// @Summary List history entries
// @Description Returns the authenticated user's prediction history, newest first
// @Tags history
// @Produce json
// @Success 200 {array} handlers.HistoryItem "History entries"
// @Failure 401 {object} handlers.HistoryErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.HistoryErrorResponse "Internal server error"
// @Router /api/history [get]
// @Security BearerAuth
func NewListHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Unauthorized"})
			return
		}

		entries, err := svc.ListForUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list history", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]HistoryItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, HistoryItem{
				Symptoms:   e.Symptoms,
				Prediction: e.Prediction,
				Timestamp:  e.CreatedAt,
			})
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/middlewares"
	"github.com/medichat/symptom-predictor/internal/models"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserResponse represents the current user info
// swagger:model UserResponse
type UserResponse struct {
	// User ID
	// default: 1
	ID int64 `json:"id"`

	// Username
	// default: john_doe
	Username string `json:"username"`
}

// UserErrorResponse represents an error response for the user endpoint
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler for fetching the current user.
// @Summary Get current user
// @Description Returns the id and username of the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UserResponse "Current user"
// @Failure 401 {object} handlers.UserErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /api/user [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetUser(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			return
		}
		if user == nil {
			// Token subject no longer exists.
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Unauthorized"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			ID:       user.UserID,
			Username: user.Username,
		})
	}
}

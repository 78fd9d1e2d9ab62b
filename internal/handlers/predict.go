package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/middlewares"
	"github.com/medichat/symptom-predictor/internal/models"
	"github.com/medichat/symptom-predictor/internal/services"
)

// DiseasePredicter defines the interface that the prediction service must implement.
type DiseasePredicter interface {
	Predict(ctx context.Context, userID int64, symptoms []string) (*models.PredictionResult, error)
}

// PredictRequest represents the JSON body for a prediction request.
// Symptoms may be a single comma-separated string or an array of strings.
// swagger:model PredictRequest
type PredictRequest struct {
	// Symptoms as a string or array of strings
	// required: true
	// default: fever, cough
	Symptoms json.RawMessage `json:"symptoms"`
}

// PredictResponse represents a successful prediction response
// swagger:model PredictResponse
type PredictResponse struct {
	// Predicted disease label
	// default: flu
	Disease string `json:"disease"`

	// Suggested medicines
	Medicines []string `json:"medicines"`
}

// PredictErrorResponse represents an error response for prediction
// swagger:model PredictErrorResponse
type PredictErrorResponse struct {
	// Error message
	// default: Symptoms must not be empty
	Error string `json:"error"`
}

// symptomTokens accepts both body shapes used by clients: a JSON array of
// symptom names, or a single comma-separated string.
func symptomTokens(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	return nil, errors.New("symptoms must be a string or an array of strings")
}

// NewPredictHandler returns an HTTP handler for symptom-based disease prediction.
// @Summary Predict disease from symptoms
// @Description Encodes the symptom list, runs the pre-trained classifier, and returns the predicted disease with suggested medicines. The prediction is stored in the user's history.
// @Tags prediction
// @Accept json
// @Produce json
// @Param predictRequest body handlers.PredictRequest true "Prediction request"
// @Success 200 {object} handlers.PredictResponse "Prediction result"
// @Failure 400 {object} handlers.PredictErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.PredictErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.PredictErrorResponse "Empty symptoms"
// @Failure 500 {object} handlers.PredictErrorResponse "Internal server error"
// @Router /api/predict [post]
// @Security BearerAuth
func NewPredictHandler(svc DiseasePredicter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		ctx := r.Context()

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PredictErrorResponse{Error: "Unauthorized"})
			return
		}

		var req PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PredictErrorResponse{Error: "Invalid request body"})
			return
		}

		symptoms, err := symptomTokens(req.Symptoms)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PredictErrorResponse{Error: err.Error()})
			return
		}

		result, err := svc.Predict(ctx, userID, symptoms)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptySymptoms):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(PredictErrorResponse{
					Error: "Symptoms must not be empty",
				})
			default:
				logger.Log.Errorw("prediction failed", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PredictErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PredictResponse{
			Disease:   result.Disease,
			Medicines: result.Medicines,
		})
	}
}

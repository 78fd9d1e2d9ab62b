package models

import "time"

// PredictionResult is the outcome of one prediction request.
type PredictionResult struct {
	Disease   string   `json:"disease"`   // Predicted disease label, case preserved
	Medicines []string `json:"medicines"` // Suggested remedies, never empty
}

// PredictionEvent is published to the event stream after each prediction.
type PredictionEvent struct {
	UserID      int64     `json:"user_id"`
	Symptoms    string    `json:"symptoms"`
	Disease     string    `json:"disease"`
	PredictedAt time.Time `json:"predicted_at"`
}

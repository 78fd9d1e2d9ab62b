package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/medichat/symptom-predictor/internal/encoder"
	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/medicine"
	"github.com/medichat/symptom-predictor/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrEmptySymptoms is returned when the symptom input is empty after
	// normalization.
	ErrEmptySymptoms = errors.New("symptoms must not be empty")
)

// SymptomVectorizer encodes normalized symptom tokens into a feature vector.
type SymptomVectorizer interface {
	Encode(normalized []string) []float64
}

// Predicter is the classifier's single-vector inference entry point.
type Predicter interface {
	Predict(vector []float64) (int, error)
}

// LabelDecoder maps classifier class indices back to disease names.
type LabelDecoder interface {
	LabelName(classIndex int) (string, error)
}

// PredictionCacheReader caches disease predictions by symptom key.
type PredictionCacheReader interface {
	Get(ctx context.Context, symptomsKey string) (string, error)
	Set(ctx context.Context, symptomsKey, disease string) error
}

// HistoryWriter persists prediction history entries.
type HistoryWriter interface {
	Save(ctx context.Context, userID int64, symptoms, prediction string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PredictionService runs the encode -> classify -> decode -> medicine
// pipeline, records history, and publishes prediction events.
type PredictionService struct {
	vectorizer    SymptomVectorizer
	predicter     Predicter
	labels        LabelDecoder
	cache         PredictionCacheReader
	historyWriter HistoryWriter
	kafkaWriter   KafkaWriter
}

// NewPredictionService creates a new PredictionService. The cache and
// Kafka writer are optional; nil disables them.
func NewPredictionService(
	vectorizer SymptomVectorizer,
	predicter Predicter,
	labels LabelDecoder,
	cache PredictionCacheReader,
	historyWriter HistoryWriter,
	kafkaWriter KafkaWriter,
) *PredictionService {
	return &PredictionService{
		vectorizer:    vectorizer,
		predicter:     predicter,
		labels:        labels,
		cache:         cache,
		historyWriter: historyWriter,
		kafkaWriter:   kafkaWriter,
	}
}

// Predict maps symptom tokens to a disease label and suggested medicines.
// Each successful prediction is appended to the user's history.
func (s *PredictionService) Predict(ctx context.Context, userID int64, symptoms []string) (*models.PredictionResult, error) {
	normalized := encoder.Normalize(symptoms)
	if len(normalized) == 0 {
		return nil, ErrEmptySymptoms
	}

	key := encoder.CacheKey(normalized)

	var disease string
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			disease = cached
		}
	}

	if disease == "" {
		vector := s.vectorizer.Encode(normalized)

		classIndex, err := s.predicter.Predict(vector)
		if err != nil {
			logger.Log.Errorw("classifier inference failed", "err", err)
			return nil, err
		}

		disease, err = s.labels.LabelName(classIndex)
		if err != nil {
			logger.Log.Errorw("label decoding failed", "classIndex", classIndex, "err", err)
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.Set(ctx, key, disease); err != nil {
				logger.Log.Warnw("failed to cache prediction", "key", key, "err", err)
			}
		}
	}

	medicines := medicine.Lookup(disease)
	symptomsText := strings.Join(normalized, ", ")

	if err := s.historyWriter.Save(ctx, userID, symptomsText, disease); err != nil {
		// History is a convenience record, not part of the prediction
		// contract, so a failed save does not fail the request.
		logger.Log.Warnw("failed to save prediction history", "userID", userID, "err", err)
	}

	s.publishPrediction(ctx, models.PredictionEvent{
		UserID:      userID,
		Symptoms:    symptomsText,
		Disease:     disease,
		PredictedAt: time.Now(),
	})

	return &models.PredictionResult{
		Disease:   disease,
		Medicines: medicines,
	}, nil
}

// publishPrediction publishes a prediction event to Kafka.
func (s *PredictionService) publishPrediction(ctx context.Context, event models.PredictionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", event.UserID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal prediction event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Disease),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish prediction event", "err", err)
	}
}

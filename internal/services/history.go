package services

import (
	"context"
	"errors"
	"strings"

	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/models"
)

var (
	// ErrEmptyHistoryFields is returned when symptoms or prediction are empty.
	ErrEmptyHistoryFields = errors.New("symptoms and prediction are required")
)

// HistoryReader lists stored history entries.
type HistoryReader interface {
	ListByUserID(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error)
}

// HistoryService records and lists per-user prediction history.
type HistoryService struct {
	writer HistoryWriter
	reader HistoryReader
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(writer HistoryWriter, reader HistoryReader) *HistoryService {
	return &HistoryService{
		writer: writer,
		reader: reader,
	}
}

// Record appends an immutable history entry for the user.
func (svc *HistoryService) Record(ctx context.Context, userID int64, symptoms, prediction string) error {
	if strings.TrimSpace(symptoms) == "" || strings.TrimSpace(prediction) == "" {
		return ErrEmptyHistoryFields
	}

	if err := svc.writer.Save(ctx, userID, symptoms, prediction); err != nil {
		logger.Log.Errorw("failed to save history entry", "userID", userID, "err", err)
		return err
	}

	return nil
}

// ListForUser returns the user's history entries, newest first.
func (svc *HistoryService) ListForUser(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error) {
	entries, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list history", "userID", userID, "err", err)
		return nil, err
	}
	return entries, nil
}

package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/medichat/symptom-predictor/internal/logger"
	"github.com/medichat/symptom-predictor/internal/models"
)

type HistoryWriteRepository struct {
	db *sqlx.DB
}

func NewHistoryWriteRepository(db *sqlx.DB) *HistoryWriteRepository {
	return &HistoryWriteRepository{db: db}
}

// Save appends an immutable history entry stamped with the current time.
func (r *HistoryWriteRepository) Save(ctx context.Context, userID int64, symptoms, prediction string) error {
	const query = `
		INSERT INTO history_entries (user_id, symptoms, prediction, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{userID, symptoms, prediction}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("history insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

type HistoryReadRepository struct {
	db *sqlx.DB
}

func NewHistoryReadRepository(db *sqlx.DB) *HistoryReadRepository {
	return &HistoryReadRepository{db: db}
}

// ListByUserID returns all history entries owned by the user, newest first.
func (r *HistoryReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.HistoryEntryDB, error) {
	const query = `
		SELECT entry_id, user_id, symptoms, prediction, created_at
		FROM history_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var entries []models.HistoryEntryDB
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Infow("history query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

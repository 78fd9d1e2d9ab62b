package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestHistoryWriteRepository_Save_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryWriteRepository(db)

	mock.ExpectExec("INSERT INTO history_entries").
		WithArgs(int64(1), "fever, cough", "flu").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), 1, "fever, cough", "flu")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryWriteRepository_Save_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryWriteRepository(db)

	mock.ExpectExec("INSERT INTO history_entries").
		WithArgs(int64(1), "fever", "flu").
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), 1, "fever", "flu")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryReadRepository_ListByUserID_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryReadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"entry_id", "user_id", "symptoms", "prediction", "created_at"}).
		AddRow(int64(2), int64(1), "headache", "migraine", now).
		AddRow(int64(1), int64(1), "fever", "flu", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT entry_id, user_id, symptoms, prediction, created_at").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.ListByUserID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "migraine", entries[0].Prediction)
	assert.Equal(t, "flu", entries[1].Prediction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryReadRepository_ListByUserID_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHistoryReadRepository(db)

	rows := sqlmock.NewRows([]string{"entry_id", "user_id", "symptoms", "prediction", "created_at"})

	mock.ExpectQuery("SELECT entry_id, user_id, symptoms, prediction, created_at").
		WithArgs(int64(99)).
		WillReturnRows(rows)

	entries, err := repo.ListByUserID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package models

import "time"

// HistoryEntryDB represents a stored prediction history record.
// Entries are append-only and never updated after creation.
type HistoryEntryDB struct {
	EntryID    int64     `json:"id" db:"entry_id"`           // Primary key
	UserID     int64     `json:"user_id" db:"user_id"`       // Owning user
	Symptoms   string    `json:"symptoms" db:"symptoms"`     // Raw symptoms text as submitted
	Prediction string    `json:"prediction" db:"prediction"` // Predicted disease label
	CreatedAt  time.Time `json:"timestamp" db:"created_at"`  // Write timestamp
}

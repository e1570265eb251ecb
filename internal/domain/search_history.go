package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SearchHistory struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	Criteria     json.RawMessage `json:"criteria" db:"criteria"`
	ResultsCount int             `json:"results_count" db:"results_count"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

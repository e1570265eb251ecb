package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"propview-backend/internal/domain"
)

type SearchHistoryRepository interface {
	Create(ctx context.Context, h *domain.SearchHistory) error
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

type searchHistoryRepository struct {
	db *sqlx.DB
}

func NewSearchHistoryRepository(db *sqlx.DB) SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

func (r *searchHistoryRepository) Create(ctx context.Context, h *domain.SearchHistory) error {
	query := `
		INSERT INTO search_history (id, user_id, criteria, results_count)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	return r.db.QueryRowxContext(ctx, query,
		h.ID, h.UserID, h.Criteria, h.ResultsCount,
	).Scan(&h.CreatedAt)
}

func (r *searchHistoryRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	history := []domain.SearchHistory{}
	query := `SELECT * FROM search_history WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`
	err := r.db.SelectContext(ctx, &history, query, userID, limit)
	return history, err
}

func (r *searchHistoryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM search_history WHERE user_id = $1`, userID)
	return err
}

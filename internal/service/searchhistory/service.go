package searchhistory

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
)

type Service interface {
	Record(ctx context.Context, userID uuid.UUID, filter domain.PropertySearchFilter, resultsCount int64) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	historyRepo repository.SearchHistoryRepository
}

func NewService(historyRepo repository.SearchHistoryRepository) Service {
	return &service{historyRepo: historyRepo}
}

func (s *service) Record(ctx context.Context, userID uuid.UUID, filter domain.PropertySearchFilter, resultsCount int64) error {
	criteria, err := json.Marshal(filter)
	if err != nil {
		return err
	}

	history := &domain.SearchHistory{
		ID:           uuid.New(),
		UserID:       userID,
		Criteria:     criteria,
		ResultsCount: int(resultsCount),
	}
	return s.historyRepo.Create(ctx, history)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.SearchHistory, error) {
	return s.historyRepo.FindByUser(ctx, userID, limit)
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.historyRepo.DeleteByUser(ctx, userID)
}

package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
	"propview-backend/internal/service/directory"
)

// OwnerStats summarises viewing activity across every property a given
// owner lists.
type OwnerStats struct {
	PendingViewings   int              `json:"pending_viewings"`
	ConfirmedViewings int              `json:"confirmed_viewings"`
	CompletedViewings int              `json:"completed_viewings"`
	Upcoming          []domain.Viewing `json:"upcoming"`
}

type Service interface {
	GetOwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStats, error)
}

type service struct {
	viewingRepo repository.ViewingRepository
	directory   directory.Service
	redis       *redis.Client
}

func NewService(viewingRepo repository.ViewingRepository, dir directory.Service, redis *redis.Client) Service {
	return &service{
		viewingRepo: viewingRepo,
		directory:   dir,
		redis:       redis,
	}
}

const upcomingLimit = 10

func (s *service) GetOwnerStats(ctx context.Context, ownerID uuid.UUID) (*OwnerStats, error) {
	exists, err := s.directory.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("User", ownerID)
	}

	cacheKey := "dashboard:owner:" + ownerID.String()
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats OwnerStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	viewings, err := s.viewingRepo.FindByOwner(ctx, ownerID, nil)
	if err != nil {
		return nil, err
	}

	stats := &OwnerStats{Upcoming: []domain.Viewing{}}
	today := time.Now().Truncate(24 * time.Hour)
	for _, v := range viewings {
		switch v.Status {
		case domain.ViewingPending:
			stats.PendingViewings++
		case domain.ViewingConfirmed:
			stats.ConfirmedViewings++
		case domain.ViewingCompleted:
			stats.CompletedViewings++
		}
		if !v.Status.IsTerminal() && !v.ViewingDate.Before(today) && len(stats.Upcoming) < upcomingLimit {
			stats.Upcoming = append(stats.Upcoming, v)
		}
	}

	if s.redis != nil {
		if statsJSON, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, statsJSON, 5*time.Minute).Err()
		}
	}

	return stats, nil
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"propview-backend/internal/domain"
)

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}

func (m *FavoriteRepository) ExistsByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, propertyID)
	return args.Bool(0), args.Error(1)
}

func (m *FavoriteRepository) GetByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *FavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Favorite, int64, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Favorite), args.Get(1).(int64), args.Error(2)
}

func (m *FavoriteRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FavoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

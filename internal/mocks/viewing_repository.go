package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"propview-backend/internal/domain"
)

type ViewingRepository struct {
	mock.Mock
}

func (m *ViewingRepository) Create(ctx context.Context, v *domain.Viewing, blocking []domain.ViewingStatus) error {
	args := m.Called(ctx, v, blocking)
	return args.Error(0)
}

func (m *ViewingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Viewing), args.Error(1)
}

func (m *ViewingRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error) {
	args := m.Called(ctx, propertyID, status, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Viewing), args.Error(1)
}

func (m *ViewingRepository) FindByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Viewing), args.Error(1)
}

func (m *ViewingRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	args := m.Called(ctx, ownerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Viewing), args.Error(1)
}

func (m *ViewingRepository) FindInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Viewing), args.Error(1)
}

func (m *ViewingRepository) CountByPropertyAndStatus(ctx context.Context, propertyID uuid.UUID, status domain.ViewingStatus) (int64, error) {
	args := m.Called(ctx, propertyID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ViewingRepository) ApplyTransition(ctx context.Context, v *domain.Viewing, from domain.ViewingStatus) (bool, error) {
	args := m.Called(ctx, v, from)
	return args.Bool(0), args.Error(1)
}

func (m *ViewingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

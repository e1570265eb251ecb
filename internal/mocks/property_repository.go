package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"propview-backend/internal/domain"
)

type PropertyRepository struct {
	mock.Mock
}

func (m *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *PropertyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PropertyRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uuid.UUID), args.Bool(1), args.Error(2)
}

func (m *PropertyRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Property, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *PropertyRepository) Search(ctx context.Context, filter domain.PropertySearchFilter, params domain.PaginationParams) ([]domain.Property, int64, error) {
	args := m.Called(ctx, filter, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Property), args.Get(1).(int64), args.Error(2)
}

func (m *PropertyRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePropertyInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PropertyRepository) AddImage(ctx context.Context, img *domain.PropertyImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *PropertyRepository) GetImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PropertyImage), args.Error(1)
}

func (m *PropertyRepository) GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PropertyImage), args.Error(1)
}

func (m *PropertyRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DirectoryService struct {
	mock.Mock
}

func (m *DirectoryService) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *DirectoryService) PropertyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *DirectoryService) PropertyOwner(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, bool, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(uuid.UUID), args.Bool(1), args.Error(2)
}

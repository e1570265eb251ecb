package directory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"propview-backend/internal/mocks"
	"propview-backend/internal/service/directory"
)

func TestDirectoryService_PropertyOwner(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	ownerID := uuid.New()

	t.Run("Resolves owner", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		propertyRepo := new(mocks.PropertyRepository)
		svc := directory.NewService(userRepo, propertyRepo)

		propertyRepo.On("GetOwnerID", ctx, propertyID).Return(ownerID, true, nil).Once()

		got, found, err := svc.PropertyOwner(ctx, propertyID)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, ownerID, got)
	})

	t.Run("Missing property", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		propertyRepo := new(mocks.PropertyRepository)
		svc := directory.NewService(userRepo, propertyRepo)

		propertyRepo.On("GetOwnerID", ctx, propertyID).Return(uuid.Nil, false, nil).Once()

		_, found, err := svc.PropertyOwner(ctx, propertyID)

		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestDirectoryService_Exists(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	userRepo := new(mocks.UserRepository)
	propertyRepo := new(mocks.PropertyRepository)
	svc := directory.NewService(userRepo, propertyRepo)

	userRepo.On("Exists", ctx, id).Return(true, nil).Once()
	propertyRepo.On("Exists", ctx, id).Return(false, nil).Once()

	userExists, err := svc.UserExists(ctx, id)
	assert.NoError(t, err)
	assert.True(t, userExists)

	propertyExists, err := svc.PropertyExists(ctx, id)
	assert.NoError(t, err)
	assert.False(t, propertyExists)
}

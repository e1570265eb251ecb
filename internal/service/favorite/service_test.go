package favorite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"propview-backend/internal/domain"
	"propview-backend/internal/mocks"
	"propview-backend/internal/service/favorite"
)

func TestFavoriteService_Add(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	propertyID := uuid.New()
	input := domain.AddFavoriteInput{PropertyID: propertyID}

	t.Run("Success", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		dir := new(mocks.DirectoryService)
		svc := favorite.NewService(favoriteRepo, dir)

		dir.On("UserExists", ctx, userID).Return(true, nil).Once()
		dir.On("PropertyExists", ctx, propertyID).Return(true, nil).Once()
		favoriteRepo.On("ExistsByUserAndProperty", ctx, userID, propertyID).Return(false, nil).Once()
		favoriteRepo.On("Create", ctx, mock.MatchedBy(func(f *domain.Favorite) bool {
			return f.UserID == userID && f.PropertyID == propertyID
		})).Return(nil).Once()

		fav, err := svc.Add(ctx, userID, input)

		assert.NoError(t, err)
		assert.NotNil(t, fav)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("Duplicate favorite", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		dir := new(mocks.DirectoryService)
		svc := favorite.NewService(favoriteRepo, dir)

		dir.On("UserExists", ctx, userID).Return(true, nil).Once()
		dir.On("PropertyExists", ctx, propertyID).Return(true, nil).Once()
		favoriteRepo.On("ExistsByUserAndProperty", ctx, userID, propertyID).Return(true, nil).Once()

		fav, err := svc.Add(ctx, userID, input)

		assert.Nil(t, fav)
		var conflict *domain.ConflictError
		assert.True(t, errors.As(err, &conflict))
		assert.Equal(t, "Property is already in favorites", err.Error())
		favoriteRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown property", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		dir := new(mocks.DirectoryService)
		svc := favorite.NewService(favoriteRepo, dir)

		dir.On("UserExists", ctx, userID).Return(true, nil).Once()
		dir.On("PropertyExists", ctx, propertyID).Return(false, nil).Once()

		fav, err := svc.Add(ctx, userID, input)

		assert.Nil(t, fav)
		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})
}

func TestFavoriteService_Remove(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	propertyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		dir := new(mocks.DirectoryService)
		svc := favorite.NewService(favoriteRepo, dir)

		fav := &domain.Favorite{ID: uuid.New(), UserID: userID, PropertyID: propertyID}
		favoriteRepo.On("GetByUserAndProperty", ctx, userID, propertyID).Return(fav, nil).Once()
		favoriteRepo.On("Delete", ctx, fav.ID).Return(nil).Once()

		err := svc.Remove(ctx, userID, propertyID)

		assert.NoError(t, err)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("Not favorited", func(t *testing.T) {
		favoriteRepo := new(mocks.FavoriteRepository)
		dir := new(mocks.DirectoryService)
		svc := favorite.NewService(favoriteRepo, dir)

		favoriteRepo.On("GetByUserAndProperty", ctx, userID, propertyID).Return(nil, nil).Once()

		err := svc.Remove(ctx, userID, propertyID)

		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound))
		favoriteRepo.AssertNotCalled(t, "Delete")
	})
}

func TestFavoriteService_ListByUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	favoriteRepo := new(mocks.FavoriteRepository)
	dir := new(mocks.DirectoryService)
	svc := favorite.NewService(favoriteRepo, dir)

	params := domain.PaginationParams{Page: 2, PageSize: 10}
	stored := []domain.Favorite{{ID: uuid.New(), UserID: userID}}
	favoriteRepo.On("FindByUser", ctx, userID, params).Return(stored, int64(11), nil).Once()

	result, err := svc.ListByUser(ctx, userID, params)

	assert.NoError(t, err)
	assert.Equal(t, stored, result.Data)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(11), result.TotalItems)
	assert.Equal(t, 2, result.TotalPages)
}

package favorite

import (
	"context"

	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
	"propview-backend/internal/service/directory"
)

type Service interface {
	Add(ctx context.Context, userID uuid.UUID, input domain.AddFavoriteInput) (*domain.Favorite, error)
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Favorite], error)
	IsFavorited(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

type service struct {
	favoriteRepo repository.FavoriteRepository
	directory    directory.Service
}

func NewService(favoriteRepo repository.FavoriteRepository, dir directory.Service) Service {
	return &service{
		favoriteRepo: favoriteRepo,
		directory:    dir,
	}
}

func (s *service) Add(ctx context.Context, userID uuid.UUID, input domain.AddFavoriteInput) (*domain.Favorite, error) {
	exists, err := s.directory.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("User", userID)
	}

	exists, err = s.directory.PropertyExists(ctx, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("Property", input.PropertyID)
	}

	favorited, err := s.favoriteRepo.ExistsByUserAndProperty(ctx, userID, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if favorited {
		return nil, domain.NewConflict("Property is already in favorites")
	}

	fav := &domain.Favorite{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: input.PropertyID,
		Notes:      input.Notes,
	}
	if err := s.favoriteRepo.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

func (s *service) Remove(ctx context.Context, userID, propertyID uuid.UUID) error {
	fav, err := s.favoriteRepo.GetByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if fav == nil {
		return domain.NewNotFound("Favorite", propertyID)
	}
	return s.favoriteRepo.Delete(ctx, fav.ID)
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Favorite], error) {
	params.Validate()
	favorites, total, err := s.favoriteRepo.FindByUser(ctx, userID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Favorite]{}, err
	}
	return domain.NewPaginatedResponse(favorites, params.Page, params.PageSize, total), nil
}

func (s *service) IsFavorited(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	return s.favoriteRepo.ExistsByUserAndProperty(ctx, userID, propertyID)
}

func (s *service) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	exists, err := s.directory.PropertyExists(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.NewNotFound("Property", propertyID)
	}
	return s.favoriteRepo.CountByProperty(ctx, propertyID)
}

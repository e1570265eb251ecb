// Package directory resolves user and property identities for the
// scheduling core. It is the only path through which the viewing
// engine learns about users and properties.
package directory

import (
	"context"

	"github.com/google/uuid"

	"propview-backend/internal/repository"
)

type Service interface {
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
	PropertyExists(ctx context.Context, id uuid.UUID) (bool, error)
	// PropertyOwner resolves the derived property -> owner relation.
	// The second return is false when the property does not exist.
	PropertyOwner(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, bool, error)
}

type service struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
}

func NewService(userRepo repository.UserRepository, propertyRepo repository.PropertyRepository) Service {
	return &service{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *service) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.userRepo.Exists(ctx, id)
}

func (s *service) PropertyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.propertyRepo.Exists(ctx, id)
}

func (s *service) PropertyOwner(ctx context.Context, propertyID uuid.UUID) (uuid.UUID, bool, error) {
	return s.propertyRepo.GetOwnerID(ctx, propertyID)
}

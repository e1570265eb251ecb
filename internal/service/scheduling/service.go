// Package scheduling validates and creates viewing requests and
// answers viewing queries. It enforces the one-viewing-per-property-
// per-date rule for statuses that still hold the slot.
package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
	"propview-backend/internal/service/directory"
)

type Service interface {
	Schedule(ctx context.Context, userID uuid.UUID, input domain.ScheduleViewingInput) (*domain.Viewing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error)
	ListInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error)
}

type service struct {
	viewingRepo repository.ViewingRepository
	directory   directory.Service
	blocking    []domain.ViewingStatus
}

// NewService builds the scheduling engine. blocking lists the statuses
// that reserve a property/date slot; pass domain.BlockingStatuses for
// the default policy.
func NewService(viewingRepo repository.ViewingRepository, dir directory.Service, blocking []domain.ViewingStatus) Service {
	if len(blocking) == 0 {
		blocking = domain.BlockingStatuses
	}
	return &service{
		viewingRepo: viewingRepo,
		directory:   dir,
		blocking:    blocking,
	}
}

func (s *service) Schedule(ctx context.Context, userID uuid.UUID, input domain.ScheduleViewingInput) (*domain.Viewing, error) {
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

	viewingDate := dateOnly(input.ViewingDate)
	if !viewingDate.After(dateOnly(time.Now())) {
		return nil, domain.NewInvalidRequest("Viewing date must be in the future")
	}

	viewing := &domain.Viewing{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  input.PropertyID,
		ViewingDate: viewingDate,
		ViewingTime: input.ViewingTime,
		Notes:       input.Notes,
		Status:      domain.ViewingPending,
	}

	if err := s.viewingRepo.Create(ctx, viewing, s.blocking); err != nil {
		return nil, err
	}

	return viewing, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error) {
	viewing, err := s.viewingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewing == nil {
		return nil, domain.NewNotFound("Viewing", id)
	}
	return viewing, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	exists, err := s.directory.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("User", userID)
	}
	return s.viewingRepo.FindByUser(ctx, userID, status)
}

func (s *service) ListByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error) {
	exists, err := s.directory.PropertyExists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("Property", propertyID)
	}
	if date != nil {
		d := dateOnly(*date)
		date = &d
	}
	return s.viewingRepo.FindByProperty(ctx, propertyID, status, date)
}

func (s *service) ListByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	exists, err := s.directory.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NewNotFound("User", ownerID)
	}
	return s.viewingRepo.FindByOwner(ctx, ownerID, status)
}

func (s *service) ListInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error) {
	start, end = dateOnly(start), dateOnly(end)
	if end.Before(start) {
		return nil, domain.NewInvalidRequest("End date must not be before start date")
	}
	return s.viewingRepo.FindInDateRange(ctx, start, end)
}

// dateOnly truncates to a calendar date in UTC. Viewing dates carry no
// timezone semantics, so comparisons always happen on the date part.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Package lifecycle advances viewings through their status state
// machine. Every transition is a single guarded write: if a concurrent
// request already moved the viewing out of the status this request
// read, the write matches nothing and the request fails against the
// fresh status.
package lifecycle

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
	"propview-backend/internal/service/directory"
)

type Service interface {
	Confirm(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error)
	Reject(ctx context.Context, viewingID uuid.UUID, reason *string) (*domain.Viewing, error)
	Complete(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error)
	Cancel(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error)
	// Delete hard-removes a viewing regardless of status. Administrative
	// cleanup only; the removal is recorded in the audit log.
	Delete(ctx context.Context, viewingID, actorID uuid.UUID) error
	CountConfirmed(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

type service struct {
	viewingRepo repository.ViewingRepository
	directory   directory.Service
	auditRepo   repository.AuditLogRepository
}

func NewService(viewingRepo repository.ViewingRepository, dir directory.Service, auditRepo repository.AuditLogRepository) Service {
	return &service{
		viewingRepo: viewingRepo,
		directory:   dir,
		auditRepo:   auditRepo,
	}
}

func (s *service) Confirm(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error) {
	return s.transition(ctx, viewingID, domain.ActionConfirm, func(v *domain.Viewing, now time.Time) {
		v.ConfirmedAt = &now
	})
}

func (s *service) Reject(ctx context.Context, viewingID uuid.UUID, reason *string) (*domain.Viewing, error) {
	return s.transition(ctx, viewingID, domain.ActionReject, func(v *domain.Viewing, now time.Time) {
		v.RejectedAt = &now
		v.RejectionReason = reason
	})
}

func (s *service) Complete(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error) {
	return s.transition(ctx, viewingID, domain.ActionComplete, func(v *domain.Viewing, now time.Time) {
		v.CompletedAt = &now
	})
}

func (s *service) Cancel(ctx context.Context, viewingID uuid.UUID) (*domain.Viewing, error) {
	return s.transition(ctx, viewingID, domain.ActionCancel, func(v *domain.Viewing, now time.Time) {
		v.CancelledAt = &now
	})
}

// transition loads the viewing, evaluates the state machine, stamps the
// transition moment and persists with a status guard. stamp only runs
// once the transition is known to be legal.
func (s *service) transition(ctx context.Context, viewingID uuid.UUID, action domain.ViewingAction, stamp func(*domain.Viewing, time.Time)) (*domain.Viewing, error) {
	viewing, err := s.viewingRepo.GetByID(ctx, viewingID)
	if err != nil {
		return nil, err
	}
	if viewing == nil {
		return nil, domain.NewNotFound("Viewing", viewingID)
	}

	from := viewing.Status
	next, err := from.Apply(action)
	if err != nil {
		return nil, err
	}

	viewing.Status = next
	stamp(viewing, time.Now())

	matched, err := s.viewingRepo.ApplyTransition(ctx, viewing, from)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost the race: another transition committed first. Report the
		// guard violation against whatever status the row has now.
		return nil, s.staleTransitionError(ctx, viewingID, action)
	}

	return viewing, nil
}

func (s *service) staleTransitionError(ctx context.Context, viewingID uuid.UUID, action domain.ViewingAction) error {
	current, err := s.viewingRepo.GetByID(ctx, viewingID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.NewNotFound("Viewing", viewingID)
	}
	if _, terr := current.Status.Apply(action); terr != nil {
		return terr
	}
	// The action is legal again from the new status; the caller simply
	// needs to retry against fresh state.
	return domain.NewInvalidTransition(current.Status, action, "Viewing was modified concurrently, retry the request")
}

func (s *service) Delete(ctx context.Context, viewingID, actorID uuid.UUID) error {
	viewing, err := s.viewingRepo.GetByID(ctx, viewingID)
	if err != nil {
		return err
	}
	if viewing == nil {
		return domain.NewNotFound("Viewing", viewingID)
	}

	found, err := s.viewingRepo.Delete(ctx, viewingID)
	if err != nil {
		return err
	}
	if !found {
		return domain.NewNotFound("Viewing", viewingID)
	}

	s.logDeletion(ctx, actorID, viewing)
	return nil
}

func (s *service) logDeletion(ctx context.Context, actorID uuid.UUID, viewing *domain.Viewing) {
	oldValue, _ := json.Marshal(viewing)

	audit := &domain.AuditLog{
		ID:         uuid.New(),
		UserID:     actorID,
		Action:     "DELETE_VIEWING",
		EntityType: "VIEWING",
		EntityID:   viewing.ID,
		OldValue:   oldValue,
	}

	_ = s.auditRepo.Create(ctx, audit)
}

func (s *service) CountConfirmed(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	exists, err := s.directory.PropertyExists(ctx, propertyID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.NewNotFound("Property", propertyID)
	}
	return s.viewingRepo.CountByPropertyAndStatus(ctx, propertyID, domain.ViewingConfirmed)
}

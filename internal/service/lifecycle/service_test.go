package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"propview-backend/internal/domain"
	"propview-backend/internal/mocks"
	"propview-backend/internal/service/lifecycle"
)

func pendingViewing(id uuid.UUID) *domain.Viewing {
	return &domain.Viewing{
		ID:         id,
		UserID:     uuid.New(),
		PropertyID: uuid.New(),
		Status:     domain.ViewingPending,
	}
}

func TestLifecycleService_Confirm(t *testing.T) {
	ctx := context.Background()
	viewingID := uuid.New()

	t.Run("Pending viewing is confirmed and stamped", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.MatchedBy(func(v *domain.Viewing) bool {
			return v.Status == domain.ViewingConfirmed && v.ConfirmedAt != nil
		}), domain.ViewingPending).Return(true, nil).Once()

		viewing, err := svc.Confirm(ctx, viewingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ViewingConfirmed, viewing.Status)
		assert.NotNil(t, viewing.ConfirmedAt)
		assert.Nil(t, viewing.RejectedAt)
		viewingRepo.AssertExpectations(t)
	})

	t.Run("Confirmed viewing cannot be confirmed again", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		confirmed := pendingViewing(viewingID)
		confirmed.Status = domain.ViewingConfirmed
		viewingRepo.On("GetByID", ctx, viewingID).Return(confirmed, nil).Once()

		viewing, err := svc.Confirm(ctx, viewingID)

		assert.Nil(t, viewing)
		var transitionErr *domain.InvalidTransitionError
		assert.True(t, errors.As(err, &transitionErr))
		assert.Contains(t, err.Error(), "Only pending viewings can be confirmed")
		viewingRepo.AssertNotCalled(t, "ApplyTransition")
	})

	t.Run("Missing viewing", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(nil, nil).Once()

		viewing, err := svc.Confirm(ctx, viewingID)

		assert.Nil(t, viewing)
		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound))
	})

	t.Run("Lost race reports fresh status", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		// The viewing was PENDING when read, but a concurrent cancel
		// committed before this confirm's guarded write.
		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.AnythingOfType("*domain.Viewing"), domain.ViewingPending).
			Return(false, nil).Once()

		cancelled := pendingViewing(viewingID)
		cancelled.Status = domain.ViewingCancelled
		viewingRepo.On("GetByID", ctx, viewingID).Return(cancelled, nil).Once()

		viewing, err := svc.Confirm(ctx, viewingID)

		assert.Nil(t, viewing)
		var transitionErr *domain.InvalidTransitionError
		assert.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, domain.ViewingCancelled, transitionErr.Status)
	})
}

func TestLifecycleService_Reject(t *testing.T) {
	ctx := context.Background()
	viewingID := uuid.New()
	reason := "Property no longer available"

	t.Run("Pending viewing rejected with reason", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.MatchedBy(func(v *domain.Viewing) bool {
			return v.Status == domain.ViewingRejected &&
				v.RejectedAt != nil &&
				v.RejectionReason != nil && *v.RejectionReason == reason
		}), domain.ViewingPending).Return(true, nil).Once()

		viewing, err := svc.Reject(ctx, viewingID, &reason)

		assert.NoError(t, err)
		assert.Equal(t, domain.ViewingRejected, viewing.Status)
		assert.Equal(t, &reason, viewing.RejectionReason)
	})

	t.Run("Reason is optional", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.AnythingOfType("*domain.Viewing"), domain.ViewingPending).
			Return(true, nil).Once()

		viewing, err := svc.Reject(ctx, viewingID, nil)

		assert.NoError(t, err)
		assert.Nil(t, viewing.RejectionReason)
	})

	t.Run("Cancelled viewing cannot be rejected", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		cancelled := pendingViewing(viewingID)
		cancelled.Status = domain.ViewingCancelled
		viewingRepo.On("GetByID", ctx, viewingID).Return(cancelled, nil).Once()

		viewing, err := svc.Reject(ctx, viewingID, &reason)

		assert.Nil(t, viewing)
		assert.Contains(t, err.Error(), "Only pending viewings can be rejected")
	})
}

func TestLifecycleService_Complete(t *testing.T) {
	ctx := context.Background()
	viewingID := uuid.New()

	t.Run("Confirmed viewing completed", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		confirmed := pendingViewing(viewingID)
		confirmed.Status = domain.ViewingConfirmed
		viewingRepo.On("GetByID", ctx, viewingID).Return(confirmed, nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.MatchedBy(func(v *domain.Viewing) bool {
			return v.Status == domain.ViewingCompleted && v.CompletedAt != nil
		}), domain.ViewingConfirmed).Return(true, nil).Once()

		viewing, err := svc.Complete(ctx, viewingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ViewingCompleted, viewing.Status)
	})

	t.Run("Pending viewing cannot be completed", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()

		viewing, err := svc.Complete(ctx, viewingID)

		assert.Nil(t, viewing)
		assert.Contains(t, err.Error(), "Only confirmed viewings can be marked as completed")
	})
}

func TestLifecycleService_Cancel(t *testing.T) {
	ctx := context.Background()
	viewingID := uuid.New()

	t.Run("Pending viewing cancelled", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("ApplyTransition", ctx, mock.MatchedBy(func(v *domain.Viewing) bool {
			return v.Status == domain.ViewingCancelled && v.CancelledAt != nil
		}), domain.ViewingPending).Return(true, nil).Once()

		viewing, err := svc.Cancel(ctx, viewingID)

		assert.NoError(t, err)
		assert.Equal(t, domain.ViewingCancelled, viewing.Status)
	})

	t.Run("Completed viewing cannot be cancelled", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		completed := pendingViewing(viewingID)
		completed.Status = domain.ViewingCompleted
		viewingRepo.On("GetByID", ctx, viewingID).Return(completed, nil).Once()

		viewing, err := svc.Cancel(ctx, viewingID)

		assert.Nil(t, viewing)
		assert.Contains(t, err.Error(), "Cannot cancel COMPLETED viewings")
	})
}

func TestLifecycleService_Delete(t *testing.T) {
	ctx := context.Background()
	viewingID := uuid.New()
	actorID := uuid.New()

	t.Run("Deletes any status and writes audit entry", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		completed := pendingViewing(viewingID)
		completed.Status = domain.ViewingCompleted
		viewingRepo.On("GetByID", ctx, viewingID).Return(completed, nil).Once()
		viewingRepo.On("Delete", ctx, viewingID).Return(true, nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(entry *domain.AuditLog) bool {
			return entry.UserID == actorID &&
				entry.Action == "DELETE_VIEWING" &&
				entry.EntityID == viewingID
		})).Return(nil).Once()

		err := svc.Delete(ctx, viewingID, actorID)

		assert.NoError(t, err)
		auditRepo.AssertExpectations(t)
	})

	t.Run("Missing viewing", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(nil, nil).Once()

		err := svc.Delete(ctx, viewingID, actorID)

		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound))
		viewingRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Audit failure does not fail the delete", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		viewingRepo.On("GetByID", ctx, viewingID).Return(pendingViewing(viewingID), nil).Once()
		viewingRepo.On("Delete", ctx, viewingID).Return(true, nil).Once()
		auditRepo.On("Create", ctx, mock.AnythingOfType("*domain.AuditLog")).
			Return(errors.New("audit store down")).Once()

		err := svc.Delete(ctx, viewingID, actorID)

		assert.NoError(t, err)
	})
}

func TestLifecycleService_CountConfirmed(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("Counts confirmed viewings", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		dir.On("PropertyExists", ctx, propertyID).Return(true, nil).Once()
		viewingRepo.On("CountByPropertyAndStatus", ctx, propertyID, domain.ViewingConfirmed).
			Return(int64(3), nil).Once()

		count, err := svc.CountConfirmed(ctx, propertyID)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Unknown property", func(t *testing.T) {
		viewingRepo := new(mocks.ViewingRepository)
		dir := new(mocks.DirectoryService)
		auditRepo := new(mocks.AuditLogRepository)
		svc := lifecycle.NewService(viewingRepo, dir, auditRepo)

		dir.On("PropertyExists", ctx, propertyID).Return(false, nil).Once()

		count, err := svc.CountConfirmed(ctx, propertyID)

		assert.Zero(t, count)
		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound))
		viewingRepo.AssertNotCalled(t, "CountByPropertyAndStatus")
	})
}

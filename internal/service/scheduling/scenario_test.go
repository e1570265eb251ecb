package scheduling_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propview-backend/internal/domain"
	"propview-backend/internal/mocks"
	"propview-backend/internal/service/lifecycle"
	"propview-backend/internal/service/scheduling"
)

// memoryViewingStore reproduces the repository's slot and guard
// semantics in memory so the scheduling and lifecycle services can be
// exercised together across a full viewing flow.
type memoryViewingStore struct {
	mu       sync.Mutex
	viewings map[uuid.UUID]domain.Viewing
}

func newMemoryViewingStore() *memoryViewingStore {
	return &memoryViewingStore{viewings: make(map[uuid.UUID]domain.Viewing)}
}

func (s *memoryViewingStore) Create(ctx context.Context, v *domain.Viewing, blocking []domain.ViewingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.viewings {
		if existing.PropertyID != v.PropertyID || !existing.ViewingDate.Equal(v.ViewingDate) {
			continue
		}
		for _, status := range blocking {
			if existing.Status == status {
				return domain.NewConflict("Property already has viewings scheduled for this date")
			}
		}
	}

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	s.viewings[v.ID] = *v
	return nil
}

func (s *memoryViewingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Viewing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.viewings[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (s *memoryViewingStore) FindByProperty(ctx context.Context, propertyID uuid.UUID, status *domain.ViewingStatus, date *time.Time) ([]domain.Viewing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Viewing
	for _, v := range s.viewings {
		if v.PropertyID != propertyID {
			continue
		}
		if status != nil && v.Status != *status {
			continue
		}
		if date != nil && !v.ViewingDate.Equal(*date) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *memoryViewingStore) FindByUser(ctx context.Context, userID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Viewing
	for _, v := range s.viewings {
		if v.UserID != userID {
			continue
		}
		if status != nil && v.Status != *status {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *memoryViewingStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, status *domain.ViewingStatus) ([]domain.Viewing, error) {
	return nil, nil
}

func (s *memoryViewingStore) FindInDateRange(ctx context.Context, start, end time.Time) ([]domain.Viewing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Viewing
	for _, v := range s.viewings {
		if v.ViewingDate.Before(start) || v.ViewingDate.After(end) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *memoryViewingStore) CountByPropertyAndStatus(ctx context.Context, propertyID uuid.UUID, status domain.ViewingStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, v := range s.viewings {
		if v.PropertyID == propertyID && v.Status == status {
			count++
		}
	}
	return count, nil
}

func (s *memoryViewingStore) ApplyTransition(ctx context.Context, v *domain.Viewing, from domain.ViewingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.viewings[v.ID]
	if !ok || current.Status != from {
		return false, nil
	}
	v.UpdatedAt = time.Now()
	s.viewings[v.ID] = *v
	return true, nil
}

func (s *memoryViewingStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.viewings[id]; !ok {
		return false, nil
	}
	delete(s.viewings, id)
	return true, nil
}

func TestViewingFlow_SlotLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newMemoryViewingStore()

	firstUser := uuid.New()
	secondUser := uuid.New()
	propertyID := uuid.New()
	viewingDate := time.Now().UTC().AddDate(0, 0, 7)

	dir := new(mocks.DirectoryService)
	dir.On("UserExists", ctx, firstUser).Return(true, nil)
	dir.On("UserExists", ctx, secondUser).Return(true, nil)
	dir.On("PropertyExists", ctx, propertyID).Return(true, nil)

	auditRepo := new(mocks.AuditLogRepository)

	schedulingSvc := scheduling.NewService(store, dir, domain.BlockingStatuses)
	lifecycleSvc := lifecycle.NewService(store, dir, auditRepo)

	// First user takes the slot.
	first, err := schedulingSvc.Schedule(ctx, firstUser, domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: viewingDate,
		ViewingTime: "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ViewingPending, first.Status)

	// A pending viewing blocks the date for everyone else.
	_, err = schedulingSvc.Schedule(ctx, secondUser, domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: viewingDate,
		ViewingTime: "15:00",
	})
	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))

	// Confirming keeps the slot blocked.
	confirmed, err := lifecycleSvc.Confirm(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewingConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)

	_, err = schedulingSvc.Schedule(ctx, secondUser, domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: viewingDate,
		ViewingTime: "15:00",
	})
	require.True(t, errors.As(err, &conflict))

	count, err := lifecycleSvc.CountConfirmed(ctx, propertyID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Completing releases the slot.
	completed, err := lifecycleSvc.Complete(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewingCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	second, err := schedulingSvc.Schedule(ctx, secondUser, domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: viewingDate,
		ViewingTime: "15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ViewingPending, second.Status)

	// The completed viewing is immutable from here on.
	_, err = lifecycleSvc.Cancel(ctx, first.ID)
	var transitionErr *domain.InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
}

func TestViewingFlow_RejectedAndCancelledFreeTheSlot(t *testing.T) {
	ctx := context.Background()
	store := newMemoryViewingStore()

	userID := uuid.New()
	propertyID := uuid.New()
	viewingDate := time.Now().UTC().AddDate(0, 0, 3)

	dir := new(mocks.DirectoryService)
	dir.On("UserExists", ctx, userID).Return(true, nil)
	dir.On("PropertyExists", ctx, propertyID).Return(true, nil)

	schedulingSvc := scheduling.NewService(store, dir, domain.BlockingStatuses)
	lifecycleSvc := lifecycle.NewService(store, dir, new(mocks.AuditLogRepository))

	input := domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: viewingDate,
		ViewingTime: "09:00",
	}

	first, err := schedulingSvc.Schedule(ctx, userID, input)
	require.NoError(t, err)

	reason := "Owner unavailable"
	rejected, err := lifecycleSvc.Reject(ctx, first.ID, &reason)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewingRejected, rejected.Status)
	assert.Equal(t, &reason, rejected.RejectionReason)

	// A rejected viewing no longer blocks the date.
	second, err := schedulingSvc.Schedule(ctx, userID, input)
	require.NoError(t, err)

	cancelled, err := lifecycleSvc.Cancel(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ViewingCancelled, cancelled.Status)

	// Same for a cancelled one.
	_, err = schedulingSvc.Schedule(ctx, userID, input)
	require.NoError(t, err)
}

func TestViewingFlow_ConcurrentTransitionLosesRace(t *testing.T) {
	ctx := context.Background()
	store := newMemoryViewingStore()

	userID := uuid.New()
	propertyID := uuid.New()

	dir := new(mocks.DirectoryService)
	dir.On("UserExists", ctx, userID).Return(true, nil)
	dir.On("PropertyExists", ctx, propertyID).Return(true, nil)

	schedulingSvc := scheduling.NewService(store, dir, domain.BlockingStatuses)
	lifecycleSvc := lifecycle.NewService(store, dir, new(mocks.AuditLogRepository))

	viewing, err := schedulingSvc.Schedule(ctx, userID, domain.ScheduleViewingInput{
		PropertyID:  propertyID,
		ViewingDate: time.Now().UTC().AddDate(0, 0, 2),
		ViewingTime: "11:00",
	})
	require.NoError(t, err)

	// The cancel commits first; the confirm then fails its guard and
	// reports the transition against the cancelled status.
	_, err = lifecycleSvc.Cancel(ctx, viewing.ID)
	require.NoError(t, err)

	_, err = lifecycleSvc.Confirm(ctx, viewing.ID)
	var transitionErr *domain.InvalidTransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, domain.ViewingCancelled, transitionErr.Status)
}

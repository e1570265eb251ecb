package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"propview-backend/internal/domain"
)

func TestViewingStatus_Apply(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.ViewingStatus
		action  domain.ViewingAction
		want    domain.ViewingStatus
		message string
	}{
		{name: "confirm pending", from: domain.ViewingPending, action: domain.ActionConfirm, want: domain.ViewingConfirmed},
		{name: "reject pending", from: domain.ViewingPending, action: domain.ActionReject, want: domain.ViewingRejected},
		{name: "cancel pending", from: domain.ViewingPending, action: domain.ActionCancel, want: domain.ViewingCancelled},
		{name: "complete confirmed", from: domain.ViewingConfirmed, action: domain.ActionComplete, want: domain.ViewingCompleted},
		{name: "cancel confirmed", from: domain.ViewingConfirmed, action: domain.ActionCancel, want: domain.ViewingCancelled},

		{name: "confirm confirmed", from: domain.ViewingConfirmed, action: domain.ActionConfirm, message: "Only pending viewings can be confirmed"},
		{name: "confirm rejected", from: domain.ViewingRejected, action: domain.ActionConfirm, message: "Only pending viewings can be confirmed"},
		{name: "reject confirmed", from: domain.ViewingConfirmed, action: domain.ActionReject, message: "Only pending viewings can be rejected"},
		{name: "complete pending", from: domain.ViewingPending, action: domain.ActionComplete, message: "Only confirmed viewings can be marked as completed"},
		{name: "complete cancelled", from: domain.ViewingCancelled, action: domain.ActionComplete, message: "Only confirmed viewings can be marked as completed"},
		{name: "cancel completed", from: domain.ViewingCompleted, action: domain.ActionCancel, message: "Cannot cancel COMPLETED viewings"},
		{name: "cancel rejected", from: domain.ViewingRejected, action: domain.ActionCancel, message: "Cannot cancel REJECTED viewings"},
		{name: "cancel cancelled", from: domain.ViewingCancelled, action: domain.ActionCancel, message: "Cannot cancel CANCELLED viewings"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := tc.from.Apply(tc.action)

			if tc.message == "" {
				assert.NoError(t, err)
				assert.Equal(t, tc.want, next)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, tc.from, next)

			var transitionErr *domain.InvalidTransitionError
			assert.True(t, errors.As(err, &transitionErr))
			assert.Equal(t, tc.from, transitionErr.Status)
			assert.Equal(t, tc.action, transitionErr.Action)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestViewingStatus_Apply_UnknownAction(t *testing.T) {
	_, err := domain.ViewingPending.Apply(domain.ViewingAction("archive"))

	var transitionErr *domain.InvalidTransitionError
	assert.True(t, errors.As(err, &transitionErr))
}

func TestViewingStatus_TerminalStatesAdmitNoAction(t *testing.T) {
	terminal := []domain.ViewingStatus{domain.ViewingRejected, domain.ViewingCompleted, domain.ViewingCancelled}
	actions := []domain.ViewingAction{domain.ActionConfirm, domain.ActionReject, domain.ActionComplete, domain.ActionCancel}

	for _, status := range terminal {
		assert.True(t, status.IsTerminal())
		for _, action := range actions {
			next, err := status.Apply(action)
			assert.Error(t, err, "status %s should not accept %s", status, action)
			assert.Equal(t, status, next)
		}
	}

	assert.False(t, domain.ViewingPending.IsTerminal())
	assert.False(t, domain.ViewingConfirmed.IsTerminal())
}

func TestViewingStatus_IsValid(t *testing.T) {
	assert.True(t, domain.ViewingPending.IsValid())
	assert.True(t, domain.ViewingCancelled.IsValid())
	assert.False(t, domain.ViewingStatus("ARCHIVED").IsValid())
	assert.False(t, domain.ViewingStatus("").IsValid())
}

func TestBlockingStatuses_DefaultPolicy(t *testing.T) {
	assert.Equal(t, []domain.ViewingStatus{domain.ViewingPending, domain.ViewingConfirmed}, domain.BlockingStatuses)
}

package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ViewingStatus string

const (
	ViewingPending   ViewingStatus = "PENDING"
	ViewingConfirmed ViewingStatus = "CONFIRMED"
	ViewingRejected  ViewingStatus = "REJECTED"
	ViewingCompleted ViewingStatus = "COMPLETED"
	ViewingCancelled ViewingStatus = "CANCELLED"
)

func (s ViewingStatus) IsValid() bool {
	switch s {
	case ViewingPending, ViewingConfirmed, ViewingRejected, ViewingCompleted, ViewingCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ViewingStatus) IsTerminal() bool {
	switch s {
	case ViewingRejected, ViewingCompleted, ViewingCancelled:
		return true
	}
	return false
}

// BlockingStatuses are the statuses that still reserve a property/date
// slot. Kept as data rather than baked into queries so the policy can
// change without touching the engine.
var BlockingStatuses = []ViewingStatus{ViewingPending, ViewingConfirmed}

type ViewingAction string

const (
	ActionConfirm  ViewingAction = "confirm"
	ActionReject   ViewingAction = "reject"
	ActionComplete ViewingAction = "complete"
	ActionCancel   ViewingAction = "cancel"
)

// Apply evaluates a lifecycle transition and returns the next status,
// or an *InvalidTransitionError when the state machine forbids it.
func (s ViewingStatus) Apply(action ViewingAction) (ViewingStatus, error) {
	switch action {
	case ActionConfirm:
		if s == ViewingPending {
			return ViewingConfirmed, nil
		}
		return s, NewInvalidTransition(s, action, "Only pending viewings can be confirmed")
	case ActionReject:
		if s == ViewingPending {
			return ViewingRejected, nil
		}
		return s, NewInvalidTransition(s, action, "Only pending viewings can be rejected")
	case ActionComplete:
		if s == ViewingConfirmed {
			return ViewingCompleted, nil
		}
		return s, NewInvalidTransition(s, action, "Only confirmed viewings can be marked as completed")
	case ActionCancel:
		if s == ViewingPending || s == ViewingConfirmed {
			return ViewingCancelled, nil
		}
		return s, NewInvalidTransition(s, action, fmt.Sprintf("Cannot cancel %s viewings", s))
	}
	return s, NewInvalidTransition(s, action, fmt.Sprintf("Unknown viewing action %q", action))
}

type Viewing struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	UserID          uuid.UUID     `json:"user_id" db:"user_id"`
	PropertyID      uuid.UUID     `json:"property_id" db:"property_id"`
	ViewingDate     time.Time     `json:"viewing_date" db:"viewing_date"`
	ViewingTime     string        `json:"viewing_time" db:"viewing_time"`
	Notes           *string       `json:"notes,omitempty" db:"notes"`
	Status          ViewingStatus `json:"status" db:"status"`
	RejectionReason *string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ConfirmedAt     *time.Time    `json:"confirmed_at,omitempty" db:"confirmed_at"`
	RejectedAt      *time.Time    `json:"rejected_at,omitempty" db:"rejected_at"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty" db:"cancelled_at"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

type ScheduleViewingInput struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	ViewingDate time.Time `json:"viewing_date" validate:"required"`
	ViewingTime string    `json:"viewing_time" validate:"required"`
	Notes       *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type RejectViewingInput struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type DateRangeQuery struct {
	Start time.Time `json:"start" query:"start"`
	End   time.Time `json:"end" query:"end"`
}

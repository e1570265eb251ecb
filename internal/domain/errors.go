package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %s", e.Resource, e.ID)
}

func NewNotFound(resource string, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidRequestError signals a request that fails domain validation
// before it reaches the store, such as a viewing date in the past.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

func NewInvalidRequest(reason string) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason}
}

// ConflictError signals that the requested slot or resource is already
// taken by another record.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func NewConflict(reason string) *ConflictError {
	return &ConflictError{Reason: reason}
}

// ForbiddenError signals that the acting user is not allowed to touch
// the resource, typically failing an ownership check.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func NewForbidden(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

// InvalidTransitionError carries the status a viewing was in and the
// action that was refused.
type InvalidTransitionError struct {
	Status ViewingStatus
	Action ViewingAction
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return e.Reason
}

func NewInvalidTransition(status ViewingStatus, action ViewingAction, reason string) *InvalidTransitionError {
	return &InvalidTransitionError{Status: status, Action: action, Reason: reason}
}

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"propview-backend/internal/domain"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorHandler translates domain errors and fiber errors into the JSON
// error envelope. Unrecognised errors (store failures included) fall
// through unchanged as 500s.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	errorCode := "INTERNAL_ERROR"

	var (
		notFound          *domain.NotFoundError
		invalidRequest    *domain.InvalidRequestError
		conflict          *domain.ConflictError
		forbidden         *domain.ForbiddenError
		invalidTransition *domain.InvalidTransitionError
		fiberErr          *fiber.Error
	)

	switch {
	case errors.As(err, &notFound):
		code = fiber.StatusNotFound
		errorCode = "NOT_FOUND"
		message = notFound.Error()
	case errors.As(err, &invalidRequest):
		code = fiber.StatusBadRequest
		errorCode = "INVALID_REQUEST"
		message = invalidRequest.Error()
	case errors.As(err, &conflict):
		code = fiber.StatusConflict
		errorCode = "CONFLICT"
		message = conflict.Error()
	case errors.As(err, &forbidden):
		code = fiber.StatusForbidden
		errorCode = "FORBIDDEN"
		message = forbidden.Error()
	case errors.As(err, &invalidTransition):
		code = fiber.StatusUnprocessableEntity
		errorCode = "INVALID_TRANSITION"
		message = invalidTransition.Error()
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		switch code {
		case fiber.StatusBadRequest:
			errorCode = "BAD_REQUEST"
		case fiber.StatusUnauthorized:
			errorCode = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			errorCode = "FORBIDDEN"
		case fiber.StatusNotFound:
			errorCode = "NOT_FOUND"
		case fiber.StatusConflict:
			errorCode = "CONFLICT"
		case fiber.StatusUnprocessableEntity:
			errorCode = "VALIDATION_ERROR"
		}
	}

	traceID := uuid.New().String()[:8]

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode,
		Message: message,
		TraceID: traceID,
	})
}

func BadRequest(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusForbidden, message)
}

func NotFound(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusNotFound, message)
}

func Conflict(message string) *fiber.Error {
	return fiber.NewError(fiber.StatusConflict, message)
}

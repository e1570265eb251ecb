package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/middleware"
	"propview-backend/internal/service/directory"
	"propview-backend/internal/service/lifecycle"
	"propview-backend/internal/service/scheduling"
)

type ViewingHandler struct {
	scheduling scheduling.Service
	lifecycle  lifecycle.Service
	directory  directory.Service
}

func NewViewingHandler(schedulingService scheduling.Service, lifecycleService lifecycle.Service, directoryService directory.Service) *ViewingHandler {
	return &ViewingHandler{
		scheduling: schedulingService,
		lifecycle:  lifecycleService,
		directory:  directoryService,
	}
}

func (h *ViewingHandler) Schedule(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.ScheduleViewingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if input.ViewingTime == "" {
		return middleware.BadRequest("Viewing time is required")
	}

	viewing, err := h.scheduling.Schedule(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(viewing)
}

func (h *ViewingHandler) Get(c *fiber.Ctx) error {
	viewingID, err := uuid.Parse(c.Params("viewingId"))
	if err != nil {
		return middleware.BadRequest("Invalid viewing ID")
	}

	viewing, err := h.scheduling.GetByID(c.Context(), viewingID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewing)
}

// ListMine returns the viewings the authenticated user requested.
func (h *ViewingHandler) ListMine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	status, err := statusQuery(c)
	if err != nil {
		return err
	}

	viewings, err := h.scheduling.ListByUser(c.Context(), userID, status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewings)
}

// ListForOwner returns viewings across every property the
// authenticated user owns.
func (h *ViewingHandler) ListForOwner(c *fiber.Ctx) error {
	ownerID := middleware.GetCurrentUserID(c)

	status, err := statusQuery(c)
	if err != nil {
		return err
	}

	viewings, err := h.scheduling.ListByOwner(c.Context(), ownerID, status)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewings)
}

func (h *ViewingHandler) ListByProperty(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	status, err := statusQuery(c)
	if err != nil {
		return err
	}

	var date *time.Time
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			return middleware.BadRequest("Invalid date, expected YYYY-MM-DD")
		}
		date = &parsed
	}

	// Only the property owner or an admin may see a property's
	// viewing queue.
	if !middleware.IsAdmin(c) {
		ownerID, found, err := h.directory.PropertyOwner(c.Context(), propertyID)
		if err != nil {
			return err
		}
		if found && ownerID != middleware.GetCurrentUserID(c) {
			return middleware.Forbidden("Only the property owner can view these viewings")
		}
	}

	viewings, err := h.scheduling.ListByProperty(c.Context(), propertyID, status, date)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewings)
}

func (h *ViewingHandler) ListInDateRange(c *fiber.Ctx) error {
	start, err := time.Parse("2006-01-02", c.Query("start"))
	if err != nil {
		return middleware.BadRequest("Invalid start date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", c.Query("end"))
	if err != nil {
		return middleware.BadRequest("Invalid end date, expected YYYY-MM-DD")
	}

	viewings, err := h.scheduling.ListInDateRange(c.Context(), start, end)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewings)
}

func (h *ViewingHandler) Confirm(c *fiber.Ctx) error {
	viewingID, err := h.ownedViewingID(c)
	if err != nil {
		return err
	}

	viewing, err := h.lifecycle.Confirm(c.Context(), viewingID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewing)
}

func (h *ViewingHandler) Reject(c *fiber.Ctx) error {
	viewingID, err := h.ownedViewingID(c)
	if err != nil {
		return err
	}

	var input domain.RejectViewingInput
	_ = c.BodyParser(&input)

	viewing, err := h.lifecycle.Reject(c.Context(), viewingID, input.Reason)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewing)
}

func (h *ViewingHandler) Complete(c *fiber.Ctx) error {
	viewingID, err := h.ownedViewingID(c)
	if err != nil {
		return err
	}

	viewing, err := h.lifecycle.Complete(c.Context(), viewingID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewing)
}

// Cancel is open to the requesting user as well as the owner: either
// side may call a viewing off while it is still live.
func (h *ViewingHandler) Cancel(c *fiber.Ctx) error {
	viewingID, err := uuid.Parse(c.Params("viewingId"))
	if err != nil {
		return middleware.BadRequest("Invalid viewing ID")
	}

	if err := h.requireParticipant(c, viewingID); err != nil {
		return err
	}

	viewing, err := h.lifecycle.Cancel(c.Context(), viewingID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(viewing)
}

// Delete is the administrative hard removal that bypasses the state
// machine.
func (h *ViewingHandler) Delete(c *fiber.Ctx) error {
	viewingID, err := uuid.Parse(c.Params("viewingId"))
	if err != nil {
		return middleware.BadRequest("Invalid viewing ID")
	}

	if err := h.lifecycle.Delete(c.Context(), viewingID, middleware.GetCurrentUserID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *ViewingHandler) CountConfirmed(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	count, err := h.lifecycle.CountConfirmed(c.Context(), propertyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"property_id": propertyID, "confirmed_count": count})
}

// ownedViewingID parses the viewing id and checks the caller owns the
// property the viewing targets (admins skip the check).
func (h *ViewingHandler) ownedViewingID(c *fiber.Ctx) (uuid.UUID, error) {
	viewingID, err := uuid.Parse(c.Params("viewingId"))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid viewing ID")
	}
	if middleware.IsAdmin(c) {
		return viewingID, nil
	}

	viewing, err := h.scheduling.GetByID(c.Context(), viewingID)
	if err != nil {
		return uuid.Nil, err
	}

	ownerID, found, err := h.directory.PropertyOwner(c.Context(), viewing.PropertyID)
	if err != nil {
		return uuid.Nil, err
	}
	if !found || ownerID != middleware.GetCurrentUserID(c) {
		return uuid.Nil, middleware.Forbidden("Only the property owner can manage this viewing")
	}

	return viewingID, nil
}

func (h *ViewingHandler) requireParticipant(c *fiber.Ctx, viewingID uuid.UUID) error {
	if middleware.IsAdmin(c) {
		return nil
	}

	viewing, err := h.scheduling.GetByID(c.Context(), viewingID)
	if err != nil {
		return err
	}

	callerID := middleware.GetCurrentUserID(c)
	if viewing.UserID == callerID {
		return nil
	}

	ownerID, found, err := h.directory.PropertyOwner(c.Context(), viewing.PropertyID)
	if err != nil {
		return err
	}
	if found && ownerID == callerID {
		return nil
	}

	return middleware.Forbidden("Only the requester or the property owner can cancel this viewing")
}

func statusQuery(c *fiber.Ctx) (*domain.ViewingStatus, error) {
	s := c.Query("status")
	if s == "" {
		return nil, nil
	}
	status := domain.ViewingStatus(s)
	if !status.IsValid() {
		return nil, middleware.BadRequest("Invalid viewing status")
	}
	return &status, nil
}

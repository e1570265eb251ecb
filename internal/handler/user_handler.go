package handler

import (
	"github.com/gofiber/fiber/v2"

	"propview-backend/internal/domain"
	"propview-backend/internal/middleware"
	"propview-backend/internal/service/searchhistory"
	"propview-backend/internal/service/user"
)

type UserHandler struct {
	userService    user.Service
	historyService searchhistory.Service
}

func NewUserHandler(userService user.Service, historyService searchhistory.Service) *UserHandler {
	return &UserHandler{
		userService:    userService,
		historyService: historyService,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	profile, err := h.userService.UpdateProfile(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *UserHandler) GetSearchHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	history, err := h.historyService.ListByUser(c.Context(), middleware.GetCurrentUserID(c), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(history)
}

func (h *UserHandler) ClearSearchHistory(c *fiber.Ctx) error {
	if err := h.historyService.Clear(c.Context(), middleware.GetCurrentUserID(c)); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/middleware"
	"propview-backend/internal/service/favorite"
)

type FavoriteHandler struct {
	favoriteService favorite.Service
}

func NewFavoriteHandler(favoriteService favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var input domain.AddFavoriteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	fav, err := h.favoriteService.Add(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fav)
}

func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	if err := h.favoriteService.Remove(c.Context(), middleware.GetCurrentUserID(c), propertyID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.favoriteService.ListByUser(c.Context(), middleware.GetCurrentUserID(c), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *FavoriteHandler) Check(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	favorited, err := h.favoriteService.IsFavorited(c.Context(), middleware.GetCurrentUserID(c), propertyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"favorited": favorited})
}

func (h *FavoriteHandler) Count(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	count, err := h.favoriteService.CountByProperty(c.Context(), propertyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"property_id": propertyID, "count": count})
}

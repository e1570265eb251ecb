package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"propview-backend/internal/domain"
	"propview-backend/internal/middleware"
	"propview-backend/internal/service/property"
	"propview-backend/internal/service/searchhistory"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

type PropertyHandler struct {
	propertyService property.Service
	historyService  searchhistory.Service
}

func NewPropertyHandler(propertyService property.Service, historyService searchhistory.Service) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		historyService:  historyService,
	}
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	prop, err := h.propertyService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(prop)
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	prop, err := h.propertyService.GetByID(c.Context(), propertyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(prop)
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	params := getPaginationParams(c)

	result, err := h.propertyService.List(c.Context(), params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

// Search filters active listings. When the caller is authenticated
// the search criteria are recorded to their history.
func (h *PropertyHandler) Search(c *fiber.Ctx) error {
	var filter domain.PropertySearchFilter
	if err := c.QueryParser(&filter); err != nil {
		return middleware.BadRequest("Invalid search parameters")
	}
	params := getPaginationParams(c)

	result, err := h.propertyService.Search(c.Context(), filter, params)
	if err != nil {
		return err
	}

	// history is best effort, the search result still stands
	if user := middleware.GetCurrentUser(c); user != nil {
		_ = h.historyService.Record(c.Context(), user.ID, filter, result.TotalItems)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	var input domain.UpdatePropertyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user := middleware.GetCurrentUser(c)
	prop, err := h.propertyService.Update(c.Context(), propertyID, user.ID, user.Role, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(prop)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	user := middleware.GetCurrentUser(c)
	if err := h.propertyService.Delete(c.Context(), propertyID, user.ID, user.Role); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *PropertyHandler) UploadImage(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("propertyId"))
	if err != nil {
		return middleware.BadRequest("Invalid property ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("No file uploaded")
	}
	if fileHeader.Size > maxImageSize {
		return middleware.BadRequest("File size exceeds the 10MB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read uploaded file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	isPrimary := c.FormValue("is_primary") == "true"

	user := middleware.GetCurrentUser(c)
	image, err := h.propertyService.UploadImage(c.Context(), propertyID, user.ID, user.Role,
		fileHeader.Filename, mimeType, fileHeader.Size, file, isPrimary)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

func (h *PropertyHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return middleware.BadRequest("Invalid image ID")
	}

	user := middleware.GetCurrentUser(c)
	if err := h.propertyService.DeleteImage(c.Context(), imageID, user.ID, user.Role); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

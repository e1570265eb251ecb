package handler

import (
	"github.com/gofiber/fiber/v2"

	"propview-backend/internal/domain"
	"propview-backend/internal/service"
)

type Handlers struct {
	Auth      *AuthHandler
	User      *UserHandler
	Property  *PropertyHandler
	Viewing   *ViewingHandler
	Favorite  *FavoriteHandler
	Dashboard *DashboardHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:      NewAuthHandler(services.Auth),
		User:      NewUserHandler(services.User, services.SearchHistory),
		Property:  NewPropertyHandler(services.Property, services.SearchHistory),
		Viewing:   NewViewingHandler(services.Scheduling, services.Lifecycle, services.Directory),
		Favorite:  NewFavoriteHandler(services.Favorite),
		Dashboard: NewDashboardHandler(services.Dashboard, services.Audit),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"propview-backend/internal/config"
	"propview-backend/internal/domain"
	"propview-backend/internal/handler"
	"propview-backend/internal/middleware"
	"propview-backend/internal/repository"
	"propview-backend/internal/service"
	"propview-backend/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/forgot-password", h.Auth.ForgotPassword)
	authGroup.Post("/reset-password", h.Auth.ResetPassword)
	authGroup.Get("/verify-email", h.Auth.VerifyEmail)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Post("/auth/logout", h.Auth.Logout)

	users := protected.Group("/users")
	users.Get("/me", h.User.GetProfile)
	users.Put("/me", h.User.UpdateProfile)
	users.Get("/me/search-history", h.User.GetSearchHistory)
	users.Delete("/me/search-history", h.User.ClearSearchHistory)

	properties := protected.Group("/properties")
	properties.Post("/", middleware.RequireRole(domain.RoleAgent), h.Property.Create)
	properties.Get("/", h.Property.List)
	properties.Get("/search", h.Property.Search)
	properties.Get("/:propertyId", h.Property.Get)
	properties.Put("/:propertyId", middleware.RequireRole(domain.RoleAgent), h.Property.Update)
	properties.Delete("/:propertyId", middleware.RequireRole(domain.RoleAgent), h.Property.Delete)
	properties.Post("/:propertyId/images", middleware.RequireRole(domain.RoleAgent), h.Property.UploadImage)
	properties.Delete("/images/:imageId", middleware.RequireRole(domain.RoleAgent), h.Property.DeleteImage)
	properties.Get("/:propertyId/viewings", h.Viewing.ListByProperty)
	properties.Get("/:propertyId/viewings/confirmed-count", h.Viewing.CountConfirmed)
	properties.Get("/:propertyId/favorites/count", h.Favorite.Count)

	viewings := protected.Group("/viewings")
	viewings.Post("/", h.Viewing.Schedule)
	viewings.Get("/me", h.Viewing.ListMine)
	viewings.Get("/owner", h.Viewing.ListForOwner)
	viewings.Get("/calendar", h.Viewing.ListInDateRange)
	viewings.Get("/:viewingId", h.Viewing.Get)
	viewings.Post("/:viewingId/confirm", h.Viewing.Confirm)
	viewings.Post("/:viewingId/reject", h.Viewing.Reject)
	viewings.Post("/:viewingId/complete", h.Viewing.Complete)
	viewings.Post("/:viewingId/cancel", h.Viewing.Cancel)
	viewings.Delete("/:viewingId", middleware.RequireRole(domain.RoleAdmin), h.Viewing.Delete)

	favorites := protected.Group("/favorites")
	favorites.Post("/", h.Favorite.Add)
	favorites.Get("/", h.Favorite.List)
	favorites.Get("/:propertyId", h.Favorite.Check)
	favorites.Delete("/:propertyId", h.Favorite.Remove)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/owner", h.Dashboard.OwnerStats)
	dashboard.Get("/activities", middleware.RequireRole(domain.RoleAdmin), h.Dashboard.RecentActivities)
}

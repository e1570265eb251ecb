package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"propview-backend/internal/config"
	"propview-backend/internal/domain"
	"propview-backend/internal/repository"
	"propview-backend/internal/service/audit"
	"propview-backend/internal/service/auth"
	"propview-backend/internal/service/dashboard"
	"propview-backend/internal/service/directory"
	"propview-backend/internal/service/email"
	"propview-backend/internal/service/favorite"
	"propview-backend/internal/service/lifecycle"
	"propview-backend/internal/service/property"
	"propview-backend/internal/service/scheduling"
	"propview-backend/internal/service/searchhistory"
	"propview-backend/internal/service/user"
)

type Services struct {
	Auth          auth.Service
	User          user.Service
	Directory     directory.Service
	Property      property.Service
	Scheduling    scheduling.Service
	Lifecycle     lifecycle.Service
	Favorite      favorite.Service
	SearchHistory searchhistory.Service
	Dashboard     dashboard.Service
	Audit         audit.Service
	Email         email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, emailService, cfg)
	userService := user.NewService(repos.User)
	directoryService := directory.NewService(repos.User, repos.Property)
	propertyService := property.NewService(repos.Property, repos.AuditLog, minioClient, redis, cfg)
	schedulingService := scheduling.NewService(repos.Viewing, directoryService, domain.BlockingStatuses)
	lifecycleService := lifecycle.NewService(repos.Viewing, directoryService, repos.AuditLog)
	favoriteService := favorite.NewService(repos.Favorite, directoryService)
	searchHistoryService := searchhistory.NewService(repos.SearchHistory)
	dashboardService := dashboard.NewService(repos.Viewing, directoryService, redis)
	auditService := audit.NewService(repos.AuditLog)

	return &Services{
		Auth:          authService,
		User:          userService,
		Directory:     directoryService,
		Property:      propertyService,
		Scheduling:    schedulingService,
		Lifecycle:     lifecycleService,
		Favorite:      favoriteService,
		SearchHistory: searchHistoryService,
		Dashboard:     dashboardService,
		Audit:         auditService,
		Email:         emailService,
	}
}

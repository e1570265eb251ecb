package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User          UserRepository
	Property      PropertyRepository
	Viewing       ViewingRepository
	Favorite      FavoriteRepository
	SearchHistory SearchHistoryRepository
	AuditLog      AuditLogRepository
	Session       SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Property:      NewPropertyRepository(db),
		Viewing:       NewViewingRepository(db),
		Favorite:      NewFavoriteRepository(db),
		SearchHistory: NewSearchHistoryRepository(db),
		AuditLog:      NewAuditLogRepository(db),
		Session:       NewSessionRepository(db),
	}
}

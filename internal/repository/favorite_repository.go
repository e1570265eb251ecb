package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"propview-backend/internal/domain"
)

type FavoriteRepository interface {
	Create(ctx context.Context, fav *domain.Favorite) error
	ExistsByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
	GetByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (*domain.Favorite, error)
	FindByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Favorite, int64, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, fav *domain.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, property_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`
	return r.db.QueryRowxContext(ctx, query,
		fav.ID, fav.UserID, fav.PropertyID, fav.Notes,
	).Scan(&fav.CreatedAt)
}

func (r *favoriteRepository) ExistsByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, userID, propertyID)
	return exists, err
}

func (r *favoriteRepository) GetByUserAndProperty(ctx context.Context, userID, propertyID uuid.UUID) (*domain.Favorite, error) {
	var fav domain.Favorite
	query := `SELECT * FROM favorites WHERE user_id = $1 AND property_id = $2`
	err := r.db.GetContext(ctx, &fav, query, userID, propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID, params domain.PaginationParams) ([]domain.Favorite, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	favorites := []domain.Favorite{}
	query := `SELECT * FROM favorites WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &favorites, query, userID, params.PageSize, params.Offset())
	return favorites, total, err
}

func (r *favoriteRepository) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM favorites WHERE property_id = $1`
	err := r.db.GetContext(ctx, &count, query, propertyID)
	return count, err
}

func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	return err
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"propview-backend/internal/domain"
)

type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Property, int64, error)
	Search(ctx context.Context, filter domain.PropertySearchFilter, params domain.PaginationParams) ([]domain.Property, int64, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdatePropertyInput) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddImage(ctx context.Context, img *domain.PropertyImage) error
	GetImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error)
	GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (id, owner_id, title, description, property_type, listing_type, status,
		                        price, address, city, state, zip_code, bedrooms, bathrooms, square_feet)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Description, p.PropertyType, p.ListingType, p.Status,
		p.Price, p.Address, p.City, p.State, p.ZipCode, p.Bedrooms, p.Bathrooms, p.SquareFeet,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	var p domain.Property
	query := `SELECT * FROM properties WHERE id = $1`
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *propertyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM properties WHERE id = $1)`
	err := r.db.GetContext(ctx, &exists, query, id)
	return exists, err
}

func (r *propertyRepository) GetOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, bool, error) {
	var ownerID uuid.UUID
	query := `SELECT owner_id FROM properties WHERE id = $1`
	err := r.db.GetContext(ctx, &ownerID, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return ownerID, true, nil
}

func (r *propertyRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Property, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM properties`); err != nil {
		return nil, 0, err
	}

	properties := []domain.Property{}
	query := `SELECT * FROM properties ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &properties, query, params.PageSize, params.Offset())
	return properties, total, err
}

func (r *propertyRepository) Search(ctx context.Context, filter domain.PropertySearchFilter, params domain.PaginationParams) ([]domain.Property, int64, error) {
	params.Validate()

	conditions := []string{"status = 'ACTIVE'"}
	args := []interface{}{}

	add := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.City != nil {
		add("LOWER(city) = LOWER($%d)", *filter.City)
	}
	if filter.State != nil {
		add("LOWER(state) = LOWER($%d)", *filter.State)
	}
	if filter.PropertyType != nil {
		add("property_type = $%d", *filter.PropertyType)
	}
	if filter.ListingType != nil {
		add("listing_type = $%d", *filter.ListingType)
	}
	if filter.MinPrice != nil {
		add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		add("price <= $%d", *filter.MaxPrice)
	}
	if filter.MinBedrooms != nil {
		add("bedrooms >= $%d", *filter.MinBedrooms)
	}
	if filter.MaxBedrooms != nil {
		add("bedrooms <= $%d", *filter.MaxBedrooms)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM properties WHERE ` + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, params.PageSize, params.Offset())
	query := fmt.Sprintf(
		`SELECT * FROM properties WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	properties := []domain.Property{}
	err := r.db.SelectContext(ctx, &properties, query, args...)
	return properties, total, err
}

func (r *propertyRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePropertyInput) error {
	query := `
		UPDATE properties
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    status = COALESCE($4, status),
		    price = COALESCE($5, price),
		    bedrooms = COALESCE($6, bedrooms),
		    bathrooms = COALESCE($7, bathrooms),
		    square_feet = COALESCE($8, square_feet),
		    updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id,
		input.Title, input.Description, input.Status, input.Price,
		input.Bedrooms, input.Bathrooms, input.SquareFeet,
	)
	return err
}

func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	return err
}

func (r *propertyRepository) AddImage(ctx context.Context, img *domain.PropertyImage) error {
	query := `
		INSERT INTO property_images (id, property_id, storage_path, file_name, mime_type, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`
	return r.db.QueryRowxContext(ctx, query,
		img.ID, img.PropertyID, img.StoragePath, img.FileName, img.MimeType, img.IsPrimary,
	).Scan(&img.CreatedAt)
}

func (r *propertyRepository) GetImages(ctx context.Context, propertyID uuid.UUID) ([]domain.PropertyImage, error) {
	images := []domain.PropertyImage{}
	query := `SELECT * FROM property_images WHERE property_id = $1 ORDER BY is_primary DESC, created_at ASC`
	err := r.db.SelectContext(ctx, &images, query, propertyID)
	return images, err
}

func (r *propertyRepository) GetImage(ctx context.Context, id uuid.UUID) (*domain.PropertyImage, error) {
	var img domain.PropertyImage
	query := `SELECT * FROM property_images WHERE id = $1`
	err := r.db.GetContext(ctx, &img, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *propertyRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM property_images WHERE id = $1`, id)
	return err
}

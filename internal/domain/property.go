package domain

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyActive        PropertyStatus = "ACTIVE"
	PropertyPending       PropertyStatus = "PENDING"
	PropertySold          PropertyStatus = "SOLD"
	PropertyRented        PropertyStatus = "RENTED"
	PropertyInactive      PropertyStatus = "INACTIVE"
	PropertyUnderContract PropertyStatus = "UNDER_CONTRACT"
)

func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyActive, PropertyPending, PropertySold, PropertyRented, PropertyInactive, PropertyUnderContract:
		return true
	}
	return false
}

type ListingType string

const (
	ListingSale ListingType = "SALE"
	ListingRent ListingType = "RENT"
)

type Property struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	OwnerID      uuid.UUID      `json:"owner_id" db:"owner_id"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description,omitempty" db:"description"`
	PropertyType string         `json:"property_type" db:"property_type"`
	ListingType  ListingType    `json:"listing_type" db:"listing_type"`
	Status       PropertyStatus `json:"status" db:"status"`
	Price        float64        `json:"price" db:"price"`
	Address      string         `json:"address" db:"address"`
	City         string         `json:"city" db:"city"`
	State        string         `json:"state" db:"state"`
	ZipCode      *string        `json:"zip_code,omitempty" db:"zip_code"`
	Bedrooms     int            `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int            `json:"bathrooms" db:"bathrooms"`
	SquareFeet   *int           `json:"square_feet,omitempty" db:"square_feet"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`

	Images []PropertyImage `json:"images,omitempty" db:"-"`
}

type PropertyImage struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PropertyID  uuid.UUID `json:"property_id" db:"property_id"`
	StoragePath string    `json:"-" db:"storage_path"`
	FileName    string    `json:"file_name" db:"file_name"`
	MimeType    string    `json:"mime_type" db:"mime_type"`
	IsPrimary   bool      `json:"is_primary" db:"is_primary"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	URL string `json:"url" db:"-"`
}

type CreatePropertyInput struct {
	Title        string      `json:"title" validate:"required,max=150"`
	Description  *string     `json:"description,omitempty"`
	PropertyType string      `json:"property_type" validate:"required"`
	ListingType  ListingType `json:"listing_type" validate:"required,oneof=SALE RENT"`
	Price        float64     `json:"price" validate:"required,gt=0"`
	Address      string      `json:"address" validate:"required"`
	City         string      `json:"city" validate:"required"`
	State        string      `json:"state" validate:"required"`
	ZipCode      *string     `json:"zip_code,omitempty"`
	Bedrooms     int         `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int         `json:"bathrooms" validate:"gte=0"`
	SquareFeet   *int        `json:"square_feet,omitempty"`
}

type UpdatePropertyInput struct {
	Title       *string         `json:"title,omitempty" validate:"omitempty,max=150"`
	Description *string         `json:"description,omitempty"`
	Status      *PropertyStatus `json:"status,omitempty"`
	Price       *float64        `json:"price,omitempty" validate:"omitempty,gt=0"`
	Bedrooms    *int            `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *int            `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	SquareFeet  *int            `json:"square_feet,omitempty"`
}

type PropertySearchFilter struct {
	City         *string      `json:"city,omitempty" query:"city"`
	State        *string      `json:"state,omitempty" query:"state"`
	PropertyType *string      `json:"property_type,omitempty" query:"property_type"`
	ListingType  *ListingType `json:"listing_type,omitempty" query:"listing_type"`
	MinPrice     *float64     `json:"min_price,omitempty" query:"min_price"`
	MaxPrice     *float64     `json:"max_price,omitempty" query:"max_price"`
	MinBedrooms  *int         `json:"min_bedrooms,omitempty" query:"min_bedrooms"`
	MaxBedrooms  *int         `json:"max_bedrooms,omitempty" query:"max_bedrooms"`
}

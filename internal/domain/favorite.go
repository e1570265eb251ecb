package domain

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	PropertyID uuid.UUID `json:"property_id" db:"property_id"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	Property *Property `json:"property,omitempty" db:"-"`
}

type AddFavoriteInput struct {
	PropertyID uuid.UUID `json:"property_id" validate:"required"`
	Notes      *string   `json:"notes,omitempty" validate:"omitempty,max=500"`
}

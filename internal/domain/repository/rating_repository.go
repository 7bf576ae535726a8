package repository

import (
	"context"

	"ngopi/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingRepository defines the operations the rating store must support.
type RatingRepository interface {
	// AddRating appends a new rating row.
	AddRating(ctx context.Context, rating *entity.Rating) error

	// GetCafeRatings retrieves every valid rating for the cafe, in table
	// order. Rows for other cafes and malformed rows are dropped.
	GetCafeRatings(ctx context.Context, cafeID uuid.UUID) ([]*entity.Rating, error)
}

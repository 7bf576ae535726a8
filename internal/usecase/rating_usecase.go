package usecase

import (
	"context"

	"ngopi/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingInput represents the client-supplied fields of a rating submission.
type RatingInput struct {
	Metrics   entity.RatingMetrics `json:"metrics"`
	Comment   string               `json:"comment"`
	Photos    []string             `json:"photos"`
	LoveGiven bool                 `json:"love_given"`
}

// RatingUsecase defines the interface for rating use cases
type RatingUsecase interface {
	// AddRating stores a session's rating of a cafe. A rating with LoveGiven
	// also bumps the cafe's love count as a best-effort follow-up.
	AddRating(ctx context.Context, cafeID uuid.UUID, sessionID string, input *RatingInput) (*entity.Rating, error)

	// GetCafeRatings retrieves all ratings of one cafe, newest last
	GetCafeRatings(ctx context.Context, cafeID uuid.UUID) ([]*entity.Rating, error)
}

package sheets

import (
	"context"

	"ngopi/internal/domain/entity"
	"ngopi/internal/domain/repository"

	"github.com/google/uuid"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	client *Client
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(client *Client) repository.RatingRepository {
	return &ratingRepository{
		client: client,
	}
}

// AddRating validates and appends one rating row.
func (repo *ratingRepository) AddRating(ctx context.Context, rating *entity.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	row, err := fromRatingDomain(rating)
	if err != nil {
		return err
	}

	return repo.client.appendRows(ctx, repo.client.ratingRange, [][]any{row.Cells()})
}

// GetCafeRatings reads the whole rating range and keeps the rows whose cafe
// ID matches exactly, in sheet order. Malformed rows are dropped and logged,
// never surfaced.
func (repo *ratingRepository) GetCafeRatings(ctx context.Context, cafeID uuid.UUID) ([]*entity.Rating, error) {
	rows, err := repo.client.readRange(ctx, repo.client.ratingRange)
	if err != nil {
		return nil, err
	}

	ratings, issues := decodeRatingRows(rows)
	repo.client.logRowIssues(ctx, "rating", issues)

	matched := make([]*entity.Rating, 0, len(ratings))
	for _, rating := range ratings {
		if rating.CafeID == cafeID {
			matched = append(matched, rating)
		}
	}

	return matched, nil
}

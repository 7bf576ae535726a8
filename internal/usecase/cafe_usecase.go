package usecase

import (
	"context"

	"ngopi/internal/domain/entity"

	"github.com/google/uuid"
)

// CafeInput represents the client-supplied fields of a cafe listing.
// Identity, community state and timestamps are assigned by the service.
type CafeInput struct {
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Location  entity.Location `json:"location"`
	Metrics   entity.Metrics  `json:"metrics"`
	Amenities []string        `json:"amenities"`
	Hours     entity.Hours    `json:"hours"`
	Images    []entity.Image  `json:"images"`
}

// CafeUsecase defines the interface for cafe discovery use cases
type CafeUsecase interface {
	// GetCafes retrieves cafes matching the filter. Results are served from
	// cache while fresh and refetched with retry when stale.
	GetCafes(ctx context.Context, filter entity.CafeFilter) ([]*entity.Cafe, error)

	// GetCafeByID retrieves a single cafe listing
	GetCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)

	// AddCafe creates a new listing contributed by an anonymous session
	AddCafe(ctx context.Context, contributorID uuid.UUID, input *CafeInput) (*entity.Cafe, error)

	// BatchAddCafes imports curator-vetted listings in one store call
	BatchAddCafes(ctx context.Context, inputs []*CafeInput) ([]*entity.Cafe, error)

	// UpdateCafe overwrites an existing listing in full
	UpdateCafe(ctx context.Context, cafe *entity.Cafe) (*entity.Cafe, error)

	// VerifyCafe moves a listing to the given verification status
	VerifyCafe(ctx context.Context, id uuid.UUID, status string) (*entity.Cafe, error)

	// ShareQR renders the share QR code PNG for a cafe
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)

	// RateLimitInfo reports the store's current request window
	RateLimitInfo() entity.RateLimitInfo
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ngopi/internal/domain/entity"
	"ngopi/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cafe persistence.
var (
	// ErrCafeNotFound is returned when no row matches the requested cafe ID.
	ErrCafeNotFound = errors.New("cafe not found")
)

// CafeRepository defines the operations the cafe store must support. The
// backing table has no server-side querying; implementations read the full
// range and filter in memory.
type CafeRepository interface {
	// GetCafes retrieves every valid cafe matching the filter. An empty
	// backing range yields an empty slice, not an error.
	GetCafes(ctx context.Context, filter entity.CafeFilter) ([]*entity.Cafe, error)

	// GetCafeByID retrieves a single cafe.
	// Returns ErrCafeNotFound if no row carries the ID.
	GetCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error)

	// AddCafe appends a new cafe row.
	AddCafe(ctx context.Context, cafe *entity.Cafe) error

	// BatchAddCafes appends all cafes in one call. An empty slice is a no-op
	// that issues no network call and consumes no rate-limit budget.
	BatchAddCafes(ctx context.Context, cafes []*entity.Cafe) error

	// UpdateCafe overwrites the row whose ID matches cafe.ID. The row is
	// re-located by a fresh read on every call; its position is its identity.
	// Returns ErrCafeNotFound if the ID is absent.
	UpdateCafe(ctx context.Context, cafe *entity.Cafe) error

	// RateLimitInfo reports the store's current request window.
	RateLimitInfo() entity.RateLimitInfo
}

package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ngopi/internal/domain/entity"
	"ngopi/internal/domain/repository"
	"ngopi/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// cafeRepository implements the repository.CafeRepository interface.
type cafeRepository struct {
	client *Client
}

// NewCafeRepository is the constructor for cafeRepository.
func NewCafeRepository(client *Client) repository.CafeRepository {
	return &cafeRepository{
		client: client,
	}
}

// GetCafes reads the full cafe range, decodes what it can, and applies the
// filter in memory. An untouched range yields an empty slice.
func (repo *cafeRepository) GetCafes(ctx context.Context, filter entity.CafeFilter) ([]*entity.Cafe, error) {
	rows, err := repo.client.readRange(ctx, repo.client.cafeRange)
	if err != nil {
		return nil, err
	}

	cafes, issues := decodeCafeRows(rows)
	repo.client.logRowIssues(ctx, "cafe", issues)

	if filter.Empty() {
		return cafes, nil
	}

	matched := make([]*entity.Cafe, 0, len(cafes))
	for _, cafe := range cafes {
		if matchesFilter(cafe, filter) {
			matched = append(matched, cafe)
		}
	}

	return matched, nil
}

// GetCafeByID reads the full range and picks the matching row.
func (repo *cafeRepository) GetCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	cafes, err := repo.GetCafes(ctx, entity.CafeFilter{})
	if err != nil {
		return nil, err
	}

	for _, cafe := range cafes {
		if cafe.ID == id {
			return cafe, nil
		}
	}

	return nil, repository.ErrCafeNotFound
}

// AddCafe validates and appends one cafe row.
func (repo *cafeRepository) AddCafe(ctx context.Context, cafe *entity.Cafe) error {
	if err := cafe.Validate(); err != nil {
		return err
	}

	row, err := fromCafeDomain(cafe)
	if err != nil {
		return err
	}

	return repo.client.appendRows(ctx, repo.client.cafeRange, [][]any{row.Cells()})
}

// BatchAddCafes appends every cafe in one call. An empty batch is a no-op:
// no API call and no rate-limit slot.
func (repo *cafeRepository) BatchAddCafes(ctx context.Context, cafes []*entity.Cafe) error {
	if len(cafes) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(cafes))
	for _, cafe := range cafes {
		if err := cafe.Validate(); err != nil {
			return err
		}

		row, err := fromCafeDomain(cafe)
		if err != nil {
			return err
		}

		rows = append(rows, row.Cells())
	}

	return repo.client.appendRows(ctx, repo.client.cafeRange, rows)
}

// UpdateCafe re-locates the cafe's row by ID with a fresh read, then
// overwrites that row in place. The sheet has no row identity beyond
// position, so the read and the write race any concurrent writer; the last
// write wins. No call is issued when the ID is absent.
func (repo *cafeRepository) UpdateCafe(ctx context.Context, cafe *entity.Cafe) error {
	if err := cafe.Validate(); err != nil {
		return err
	}

	row, err := fromCafeDomain(cafe)
	if err != nil {
		return err
	}

	rows, err := repo.client.readRange(ctx, repo.client.cafeRange)
	if err != nil {
		return err
	}

	rowIndex := -1
	wantID := cafe.ID.String()
	for i, cells := range rows {
		if len(cells) > 0 && model.CellText(cells[0]) == wantID {
			rowIndex = i

			break
		}
	}
	if rowIndex == -1 {
		return repository.ErrCafeNotFound
	}

	return repo.client.updateRows(ctx, rowRange(repo.client.cafeRange, rowIndex), [][]any{row.Cells()})
}

// RateLimitInfo reports the shared admission window.
func (repo *cafeRepository) RateLimitInfo() entity.RateLimitInfo {
	return repo.client.limiter.Info()
}

// rowRange addresses one absolute sheet row inside a configured window such
// as "Cafes!A2:R1000". Index is zero-based within the fetched values; the
// window's first row anchors the offset.
func rowRange(window string, index int) string {
	sheet, bounds, _ := strings.Cut(window, "!")
	start, end, _ := strings.Cut(bounds, ":")
	startCol, startRow := splitCellRef(start)
	endCol, _ := splitCellRef(end)
	rowNumber := startRow + index

	return fmt.Sprintf("%s!%s%d:%s%d", sheet, startCol, rowNumber, endCol, rowNumber)
}

// splitCellRef splits an A1-notation reference like "R1000" into its column
// letters and row number.
func splitCellRef(ref string) (string, int) {
	split := 0
	for split < len(ref) && ref[split] >= 'A' && ref[split] <= 'Z' {
		split++
	}

	row, _ := strconv.Atoi(ref[split:])

	return ref[:split], row
}

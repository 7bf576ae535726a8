package sheets

import (
	"encoding/json"
	"strconv"
	"time"

	"ngopi/internal/domain/entity"
	"ngopi/internal/errors"
	"ngopi/internal/infra/persistence/model"

	"github.com/google/uuid"
)

// RowIssue records why one row in a fetched batch failed to decode. Issues
// are diagnostics; they never abort the batch.
type RowIssue struct {
	Index int // zero-based position within the fetched range
	Err   error
}

// decodeCafeRows maps each raw row independently. Structurally blank rows
// are skipped silently; rows that are too short, carry malformed values, or
// fail schema validation are skipped with one issue each. Order is preserved.
func decodeCafeRows(values [][]any) ([]*entity.Cafe, []RowIssue) {
	cafes := make([]*entity.Cafe, 0, len(values))

	var issues []RowIssue
	for i, cells := range values {
		if model.IsBlankRow(cells) {
			continue
		}

		row, err := model.CafeRowFromCells(cells)
		if err != nil {
			issues = append(issues, RowIssue{Index: i, Err: err})

			continue
		}

		cafe, err := toCafeDomain(row)
		if err != nil {
			issues = append(issues, RowIssue{Index: i, Err: err})

			continue
		}

		cafes = append(cafes, cafe)
	}

	return cafes, issues
}

// decodeRatingRows is the rating counterpart of decodeCafeRows.
func decodeRatingRows(values [][]any) ([]*entity.Rating, []RowIssue) {
	ratings := make([]*entity.Rating, 0, len(values))

	var issues []RowIssue
	for i, cells := range values {
		if model.IsBlankRow(cells) {
			continue
		}

		row, err := model.RatingRowFromCells(cells)
		if err != nil {
			issues = append(issues, RowIssue{Index: i, Err: err})

			continue
		}

		rating, err := toRatingDomain(row)
		if err != nil {
			issues = append(issues, RowIssue{Index: i, Err: err})

			continue
		}

		ratings = append(ratings, rating)
	}

	return ratings, issues
}

// --- Mapper Functions ---

// toCafeDomain parses one sheet row into a validated Cafe. It fails on the
// first malformed value and never returns a partially decoded entity.
func toCafeDomain(row *model.CafeRow) (*entity.Cafe, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse cafe id")
	}

	latitude, err := strconv.ParseFloat(row.Latitude, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse latitude")
	}

	longitude, err := strconv.ParseFloat(row.Longitude, 64)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse longitude")
	}

	comfortRating, err := strconv.Atoi(row.ComfortRating)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse comfort rating")
	}

	loveCount, err := strconv.Atoi(row.LoveCount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse love count")
	}

	contributorID, err := parseOptionalUUID(row.ContributorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse contributor id")
	}

	amenities, err := parseJSONCell[[]string](row.Amenities)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse amenities")
	}

	hours, err := parseJSONCell[entity.Hours](row.OperatingHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse operating hours")
	}

	images, err := parseJSONCell[[]entity.Image](row.Images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse images")
	}

	createdAt, err := parseTimeCell(row.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse created at")
	}

	updatedAt, err := parseTimeCell(row.UpdatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse updated at")
	}

	cafe := &entity.Cafe{
		ID:      id,
		Name:    row.Name,
		Address: row.Address,
		Location: entity.Location{
			Latitude:  latitude,
			Longitude: longitude,
			City:      row.City,
			District:  row.District,
		},
		Metrics: entity.Metrics{
			WifiSpeed:     row.WifiSpeed,
			ComfortRating: comfortRating,
			NoiseLevel:    row.NoiseLevel,
		},
		Amenities: amenities,
		Hours:     hours,
		Images:    images,
		Community: entity.Community{
			LoveCount:          loveCount,
			ContributorID:      contributorID,
			VerificationStatus: row.VerificationStatus,
		},
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if err := cafe.Validate(); err != nil {
		return nil, err
	}

	return cafe, nil
}

// fromCafeDomain serializes a cafe into its fixed sheet row. Absent optional
// values become empty cells.
func fromCafeDomain(cafe *entity.Cafe) (*model.CafeRow, error) {
	amenities, err := encodeJSONCell(cafe.Amenities, len(cafe.Amenities) == 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode amenities")
	}

	emptyHours := cafe.Hours.Schedule == nil && !cafe.Hours.Is24Hours
	hours, err := encodeJSONCell(cafe.Hours, emptyHours)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode operating hours")
	}

	images, err := encodeJSONCell(cafe.Images, len(cafe.Images) == 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode images")
	}

	return &model.CafeRow{
		ID:                 cafe.ID.String(),
		Name:               cafe.Name,
		Address:            cafe.Address,
		Latitude:           strconv.FormatFloat(cafe.Location.Latitude, 'f', -1, 64),
		Longitude:          strconv.FormatFloat(cafe.Location.Longitude, 'f', -1, 64),
		City:               cafe.Location.City,
		District:           cafe.Location.District,
		WifiSpeed:          cafe.Metrics.WifiSpeed,
		ComfortRating:      strconv.Itoa(cafe.Metrics.ComfortRating),
		NoiseLevel:         cafe.Metrics.NoiseLevel,
		Amenities:          amenities,
		OperatingHours:     hours,
		Images:             images,
		LoveCount:          strconv.Itoa(cafe.Community.LoveCount),
		ContributorID:      formatOptionalUUID(cafe.Community.ContributorID),
		VerificationStatus: cafe.Community.VerificationStatus,
		CreatedAt:          formatTimeCell(cafe.CreatedAt),
		UpdatedAt:          formatTimeCell(cafe.UpdatedAt),
	}, nil
}

// toRatingDomain parses one sheet row into a validated Rating. Empty metric
// cells decode to omitted fields, not zero values.
func toRatingDomain(row *model.RatingRow) (*entity.Rating, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rating id")
	}

	cafeID, err := uuid.Parse(row.CafeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse cafe id")
	}

	var metrics entity.RatingMetrics
	if row.WifiSpeed != "" {
		metrics.WifiSpeed = &row.WifiSpeed
	}
	if row.ComfortRating != "" {
		comfort, err := strconv.Atoi(row.ComfortRating)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse comfort rating")
		}
		metrics.ComfortRating = &comfort
	}
	if row.NoiseLevel != "" {
		metrics.NoiseLevel = &row.NoiseLevel
	}

	photos, err := parseJSONCell[[]string](row.Photos)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse photos")
	}

	loveGiven, err := strconv.ParseBool(row.LoveGiven)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse love given")
	}

	ratedAt, err := parseTimeCell(row.RatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse rated at")
	}

	rating := &entity.Rating{
		ID:        id,
		CafeID:    cafeID,
		SessionID: row.SessionID,
		Metrics:   metrics,
		Comment:   row.Comment,
		Photos:    photos,
		LoveGiven: loveGiven,
		RatedAt:   ratedAt,
	}

	if err := rating.Validate(); err != nil {
		return nil, err
	}

	return rating, nil
}

// fromRatingDomain serializes a rating into its fixed sheet row.
func fromRatingDomain(rating *entity.Rating) (*model.RatingRow, error) {
	photos, err := encodeJSONCell(rating.Photos, len(rating.Photos) == 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode photos")
	}

	row := &model.RatingRow{
		ID:        rating.ID.String(),
		CafeID:    rating.CafeID.String(),
		SessionID: rating.SessionID,
		Comment:   rating.Comment,
		Photos:    photos,
		LoveGiven: strconv.FormatBool(rating.LoveGiven),
		RatedAt:   formatTimeCell(rating.RatedAt),
	}

	if rating.Metrics.WifiSpeed != nil {
		row.WifiSpeed = *rating.Metrics.WifiSpeed
	}
	if rating.Metrics.ComfortRating != nil {
		row.ComfortRating = strconv.Itoa(*rating.Metrics.ComfortRating)
	}
	if rating.Metrics.NoiseLevel != nil {
		row.NoiseLevel = *rating.Metrics.NoiseLevel
	}

	return row, nil
}

// parseJSONCell decodes a JSON-bearing cell. An empty cell yields the zero
// value of T so optional columns stay optional.
func parseJSONCell[T any](cell string) (T, error) {
	var value T
	if cell == "" {
		return value, nil
	}

	if err := json.Unmarshal([]byte(cell), &value); err != nil {
		return value, err
	}

	return value, nil
}

// encodeJSONCell is the inverse: zero-valued fields serialize to the empty
// cell instead of a JSON literal.
func encodeJSONCell[T any](value T, empty bool) (string, error) {
	if empty {
		return "", nil
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

func parseTimeCell(cell string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, cell)
}

func formatTimeCell(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptionalUUID(cell string) (uuid.UUID, error) {
	if cell == "" {
		return uuid.Nil, nil
	}

	return uuid.Parse(cell)
}

func formatOptionalUUID(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}

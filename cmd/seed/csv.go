package main

import (
	"strconv"
	"strings"
	"time"

	"ngopi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// csvHeader is the column order of a seed file. Amenities are pipe-separated
// inside their single column so the file stays one row per cafe.
var csvHeader = []string{
	"name", "address", "city", "district",
	"latitude", "longitude",
	"wifi_speed", "comfort_rating", "noise_level",
	"amenities", "is_24_hours",
}

const amenitySeparator = "|"

// parseRecord turns one CSV record into a cafe ready for the store. The cafe
// gets a fresh ID and starts unverified with no contributor.
func parseRecord(record []string) (*entity.Cafe, error) {
	if len(record) != len(csvHeader) {
		return nil, errors.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude")
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude")
	}

	comfort, err := strconv.Atoi(strings.TrimSpace(record[7]))
	if err != nil {
		return nil, errors.Wrap(err, "invalid comfort_rating")
	}

	is24Hours := false
	if v := strings.TrimSpace(record[10]); v != "" {
		is24Hours, err = strconv.ParseBool(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid is_24_hours")
		}
	}

	var amenities []string
	for _, a := range strings.Split(record[9], amenitySeparator) {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}

	now := time.Now().UTC()
	cafe := &entity.Cafe{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(record[0]),
		Address: strings.TrimSpace(record[1]),
		Location: entity.Location{
			Latitude:  lat,
			Longitude: lng,
			City:      strings.TrimSpace(record[2]),
			District:  strings.TrimSpace(record[3]),
		},
		Metrics: entity.Metrics{
			WifiSpeed:     strings.TrimSpace(record[6]),
			ComfortRating: comfort,
			NoiseLevel:    strings.TrimSpace(record[8]),
		},
		Amenities: amenities,
		Hours:     entity.Hours{Is24Hours: is24Hours},
		Community: entity.Community{
			VerificationStatus: entity.VerificationUnverified,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	return cafe, nil
}

// formatRecord renders one cafe as a CSV record in csvHeader order.
func formatRecord(cafe *entity.Cafe) []string {
	return []string{
		cafe.Name,
		cafe.Address,
		cafe.Location.City,
		cafe.Location.District,
		strconv.FormatFloat(cafe.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(cafe.Location.Longitude, 'f', -1, 64),
		cafe.Metrics.WifiSpeed,
		strconv.Itoa(cafe.Metrics.ComfortRating),
		cafe.Metrics.NoiseLevel,
		strings.Join(cafe.Amenities, amenitySeparator),
		strconv.FormatBool(cafe.Hours.Is24Hours),
	}
}

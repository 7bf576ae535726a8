package sheets

import (
	"strings"

	"ngopi/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// matchesFilter applies the AND of every present criterion. The backing
// table offers no server-side querying, so all filtering happens here on
// the decoded entities.
func matchesFilter(cafe *entity.Cafe, filter entity.CafeFilter) bool {
	if filter.City != "" && strings.TrimSpace(cafe.Location.City) != strings.TrimSpace(filter.City) {
		return false
	}

	if filter.District != "" && cafe.Location.District != filter.District {
		return false
	}

	if filter.WifiSpeed != "" && cafe.Metrics.WifiSpeed != filter.WifiSpeed {
		return false
	}

	if filter.MinComfortRating > 0 && cafe.Metrics.ComfortRating < filter.MinComfortRating {
		return false
	}

	if filter.NoiseLevel != "" && cafe.Metrics.NoiseLevel != filter.NoiseLevel {
		return false
	}

	if filter.VerificationStatus != "" && cafe.Community.VerificationStatus != filter.VerificationStatus {
		return false
	}

	if !hasAllAmenities(cafe.Amenities, filter.Amenities) {
		return false
	}

	if filter.Near != nil && !withinRadius(cafe, filter.Near) {
		return false
	}

	return true
}

// hasAllAmenities reports whether every wanted tag is present. Order carries
// no meaning on either side.
func hasAllAmenities(have, want []string) bool {
	if len(want) == 0 {
		return true
	}

	tags := make(map[string]struct{}, len(have))
	for _, tag := range have {
		tags[tag] = struct{}{}
	}

	for _, tag := range want {
		if _, ok := tags[tag]; !ok {
			return false
		}
	}

	return true
}

func withinRadius(cafe *entity.Cafe, near *entity.GeoFilter) bool {
	cafePoint := orb.Point{cafe.Location.Longitude, cafe.Location.Latitude}
	center := orb.Point{near.Longitude, near.Latitude}

	return geo.Distance(cafePoint, center) <= near.RadiusKM*1000
}

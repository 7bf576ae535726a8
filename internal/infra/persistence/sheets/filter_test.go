package sheets

import (
	"testing"

	"ngopi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestMatchesFilter_EmptyMatchesEverything(t *testing.T) {
	assert.True(t, matchesFilter(testCafe(), entity.CafeFilter{}))
}

func TestMatchesFilter_CityTrimsWhitespace(t *testing.T) {
	cafe := testCafe()
	cafe.Location.City = " Jakarta "

	assert.True(t, matchesFilter(cafe, entity.CafeFilter{City: "Jakarta"}))
	assert.False(t, matchesFilter(cafe, entity.CafeFilter{City: "Bandung"}))
}

func TestMatchesFilter_AmenitySubset(t *testing.T) {
	cafe := testCafe() // carries "stop kontak", "musala", "parkir"

	assert.True(t, matchesFilter(cafe, entity.CafeFilter{Amenities: []string{"musala"}}))
	assert.True(t, matchesFilter(cafe, entity.CafeFilter{Amenities: []string{"parkir", "stop kontak"}}))
	assert.False(t, matchesFilter(cafe, entity.CafeFilter{Amenities: []string{"parkir", "rooftop"}}))
}

func TestMatchesFilter_MinComfortRating(t *testing.T) {
	cafe := testCafe() // comfort 4

	assert.True(t, matchesFilter(cafe, entity.CafeFilter{MinComfortRating: 4}))
	assert.False(t, matchesFilter(cafe, entity.CafeFilter{MinComfortRating: 5}))
}

func TestMatchesFilter_CombinesCriteriaWithAnd(t *testing.T) {
	cafe := testCafe()

	match := entity.CafeFilter{
		City:               "Jakarta",
		WifiSpeed:          entity.WifiFast,
		NoiseLevel:         entity.NoiseModerate,
		VerificationStatus: entity.VerificationVerified,
	}
	assert.True(t, matchesFilter(cafe, match))

	// One failing criterion sinks the whole predicate.
	mismatch := match
	mismatch.WifiSpeed = entity.WifiFiber
	assert.False(t, matchesFilter(cafe, mismatch))
}

func TestMatchesFilter_NearRadius(t *testing.T) {
	jakarta := testCafe() // Kebayoran Baru, about 8 km from Monas

	bandung := testCafe()
	bandung.Location.Latitude = -6.9175
	bandung.Location.Longitude = 107.6191
	bandung.Location.City = "Bandung"

	monas := &entity.GeoFilter{Latitude: -6.1754, Longitude: 106.8272, RadiusKM: 10}

	assert.True(t, matchesFilter(jakarta, entity.CafeFilter{Near: monas}))
	assert.False(t, matchesFilter(bandung, entity.CafeFilter{Near: monas}))
}

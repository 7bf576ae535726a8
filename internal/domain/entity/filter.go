package entity

import (
	"fmt"
	"sort"
	"strings"
)

// CafeFilter narrows a cafe listing. Zero-valued fields are ignored; the
// present ones are AND-combined by the store.
type CafeFilter struct {
	City               string     `json:"city,omitempty"`                // Exact city match.
	District           string     `json:"district,omitempty"`            // Exact district match.
	WifiSpeed          string     `json:"wifi_speed,omitempty"`          // Exact wifi bucket match.
	MinComfortRating   int        `json:"min_comfort_rating,omitempty"`  // Lower bound on comfort rating.
	NoiseLevel         string     `json:"noise_level,omitempty"`         // Exact noise bucket match.
	Amenities          []string   `json:"amenities,omitempty"`           // Every listed amenity must be present.
	VerificationStatus string     `json:"verification_status,omitempty"` // Exact verification state match.
	Near               *GeoFilter `json:"near,omitempty"`                // Distance cut-off from a point.
}

// GeoFilter keeps cafes within RadiusKM of a point.
type GeoFilter struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	RadiusKM  float64 `json:"radius_km" validate:"gt=0"`
}

// Empty reports whether no criterion is set.
func (f CafeFilter) Empty() bool {
	return f.City == "" && f.District == "" && f.WifiSpeed == "" &&
		f.MinComfortRating == 0 && f.NoiseLevel == "" &&
		len(f.Amenities) == 0 && f.VerificationStatus == "" && f.Near == nil
}

// Fingerprint renders the filter as a stable cache key. Amenity order does not
// change the key.
func (f CafeFilter) Fingerprint() string {
	amenities := make([]string, len(f.Amenities))
	copy(amenities, f.Amenities)
	sort.Strings(amenities)

	var sb strings.Builder
	sb.WriteString("cafes")
	if f.City != "" {
		fmt.Fprintf(&sb, "|city=%s", f.City)
	}
	if f.District != "" {
		fmt.Fprintf(&sb, "|district=%s", f.District)
	}
	if f.WifiSpeed != "" {
		fmt.Fprintf(&sb, "|wifi=%s", f.WifiSpeed)
	}
	if f.MinComfortRating > 0 {
		fmt.Fprintf(&sb, "|comfort>=%d", f.MinComfortRating)
	}
	if f.NoiseLevel != "" {
		fmt.Fprintf(&sb, "|noise=%s", f.NoiseLevel)
	}
	if len(amenities) > 0 {
		fmt.Fprintf(&sb, "|amenities=%s", strings.Join(amenities, ","))
	}
	if f.VerificationStatus != "" {
		fmt.Fprintf(&sb, "|verified=%s", f.VerificationStatus)
	}
	if f.Near != nil {
		fmt.Fprintf(&sb, "|near=%.5f:%.5f:%.1f", f.Near.Latitude, f.Near.Longitude, f.Near.RadiusKM)
	}

	return sb.String()
}

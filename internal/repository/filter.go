package repository

import (
	"math"
	"strings"

	"atlas-backend/internal/config"
	"atlas-backend/internal/database/models"
	apperrors "atlas-backend/internal/errors"
)

// EarthRadiusMeters is the mean sphere radius used for great-circle distances.
// PostGIS uses the same value for geography calculations on a sphere.
const EarthRadiusMeters = 6371008.7714

// NearFilter selects projects within RadiusKm of a point
type NearFilter struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radius_km"`
}

// BoundsFilter selects projects inside a lat/lon box. When West > East the
// box crosses the antimeridian.
type BoundsFilter struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// CrossesAntimeridian reports whether the box wraps around longitude 180
func (b BoundsFilter) CrossesAntimeridian() bool {
	return b.West > b.East
}

// Contains reports whether the point lies inside the box, edges included
func (b BoundsFilter) Contains(lat, lon float64) bool {
	if lat < b.South || lat > b.North {
		return false
	}
	if b.CrossesAntimeridian() {
		return lon >= b.West || lon <= b.East
	}
	return lon >= b.West && lon <= b.East
}

// ProjectFilter is the query contract shared by every storage backend.
// All set options are combined with AND.
type ProjectFilter struct {
	RegionID           *int
	SDG                *int
	City               string // exact, case-insensitive
	FundedBy           string // substring of organization name, case-insensitive
	FreeText           string // substring of name, descriptions or organization
	Near               *NearFilter
	Bounds             *BoundsFilter
	Statuses           []models.WorkflowStatus // only honored with IncludeNonApproved
	IncludeNonApproved bool
	Limit              int
}

// Validate rejects coordinates outside the globe, including NaN, and boxes
// whose south edge lies above the north edge.
func (f ProjectFilter) Validate() error {
	verr := &apperrors.ValidationError{}
	if f.Near != nil {
		if !inRange(f.Near.Lat, 90) {
			verr.Add("near.lat", "lat must be between -90 and 90")
		}
		if !inRange(f.Near.Lon, 180) {
			verr.Add("near.lon", "lon must be between -180 and 180")
		}
		if math.IsNaN(f.Near.RadiusKm) {
			verr.Add("near.radius_km", "radius_km must be a number")
		}
	}
	if b := f.Bounds; b != nil {
		if !inRange(b.North, 90) {
			verr.Add("bounds.north", "north must be between -90 and 90")
		}
		if !inRange(b.South, 90) {
			verr.Add("bounds.south", "south must be between -90 and 90")
		}
		if !inRange(b.East, 180) {
			verr.Add("bounds.east", "east must be between -180 and 180")
		}
		if !inRange(b.West, 180) {
			verr.Add("bounds.west", "west must be between -180 and 180")
		}
		if b.South > b.North {
			verr.Add("bounds.south", "south must not be greater than north")
		}
	}
	return verr.OrNil()
}

// inRange reports whether v lies in [-limit, limit]; NaN never does
func inRange(v, limit float64) bool {
	return v >= -limit && v <= limit
}

// normalize returns a copy with search keys folded and limits applied
func (f ProjectFilter) normalize(limits config.SearchLimits) ProjectFilter {
	out := f
	out.City = models.NormalizeKey(f.City)
	out.FundedBy = models.NormalizeKey(f.FundedBy)
	out.FreeText = models.NormalizeKey(f.FreeText)

	if f.Near != nil {
		near := *f.Near
		near.RadiusKm = ClampRadius(near.RadiusKm, limits)
		out.Near = &near
	}

	if out.Limit <= 0 || out.Limit > limits.MaxResults {
		out.Limit = limits.MaxResults
	}
	return out
}

// ClampRadius applies the default radius for non-positive values and caps
// the radius at the configured maximum.
func ClampRadius(radiusKm float64, limits config.SearchLimits) float64 {
	if radiusKm <= 0 {
		radiusKm = limits.DefaultRadiusKm
	}
	if limits.MaxRadiusKm > 0 && radiusKm > limits.MaxRadiusKm {
		radiusKm = limits.MaxRadiusKm
	}
	return radiusKm
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards; queries use ESCAPE '\'
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// likePattern wraps needle for substring matching
func likePattern(needle string) string {
	return "%" + escapeLike(needle) + "%"
}

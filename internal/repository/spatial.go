package repository

import (
	"math"

	"atlas-backend/internal/database"
	"atlas-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpatialDialect is the storage-specific half of the query contract. Both
// implementations select the same set of projects; only free-text ordering
// differs (PostGIS ranks, SQLite keeps the default order).
type SpatialDialect interface {
	Name() string
	// ScopeNear narrows q to candidates within near. When ExactNear is false
	// the candidates are a superset and Refine makes the final decision.
	ScopeNear(q *gorm.DB, near NearFilter) *gorm.DB
	ScopeBounds(q *gorm.DB, bounds BoundsFilter) *gorm.DB
	OrderFreeText(q *gorm.DB, needle string) *gorm.DB
	ExactNear() bool
	Refine(projects []models.Project, near NearFilter) []models.Project
}

// DialectFor picks the dialect matching db's driver
func DialectFor(db *gorm.DB) SpatialDialect {
	if database.IsPostgres(db) {
		return postgisDialect{}
	}
	return sqliteDialect{}
}

// HaversineMeters is the great-circle distance between two points on a sphere
// of radius EarthRadiusMeters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * EarthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(a)))
}

// sqliteDialect evaluates spatial predicates with a bounding-box prefilter in
// SQL and an exact haversine check in Go.
type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) ExactNear() bool { return false }

// boxPadDegrees absorbs float rounding so the prefilter never drops a match
const boxPadDegrees = 1e-6

func (sqliteDialect) ScopeNear(q *gorm.DB, near NearFilter) *gorm.DB {
	angular := near.RadiusKm * 1000 / EarthRadiusMeters
	latDelta := angular*180/math.Pi + boxPadDegrees

	q = q.Where("projects.latitude IS NOT NULL AND projects.longitude IS NOT NULL").
		Where("projects.latitude BETWEEN ? AND ?", near.Lat-latDelta, near.Lat+latDelta)

	// Longitude can only be bounded when the circle does not contain a pole
	if math.Abs(near.Lat)+latDelta >= 90 || angular >= math.Pi/2 {
		return q
	}
	lonDelta := math.Asin(math.Sin(angular)/math.Cos(near.Lat*math.Pi/180))*180/math.Pi + boxPadDegrees
	west, east := near.Lon-lonDelta, near.Lon+lonDelta
	switch {
	case west < -180:
		return q.Where("(projects.longitude >= ? OR projects.longitude <= ?)", west+360, east)
	case east > 180:
		return q.Where("(projects.longitude >= ? OR projects.longitude <= ?)", west, east-360)
	default:
		return q.Where("projects.longitude BETWEEN ? AND ?", west, east)
	}
}

func (sqliteDialect) ScopeBounds(q *gorm.DB, b BoundsFilter) *gorm.DB {
	q = q.Where("projects.latitude IS NOT NULL AND projects.longitude IS NOT NULL").
		Where("projects.latitude BETWEEN ? AND ?", b.South, b.North)
	if b.CrossesAntimeridian() {
		return q.Where("(projects.longitude >= ? OR projects.longitude <= ?)", b.West, b.East)
	}
	return q.Where("projects.longitude BETWEEN ? AND ?", b.West, b.East)
}

func (sqliteDialect) OrderFreeText(q *gorm.DB, _ string) *gorm.DB { return q }

func (sqliteDialect) Refine(projects []models.Project, near NearFilter) []models.Project {
	limit := near.RadiusKm * 1000
	out := projects[:0]
	for _, p := range projects {
		if !p.HasCoordinates() {
			continue
		}
		if HaversineMeters(near.Lat, near.Lon, *p.Latitude, *p.Longitude) <= limit {
			out = append(out, p)
		}
	}
	return out
}

// postgisDialect pushes spatial predicates down to PostGIS on the generated
// geolocation column and ranks free text with the weighted search_vector.
type postgisDialect struct{}

func (postgisDialect) Name() string { return "postgis" }

func (postgisDialect) ExactNear() bool { return true }

func (postgisDialect) ScopeNear(q *gorm.DB, near NearFilter) *gorm.DB {
	return q.Where(
		"ST_DWithin(projects.geolocation, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?, false)",
		near.Lon, near.Lat, near.RadiusKm*1000,
	)
}

func (postgisDialect) ScopeBounds(q *gorm.DB, b BoundsFilter) *gorm.DB {
	const envelope = "ST_Intersects(projects.geolocation::geometry, ST_MakeEnvelope(?, ?, ?, ?, 4326))"
	if b.CrossesAntimeridian() {
		return q.Where("("+envelope+" OR "+envelope+")",
			b.West, b.South, 180.0, b.North,
			-180.0, b.South, b.East, b.North,
		)
	}
	return q.Where(envelope, b.West, b.South, b.East, b.North)
}

func (postgisDialect) OrderFreeText(q *gorm.DB, needle string) *gorm.DB {
	return q.Order(clause.OrderBy{Expression: clause.Expr{
		SQL:  "ts_rank_cd(projects.search_vector, plainto_tsquery('english', ?)) DESC",
		Vars: []interface{}{needle},
	}})
}

func (postgisDialect) Refine(projects []models.Project, _ NearFilter) []models.Project {
	return projects
}

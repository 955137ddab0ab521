package repository

import (
	"context"
	"strings"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/utils"

	"gorm.io/gorm"
)

const (
	airportByFAAQuery  = "SELECT airportname FROM airports WHERE faa = ? ORDER BY airportname"
	airportByICAOQuery = "SELECT airportname FROM airports WHERE icao = ? ORDER BY airportname"
	airportByNameQuery = "SELECT airportname FROM airports WHERE LOWER(airportname) LIKE ? ORDER BY airportname"

	// every row carries its side so callers never depend on UNION ordering
	resolveCodesQuery = "SELECT faa, 'fromAirport' AS side, geo_lat, geo_lon, geo_alt FROM airports WHERE airportname = ? " +
		"UNION SELECT faa, 'toAirport' AS side, geo_lat, geo_lon, geo_alt FROM airports WHERE airportname = ?"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db: db,
	}
}

type airportRow struct {
	AirportName string `gorm:"column:airportname"`
}

type resolvedRow struct {
	FAA    string  `gorm:"column:faa"`
	Side   string  `gorm:"column:side"`
	GeoLat float64 `gorm:"column:geo_lat"`
	GeoLon float64 `gorm:"column:geo_lon"`
	GeoAlt float64 `gorm:"column:geo_alt"`
}

// Search runs the exact-code or name-substring lookup the query was classified as
func (r *GormAirportRepository) Search(ctx context.Context, query utils.AirportQuery) ([]entity.Airport, string, error) {
	var stmt string
	var arg string
	switch query.Kind {
	case utils.AirportByFAA:
		stmt, arg = airportByFAAQuery, query.Value
	case utils.AirportByICAO:
		stmt, arg = airportByICAOQuery, query.Value
	default:
		stmt, arg = airportByNameQuery, "%"+likeEscaper.Replace(query.Value)+"%"
	}
	desc := describeSQL("airports", stmt)

	var rows []airportRow
	if err := r.db.WithContext(ctx).Raw(stmt, arg).Scan(&rows).Error; err != nil {
		return nil, desc, wrapGormError("search airports", err)
	}

	airports := make([]entity.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, entity.Airport{AirportName: row.AirportName})
	}
	return airports, desc, nil
}

// ResolveCodes looks up the FAA codes of both airport names in a single statement
func (r *GormAirportRepository) ResolveCodes(ctx context.Context, fromName, toName string) ([]entity.ResolvedAirport, string, error) {
	desc := describeSQL("airports", resolveCodesQuery)

	var rows []resolvedRow
	if err := r.db.WithContext(ctx).Raw(resolveCodesQuery, fromName, toName).Scan(&rows).Error; err != nil {
		return nil, desc, wrapGormError("resolve airport codes", err)
	}

	resolved := make([]entity.ResolvedAirport, 0, len(rows))
	for _, row := range rows {
		resolved = append(resolved, entity.ResolvedAirport{
			Side: entity.AirportSide(row.Side),
			FAA:  row.FAA,
			Geo:  entity.Geo{Lat: row.GeoLat, Lon: row.GeoLon, Alt: row.GeoAlt},
		})
	}
	return resolved, desc, nil
}

func describeSQL(scope, stmt string) string {
	return "SQL query - scoped to " + scope + ": " + stmt
}

package repository

import (
	"context"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"

	"gorm.io/gorm"
)

// one row per scheduled flight, airline name joined in
const flightsQuery = "SELECT a.name, s.flight, s.utc, r.sourceairport, r.destinationairport, r.equipment " +
	"FROM routes AS r " +
	"JOIN route_schedules AS s ON s.route_id = r.id " +
	"JOIN airlines AS a ON a.id = r.airline_id " +
	"WHERE r.sourceairport = ? AND r.destinationairport = ? AND s.day = ? " +
	"ORDER BY a.name ASC, s.flight ASC"

// GormRouteRepository implements the RouteRepository interface
type GormRouteRepository struct {
	db *gorm.DB
}

// NewGormRouteRepository creates a new GORM route repository
func NewGormRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &GormRouteRepository{
		db: db,
	}
}

type flightRow struct {
	Name               string `gorm:"column:name"`
	Flight             string `gorm:"column:flight"`
	Utc                string `gorm:"column:utc"`
	SourceAirport      string `gorm:"column:sourceairport"`
	DestinationAirport string `gorm:"column:destinationairport"`
	Equipment          string `gorm:"column:equipment"`
}

// FindFlights lists the flights scheduled on query.Day between two FAA codes
func (r *GormRouteRepository) FindFlights(ctx context.Context, query entity.RouteQuery) ([]entity.FlightPath, string, error) {
	desc := describeSQL("routes", flightsQuery)

	var rows []flightRow
	err := r.db.WithContext(ctx).Raw(flightsQuery, query.From, query.To, query.Day).Scan(&rows).Error
	if err != nil {
		return nil, desc, wrapGormError("find flights", err)
	}

	flights := make([]entity.FlightPath, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, entity.FlightPath{
			Name:               row.Name,
			Flight:             row.Flight,
			Equipment:          row.Equipment,
			Utc:                row.Utc,
			SourceAirport:      row.SourceAirport,
			DestinationAirport: row.DestinationAirport,
		})
	}
	return flights, desc, nil
}

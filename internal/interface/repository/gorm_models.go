package repository

import (
	"context"
	"errors"
	"fmt"

	"travel-sample-api/internal/domain/repository"

	"gorm.io/gorm"
)

// Airlines GORM model for database mapping
type Airlines struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"column:name;index"`
	IATA     string `gorm:"column:iata;size:2"`
	ICAO     string `gorm:"column:icao;size:3"`
	Callsign string `gorm:"column:callsign"`
	Country  string `gorm:"column:country"`
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "airlines"
}

// Airports GORM model for database mapping
type Airports struct {
	ID          uint    `gorm:"primaryKey"`
	AirportName string  `gorm:"column:airportname;index"`
	City        string  `gorm:"column:city"`
	Country     string  `gorm:"column:country"`
	FAA         string  `gorm:"column:faa;size:3;index"`
	ICAO        string  `gorm:"column:icao;size:4;index"`
	Tz          string  `gorm:"column:tz"`
	GeoLat      float64 `gorm:"column:geo_lat"`
	GeoLon      float64 `gorm:"column:geo_lon"`
	GeoAlt      float64 `gorm:"column:geo_alt"`
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "airports"
}

// Routes GORM model for database mapping
type Routes struct {
	ID                 uint   `gorm:"primaryKey"`
	AirlineID          uint   `gorm:"column:airline_id;index"`
	SourceAirport      string `gorm:"column:sourceairport;size:3;index:idx_routes_path"`
	DestinationAirport string `gorm:"column:destinationairport;size:3;index:idx_routes_path"`
	Equipment          string `gorm:"column:equipment"`
	Stops              int    `gorm:"column:stops"`
	Distance           float64
	Schedule           []RouteSchedules `gorm:"foreignKey:RouteID"`
}

// TableName overrides the default table name
func (Routes) TableName() string {
	return "routes"
}

// RouteSchedules GORM model holding one element of a route's weekly schedule
type RouteSchedules struct {
	ID      uint   `gorm:"primaryKey"`
	RouteID uint   `gorm:"column:route_id;index"`
	Day     int    `gorm:"column:day"`
	Flight  string `gorm:"column:flight"`
	Utc     string `gorm:"column:utc"`
}

// TableName overrides the default table name
func (RouteSchedules) TableName() string {
	return "route_schedules"
}

// ReferenceModels lists the models backing the read-only reference tables
func ReferenceModels() []interface{} {
	return []interface{}{&Airlines{}, &Airports{}, &Routes{}, &RouteSchedules{}}
}

// wrapGormError maps driver failures onto repository errors
func wrapGormError(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w: %v", op, repository.ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

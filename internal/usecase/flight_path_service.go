package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/utils"
)

// FlightPathService finds the scheduled flights between two named airports on a given day
type FlightPathService struct {
	airportRepo repository.AirportRepository
	routeRepo   repository.RouteRepository
	logger      logger.Logger
	random      func() float64
}

// NewFlightPathService creates a new flight path service
func NewFlightPathService(airportRepo repository.AirportRepository, routeRepo repository.RouteRepository, logger logger.Logger) *FlightPathService {
	return &FlightPathService{
		airportRepo: airportRepo,
		routeRepo:   routeRepo,
		logger:      logger,
		random:      rand.Float64,
	}
}

// Search resolves both airport names, maps the mm/dd/yyyy date to a weekday and lists the
// flights of that weekday. Flight time and price are synthesized per row.
func (s *FlightPathService) Search(ctx context.Context, fromName, toName, leave string) ([]entity.FlightPath, entity.QueryContext, error) {
	fromName = strings.TrimSpace(fromName)
	toName = strings.TrimSpace(toName)
	if fromName == "" || toName == "" {
		return nil, nil, fmt.Errorf("%w: both airports are required", ErrInvalidInput)
	}

	day, err := utils.ConvertDate(leave)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var qc entity.QueryContext
	resolved, desc, err := s.airportRepo.ResolveCodes(ctx, fromName, toName)
	qc.Add(desc)
	if err != nil {
		return nil, qc, fmt.Errorf("resolve airports: %w", err)
	}

	codes := make(map[entity.AirportSide]string, 2)
	for _, airport := range resolved {
		codes[airport.Side] = airport.FAA
	}

	from, ok := codes[entity.FromAirport]
	if !ok || from == "" {
		return nil, qc, fmt.Errorf("%w: %q", ErrUnknownAirport, fromName)
	}
	to, ok := codes[entity.ToAirport]
	if !ok || to == "" {
		return nil, qc, fmt.Errorf("%w: %q", ErrUnknownAirport, toName)
	}

	flights, desc, err := s.routeRepo.FindFlights(ctx, entity.RouteQuery{From: from, To: to, Day: day})
	qc.Add(desc)
	if err != nil {
		return nil, qc, fmt.Errorf("find flights: %w", err)
	}

	for i := range flights {
		flights[i].FlightTime = utils.FlightTime(s.random())
		flights[i].Price = utils.FlightPrice(flights[i].FlightTime)
	}
	if flights == nil {
		flights = []entity.FlightPath{}
	}

	s.logger.Debug("Flight paths found", "from", from, "to", to, "day", day, "count", len(flights))
	return flights, qc, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/utils"
)

// AirportService answers free-text airport lookups
type AirportService struct {
	airportRepo repository.AirportRepository
	logger      logger.Logger
}

// NewAirportService creates a new airport service
func NewAirportService(airportRepo repository.AirportRepository, logger logger.Logger) *AirportService {
	return &AirportService{
		airportRepo: airportRepo,
		logger:      logger,
	}
}

// Search classifies the input as FAA code, ICAO code or partial name and runs the matching query.
// An empty result is not an error.
func (s *AirportService) Search(ctx context.Context, search string) ([]entity.Airport, entity.QueryContext, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil, nil, fmt.Errorf("%w: search must not be empty", ErrInvalidInput)
	}

	query := utils.ClassifyAirportSearch(search)
	s.logger.Debug("Airport search classified", "kind", query.Kind.String(), "value", query.Value)

	var qc entity.QueryContext
	airports, desc, err := s.airportRepo.Search(ctx, query)
	qc.Add(desc)
	if err != nil {
		return nil, qc, fmt.Errorf("search airports: %w", err)
	}
	if airports == nil {
		airports = []entity.Airport{}
	}
	return airports, qc, nil
}

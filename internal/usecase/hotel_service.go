package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/utils"
)

var (
	locationFields    = []string{"country", "city", "state", "address"}
	descriptionFields = []string{"description", "name"}
)

// HotelService runs hotel searches and shapes the hits into summaries
type HotelService struct {
	hotelRepo repository.HotelRepository
	limit     int
	logger    logger.Logger
}

// NewHotelService creates a new hotel service returning at most limit hotels per search
func NewHotelService(hotelRepo repository.HotelRepository, limit int, logger logger.Logger) *HotelService {
	return &HotelService{
		hotelRepo: hotelRepo,
		limit:     limit,
		logger:    logger,
	}
}

// BuildHotelQuery ANDs a location clause and a description clause, leaving out any axis
// whose value is the wildcard or empty
func BuildHotelQuery(description, location string) entity.SearchQuery {
	var query entity.SearchQuery
	if !utils.IsWildcard(location) {
		query.Conjuncts = append(query.Conjuncts, anyField(strings.TrimSpace(location), locationFields))
	}
	if !utils.IsWildcard(description) {
		query.Conjuncts = append(query.Conjuncts, anyField(strings.TrimSpace(description), descriptionFields))
	}
	return query
}

func anyField(phrase string, fields []string) entity.Disjunction {
	disjunction := make(entity.Disjunction, 0, len(fields))
	for _, field := range fields {
		disjunction = append(disjunction, entity.MatchPhrase{Field: field, Phrase: phrase})
	}
	return disjunction
}

// Search returns the summaries of matching hotels. With no filter at all it returns an
// empty list without querying the store.
func (s *HotelService) Search(ctx context.Context, description, location string) ([]entity.HotelSummary, entity.QueryContext, error) {
	var qc entity.QueryContext

	query := BuildHotelQuery(description, location)
	if query.Empty() {
		qc.Add("Search query skipped - description and location are both wildcards, narrow the search")
		return []entity.HotelSummary{}, qc, nil
	}

	hits, desc, err := s.hotelRepo.Search(ctx, query, s.limit)
	qc.Add(desc)
	if err != nil {
		return nil, qc, fmt.Errorf("search hotels: %w", err)
	}

	hotels := make([]entity.HotelSummary, 0, len(hits))
	for _, hit := range hits {
		hotel, err := s.hotelRepo.LookupFields(ctx, hit.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("Hotel vanished between search and lookup", "hotel", hit.ID)
				qc.Add(fmt.Sprintf("Skipped hotel %s - document not found", hit.ID))
				continue
			}
			return nil, qc, fmt.Errorf("lookup hotel %s: %w", hit.ID, err)
		}
		hotels = append(hotels, summarize(hotel))
	}
	if len(hits) > 0 {
		qc.Add(fmt.Sprintf("Sub-document lookup - %d of %d hotels, fields name, description, address, city, state, country and amenities", len(hotels), len(hits)))
	}
	return hotels, qc, nil
}

func summarize(hotel *entity.Hotel) entity.HotelSummary {
	return entity.HotelSummary{
		Name:          hotel.Name,
		Description:   hotel.Description,
		Address:       utils.JoinNonEmpty(utils.ADDRESS_SEP, hotel.Address, hotel.City, hotel.State, hotel.Country),
		FreeBreakfast: hotel.FreeBreakfast,
		FreeInternet:  hotel.FreeInternet,
		FreeParking:   hotel.FreeParking,
		PetsOk:        hotel.PetsOk,
		Vacancy:       hotel.Vacancy,
	}
}

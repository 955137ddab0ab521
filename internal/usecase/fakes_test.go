package usecase

import (
	"context"
	"sync"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/utils"
)

type fakeAirportRepo struct {
	airports []entity.Airport
	resolved []entity.ResolvedAirport
	err      error

	searched     []utils.AirportQuery
	resolveCalls int
}

func (f *fakeAirportRepo) Search(ctx context.Context, query utils.AirportQuery) ([]entity.Airport, string, error) {
	f.searched = append(f.searched, query)
	return f.airports, "airport search " + query.Kind.String(), f.err
}

func (f *fakeAirportRepo) ResolveCodes(ctx context.Context, fromName, toName string) ([]entity.ResolvedAirport, string, error) {
	f.resolveCalls++
	return f.resolved, "resolve " + fromName + " / " + toName, f.err
}

type fakeRouteRepo struct {
	flights []entity.FlightPath
	err     error
	queries []entity.RouteQuery
}

func (f *fakeRouteRepo) FindFlights(ctx context.Context, query entity.RouteQuery) ([]entity.FlightPath, string, error) {
	f.queries = append(f.queries, query)
	return f.flights, "find flights", f.err
}

// fakeUserRepo keeps user documents per tenant and pushes bookings under a lock,
// like the store's atomic array append
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	getErr    error
	appendErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func userKey(tenant, username string) string {
	return tenant + "/" + username
}

func (f *fakeUserRepo) Create(ctx context.Context, tenant string, user *entity.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	k := userKey(tenant, user.ID)
	if _, ok := f.users[k]; ok {
		return "insert " + k, repository.ErrAlreadyExists
	}
	u := *user
	f.users[k] = &u
	return "insert " + k, nil
}

func (f *fakeUserRepo) GetPassword(ctx context.Context, tenant, username string) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return "", "get password", f.getErr
	}
	u, ok := f.users[userKey(tenant, username)]
	if !ok || u.Password == "" {
		return "", "get password", repository.ErrNotFound
	}
	return u.Password, "get password", nil
}

func (f *fakeUserRepo) GetBookings(ctx context.Context, tenant, username string) ([]string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, "get bookings", f.getErr
	}
	u, ok := f.users[userKey(tenant, username)]
	if !ok {
		return nil, "get bookings", repository.ErrNotFound
	}
	ids := append([]string{}, u.Bookings...)
	return ids, "get bookings", nil
}

func (f *fakeUserRepo) AppendBooking(ctx context.Context, tenant, username, bookingID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.appendErr != nil {
		return "append booking", f.appendErr
	}
	u, ok := f.users[userKey(tenant, username)]
	if !ok {
		return "append booking", repository.ErrNotFound
	}
	u.Bookings = append(u.Bookings, bookingID)
	return "append booking", nil
}

func (f *fakeUserRepo) bookingsOf(tenant, username string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.users[userKey(tenant, username)].Bookings...)
}

// fakeBookingRepo fails upserts with upsertErr, only for failFlight when that is set
type fakeBookingRepo struct {
	mu         sync.Mutex
	bookings   map[string]entity.Booking
	upsertErr  error
	failFlight string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]entity.Booking{}}
}

func (f *fakeBookingRepo) Upsert(ctx context.Context, tenant string, booking *entity.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.upsertErr != nil && (f.failFlight == "" || f.failFlight == booking.Flight) {
		return "upsert booking", f.upsertErr
	}
	f.bookings[userKey(tenant, booking.ID)] = *booking
	return "upsert booking " + booking.ID, nil
}

func (f *fakeBookingRepo) Get(ctx context.Context, tenant, id string) (*entity.Booking, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[userKey(tenant, id)]
	if !ok {
		return nil, "get booking " + id, repository.ErrNotFound
	}
	return &b, "get booking " + id, nil
}

type fakeHotelRepo struct {
	hits    []entity.SearchHit
	hotels  map[string]*entity.Hotel
	err     error
	queries []entity.SearchQuery
	limits  []int
}

func (f *fakeHotelRepo) Search(ctx context.Context, query entity.SearchQuery, limit int) ([]entity.SearchHit, string, error) {
	f.queries = append(f.queries, query)
	f.limits = append(f.limits, limit)
	return f.hits, "hotel search", f.err
}

func (f *fakeHotelRepo) LookupFields(ctx context.Context, id string) (*entity.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return h, nil
}

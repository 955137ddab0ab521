package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/usecase"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type stubAirports struct {
	got string
	err error
}

func (s *stubAirports) Search(ctx context.Context, search string) ([]entity.Airport, entity.QueryContext, error) {
	s.got = search
	if s.err != nil {
		return nil, nil, s.err
	}
	return []entity.Airport{{AirportName: "San Francisco Intl"}}, entity.QueryContext{"SQL query"}, nil
}

type stubFlightPaths struct {
	from, to, leave string
	err             error
}

func (s *stubFlightPaths) Search(ctx context.Context, fromName, toName, leave string) ([]entity.FlightPath, entity.QueryContext, error) {
	s.from, s.to, s.leave = fromName, toName, leave
	if s.err != nil {
		return nil, nil, s.err
	}
	return []entity.FlightPath{{Name: "Alaska Airlines", Flight: "AS101", FlightTime: 4000, Price: 500}}, nil, nil
}

type stubAccounts struct {
	tenant, user, password string
	err                    error
}

func (s *stubAccounts) Signup(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error) {
	s.tenant, s.user, s.password = tenant, username, password
	return "signup-token", entity.QueryContext{"KV insert"}, s.err
}

func (s *stubAccounts) Login(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error) {
	s.tenant, s.user, s.password = tenant, username, password
	if s.err != nil {
		return "", nil, s.err
	}
	return "login-token", nil, nil
}

type stubBookings struct {
	tenant, user, token string
	flights             []entity.Booking
	err                 error
}

func (s *stubBookings) List(ctx context.Context, tenant, username, token string) ([]entity.Booking, entity.QueryContext, error) {
	s.tenant, s.user, s.token = tenant, username, token
	if s.err != nil {
		return nil, nil, s.err
	}
	return []entity.Booking{}, nil, nil
}

func (s *stubBookings) Add(ctx context.Context, tenant, username, token string, flights []entity.Booking) ([]entity.Booking, entity.QueryContext, error) {
	s.tenant, s.user, s.token, s.flights = tenant, username, token, flights
	if s.err != nil {
		return nil, nil, s.err
	}
	added := make([]entity.Booking, len(flights))
	for i, f := range flights {
		f.ID = fmt.Sprintf("id-%d", i)
		added[i] = f
	}
	return added, entity.QueryContext{"KV upsert"}, nil
}

type stubHotels struct {
	description, location string
}

func (s *stubHotels) Search(ctx context.Context, description, location string) ([]entity.HotelSummary, entity.QueryContext, error) {
	s.description, s.location = description, location
	return []entity.HotelSummary{{Name: "Hyatt", Address: "1 Market Place, San Diego"}}, nil, nil
}

type HandlerSuite struct {
	suite.Suite
	airports *stubAirports
	flights  *stubFlightPaths
	accounts *stubAccounts
	bookings *stubBookings
	hotels   *stubHotels
	metrics  *metrics.Metrics
	router   *httprouter.Router
}

func (s *HandlerSuite) SetupTest() {
	s.airports = &stubAirports{}
	s.flights = &stubFlightPaths{}
	s.accounts = &stubAccounts{}
	s.bookings = &stubBookings{}
	s.hotels = &stubHotels{}
	s.metrics = metrics.NewMetrics("test")

	h := NewHandler(Services{
		Airports:    s.airports,
		FlightPaths: s.flights,
		Users:       s.accounts,
		Bookings:    s.bookings,
		Hotels:      s.hotels,
	}, "tenant_agent_00", "test", s.metrics, logger.NewNopLogger())

	r := httprouter.New()
	r.GET("/api/airports", h.Instrument("airports", h.SearchAirports))
	r.GET("/api/flightPaths/:from/:to", h.SearchFlightPaths)
	r.POST("/api/tenants/:tenant/user/signup", h.Signup)
	r.POST("/api/tenants/:tenant/user/login", h.Login)
	r.GET("/api/tenants/:tenant/user/:username/flights", h.ListBookings)
	r.PUT("/api/tenants/:tenant/user/:username/flights", h.AddBookings)
	r.GET("/api/user/:username/flights", h.ListBookings)
	r.GET("/api/hotels/:description/:location/", h.SearchHotels)
	r.GET("/api/hotels/", h.SearchHotels)
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, target, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerSuite) TestAirportsEnvelope() {
	rec := s.do(http.MethodGet, "/api/airports?search=sfo", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.Equal("sfo", s.airports.got)

	body := s.decode(rec)
	s.Equal([]interface{}{map[string]interface{}{"airportname": "San Francisco Intl"}}, body["data"])
	s.Equal([]interface{}{"SQL query"}, body["context"])
	s.Equal(1.0, testutil.ToFloat64(s.metrics.RequestsTotal.WithLabelValues("airports", "200")))
}

func (s *HandlerSuite) TestAirportsRequiresSearch() {
	rec := s.do(http.MethodGet, "/api/airports", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "search")
	s.Empty(s.airports.got)
}

func (s *HandlerSuite) TestFlightPaths() {
	rec := s.do(http.MethodGet, "/api/flightPaths/Nome/Teller%20Airport?leave=01/04/2016", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Nome", s.flights.from)
	s.Equal("Teller Airport", s.flights.to)
	s.Equal("01/04/2016", s.flights.leave)

	body := s.decode(rec)
	s.Equal([]interface{}{}, body["context"])
	row := body["data"].([]interface{})[0].(map[string]interface{})
	s.Equal(4000.0, row["flighttime"])
	s.Equal(500.0, row["price"])
}

func (s *HandlerSuite) TestFlightPathsErrors() {
	rec := s.do(http.MethodGet, "/api/flightPaths/Nome/Teller", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.flights.err = fmt.Errorf("%w: %q", usecase.ErrUnknownAirport, "Atlantis")
	rec = s.do(http.MethodGet, "/api/flightPaths/Nome/Atlantis?leave=01/04/2016", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "Atlantis")
}

func (s *HandlerSuite) TestSignupCreated() {
	rec := s.do(http.MethodPost, "/api/tenants/tenant_agent_01/user/signup", `{"user":"User1","password":"pw"}`, nil)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("tenant_agent_01", s.accounts.tenant)
	s.Equal("User1", s.accounts.user)

	body := s.decode(rec)
	s.Equal(map[string]interface{}{"token": "signup-token"}, body["data"])
}

func (s *HandlerSuite) TestSignupValidation() {
	rec := s.do(http.MethodPost, "/api/tenants/tenant_agent_01/user/signup", `{"user":"u1"}`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "password is required")
	s.Empty(s.accounts.user)

	rec = s.do(http.MethodPost, "/api/tenants/tenant_agent_01/user/signup", `{not json`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/tenants/tenant_agent_01/user/signup", `{"user":"u1","password":"`+strings.Repeat("a", 73)+`"}`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "password must not exceed 72")
	s.Empty(s.accounts.user)

	rec = s.do(http.MethodPost, "/api/tenants/bad.tenant/user/signup", `{"user":"u1","password":"pw"}`, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "tenant")
}

func (s *HandlerSuite) TestSignupConflict() {
	s.accounts.err = fmt.Errorf("%w: user exists", usecase.ErrConflict)

	rec := s.do(http.MethodPost, "/api/tenants/t1/user/signup", `{"user":"u1","password":"pw"}`, nil)
	s.Equal(http.StatusConflict, rec.Code)
	body := s.decode(rec)
	s.NotContains(body, "data")
	s.Equal("User already exists", body["message"])
}

func (s *HandlerSuite) TestLoginFailureHasNoToken() {
	s.accounts.err = usecase.ErrUnauthorized

	rec := s.do(http.MethodPost, "/api/tenants/t1/user/login", `{"user":"u1","password":"bad"}`, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.NotContains(rec.Body.String(), "token")
}

func (s *HandlerSuite) TestLoginSuccess() {
	rec := s.do(http.MethodPost, "/api/tenants/t1/user/login", `{"user":"u1","password":"pw"}`, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(map[string]interface{}{"token": "login-token"}, s.decode(rec)["data"])
}

func (s *HandlerSuite) TestListBookingsPassesBearer() {
	rec := s.do(http.MethodGet, "/api/tenants/t1/user/user1/flights", "", http.Header{"Authorization": {"Bearer abc.def"}})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("abc.def", s.bookings.token)
	s.Equal("user1", s.bookings.user)
	s.Equal([]interface{}{}, s.decode(rec)["data"])
}

func (s *HandlerSuite) TestLegacyRouteUsesDefaultTenant() {
	rec := s.do(http.MethodGet, "/api/user/user1/flights", "", http.Header{"Authentication": {"Bearer legacy"}})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("tenant_agent_00", s.bookings.tenant)
	s.Equal("legacy", s.bookings.token)
}

func (s *HandlerSuite) TestBookingErrors() {
	s.bookings.err = usecase.ErrUnauthorized
	rec := s.do(http.MethodGet, "/api/tenants/t1/user/user1/flights", "", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.bookings.err = usecase.ErrUserNotFound
	rec = s.do(http.MethodGet, "/api/tenants/t1/user/user1/flights", "", http.Header{"Authorization": {"Bearer x"}})
	s.Equal(http.StatusNotFound, rec.Code)

	s.bookings.err = fmt.Errorf("read bookings: boom")
	rec = s.do(http.MethodGet, "/api/tenants/t1/user/user1/flights", "", http.Header{"Authorization": {"Bearer x"}})
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("Internal server error", s.decode(rec)["message"])
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ErrorsCount.WithLabelValues("list_bookings")))
}

func (s *HandlerSuite) TestAddBookings() {
	body := `{"flights":[{"name":"Alaska Airlines","flight":"AS101","price":500,"date":"01/04/2016","sourceairport":"OME","destinationairport":"TLA"}]}`
	rec := s.do(http.MethodPut, "/api/tenants/t1/user/user1/flights", body, http.Header{"Authorization": {"Bearer tok"}})
	s.Equal(http.StatusOK, rec.Code)
	s.Require().Len(s.bookings.flights, 1)
	s.Equal("AS101", s.bookings.flights[0].Flight)

	data := s.decode(rec)["data"].(map[string]interface{})
	added := data["added"].([]interface{})
	s.Equal("id-0", added[0].(map[string]interface{})["id"])
}

func (s *HandlerSuite) TestAddBookingsValidation() {
	auth := http.Header{"Authorization": {"Bearer tok"}}

	rec := s.do(http.MethodPut, "/api/tenants/t1/user/user1/flights", `{"flights":[]}`, auth)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "flights")

	rec = s.do(http.MethodPut, "/api/tenants/t1/user/user1/flights", `{"flights":[{"name":"x"}]}`, auth)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decode(rec)["message"], "flight is required")

	rec = s.do(http.MethodPut, "/api/tenants/t1/user/user1/flights", `{"flights":[{"name":"x"}]}`, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(s.bookings.flights)
}

func (s *HandlerSuite) TestHotels() {
	rec := s.do(http.MethodGet, "/api/hotels/pool/San%20Diego/", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("pool", s.hotels.description)
	s.Equal("San Diego", s.hotels.location)

	rec = s.do(http.MethodGet, "/api/hotels/", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(s.hotels.description)
	s.Empty(s.hotels.location)
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer  abc ": "abc",
		"Basic abc":    "",
		"abc":          "",
		"":             "",
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		if got := bearerToken(req); got != want {
			t.Errorf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}

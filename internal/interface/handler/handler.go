package handler

import (
	"context"
	"net/http"
	"strings"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// AirportSearcher answers airport lookups
type AirportSearcher interface {
	Search(ctx context.Context, search string) ([]entity.Airport, entity.QueryContext, error)
}

// FlightPathFinder lists flights between two named airports
type FlightPathFinder interface {
	Search(ctx context.Context, fromName, toName, leave string) ([]entity.FlightPath, entity.QueryContext, error)
}

// Accounts signs users up and in
type Accounts interface {
	Signup(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error)
	Login(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error)
}

// Bookings lists and adds bookings for a token holder
type Bookings interface {
	List(ctx context.Context, tenant, username, token string) ([]entity.Booking, entity.QueryContext, error)
	Add(ctx context.Context, tenant, username, token string, flights []entity.Booking) ([]entity.Booking, entity.QueryContext, error)
}

// HotelSearcher runs hotel searches
type HotelSearcher interface {
	Search(ctx context.Context, description, location string) ([]entity.HotelSummary, entity.QueryContext, error)
}

// Services groups the usecases served over HTTP
type Services struct {
	Airports    AirportSearcher
	FlightPaths FlightPathFinder
	Users       Accounts
	Bookings    Bookings
	Hotels      HotelSearcher
}

// Handler translates HTTP requests into usecase calls
type Handler struct {
	services      Services
	defaultTenant string
	version       string
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewHandler creates a new HTTP handler set. Routes without a tenant segment use defaultTenant.
func NewHandler(services Services, defaultTenant, version string, metrics *metrics.Metrics, logger logger.Logger) *Handler {
	return &Handler{
		services:      services,
		defaultTenant: defaultTenant,
		version:       version,
		metrics:       metrics,
		logger:        logger,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type addedResponse struct {
	Added []entity.Booking `json:"added"`
}

// tenant returns the path tenant, or the default one on legacy routes
func (h *Handler) tenant(w http.ResponseWriter, ps httprouter.Params) (string, bool) {
	tenant := ps.ByName("tenant")
	if tenant == "" {
		tenant = h.defaultTenant
	}
	if !validTenant(tenant) {
		RespondWithError(w, http.StatusBadRequest, "tenant must be 1-64 letters, digits, '_' or '-'")
		return "", false
	}
	return tenant, true
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// The older "Authentication" header is accepted as well.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		header = r.Header.Get("Authentication")
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": h.version})
}

// SearchAirports handles GET /api/airports?search=
func (h *Handler) SearchAirports(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	search := r.URL.Query().Get("search")
	if strings.TrimSpace(search) == "" {
		RespondWithError(w, http.StatusBadRequest, "search query parameter is required")
		return
	}

	airports, qc, err := h.services.Airports.Search(r.Context(), search)
	if err != nil {
		h.fail(w, "airports", err)
		return
	}
	RespondWithData(w, http.StatusOK, airports, qc)
}

// SearchFlightPaths handles GET /api/flightPaths/:from/:to?leave=mm/dd/yyyy
func (h *Handler) SearchFlightPaths(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	leave := r.URL.Query().Get("leave")
	if leave == "" {
		RespondWithError(w, http.StatusBadRequest, "leave query parameter is required (mm/dd/yyyy)")
		return
	}

	flights, qc, err := h.services.FlightPaths.Search(r.Context(), ps.ByName("from"), ps.ByName("to"), leave)
	if err != nil {
		h.fail(w, "flight_paths", err)
		return
	}
	RespondWithData(w, http.StatusOK, flights, qc)
}

// Signup handles POST .../user/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenant, ok := h.tenant(w, ps)
	if !ok {
		return
	}

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	token, qc, err := h.services.Users.Signup(r.Context(), tenant, req.User, req.Password)
	if err != nil {
		h.fail(w, "signup", err)
		return
	}
	RespondWithData(w, http.StatusCreated, tokenResponse{Token: token}, qc)
}

// Login handles POST .../user/login. Missing fields fail like a wrong password.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenant, ok := h.tenant(w, ps)
	if !ok {
		return
	}

	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, qc, err := h.services.Users.Login(r.Context(), tenant, req.User, req.Password)
	if err != nil {
		h.fail(w, "login", err)
		return
	}
	RespondWithData(w, http.StatusOK, tokenResponse{Token: token}, qc)
}

// ListBookings handles GET .../user/:username/flights
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenant, ok := h.tenant(w, ps)
	if !ok {
		return
	}

	bookings, qc, err := h.services.Bookings.List(r.Context(), tenant, ps.ByName("username"), bearerToken(r))
	if err != nil {
		h.fail(w, "list_bookings", err)
		return
	}
	RespondWithData(w, http.StatusOK, bookings, qc)
}

// AddBookings handles PUT .../user/:username/flights
func (h *Handler) AddBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tenant, ok := h.tenant(w, ps)
	if !ok {
		return
	}

	// reject missing tokens before reading the body
	token := bearerToken(r)
	if token == "" {
		RespondWithError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	var req bookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		RespondWithError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	added, qc, err := h.services.Bookings.Add(r.Context(), tenant, ps.ByName("username"), token, req.Flights)
	if err != nil {
		h.fail(w, "add_bookings", err)
		return
	}
	RespondWithData(w, http.StatusOK, addedResponse{Added: added}, qc)
}

// SearchHotels handles GET /api/hotels/:description/:location/. Missing segments mean no filter.
func (h *Handler) SearchHotels(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotels, qc, err := h.services.Hotels.Search(r.Context(), ps.ByName("description"), ps.ByName("location"))
	if err != nil {
		h.fail(w, "hotels", err)
		return
	}
	RespondWithData(w, http.StatusOK, hotels, qc)
}

package router

import (
	"net/http"

	"travel-sample-api/internal/interface/handler"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Options configures the cross-cutting behavior of the router
type Options struct {
	AllowedOrigins []string
	RateLimiter    *handler.RateLimiter
}

// Router routes HTTP requests to the API handlers
type Router struct {
	router  *httprouter.Router
	handler *handler.Handler
	limiter *handler.RateLimiter
	logger  logger.Logger
}

// NewRouter registers every API route and returns the CORS-wrapped handler
func NewRouter(h *handler.Handler, m *metrics.Metrics, opts Options, logger logger.Logger) http.Handler {
	r := &Router{
		router:  httprouter.New(),
		handler: h,
		limiter: opts.RateLimiter,
		logger:  logger,
	}
	r.registerRoutes(m)

	r.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.RespondWithError(w, http.StatusNotFound, "Not found")
	})
	r.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handler.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.router.PanicHandler = func(w http.ResponseWriter, req *http.Request, v interface{}) {
		logger.Error("Handler panic", "path", req.URL.Path, "panic", v)
		handler.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}

	return cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Authentication"},
	}).Handler(r.router)
}

// handle registers an instrumented route
func (r *Router) handle(method, path, name string, h httprouter.Handle) {
	r.router.Handle(method, path, r.handler.Instrument(name, h))
	r.logger.Debug("Registered route", "method", method, "path", path)
}

// limited applies the per-IP rate limit when one is configured
func (r *Router) limited(h httprouter.Handle) httprouter.Handle {
	if r.limiter == nil {
		return h
	}
	return r.limiter.Limit(h)
}

func (r *Router) registerRoutes(m *metrics.Metrics) {
	h := r.handler

	r.router.GET("/health", h.Health)
	r.router.Handler(http.MethodGet, "/metrics", m.Handler())

	r.handle(http.MethodGet, "/api/airports", "airports", h.SearchAirports)
	r.handle(http.MethodGet, "/api/flightPaths/:from/:to", "flight_paths", h.SearchFlightPaths)

	r.handle(http.MethodPost, "/api/tenants/:tenant/user/signup", "signup", r.limited(h.Signup))
	r.handle(http.MethodPost, "/api/tenants/:tenant/user/login", "login", r.limited(h.Login))
	r.handle(http.MethodGet, "/api/tenants/:tenant/user/:username/flights", "list_bookings", h.ListBookings)
	r.handle(http.MethodPut, "/api/tenants/:tenant/user/:username/flights", "add_bookings", h.AddBookings)

	// tenant-less routes bound to the default tenant
	r.handle(http.MethodPost, "/api/user/signup", "signup", r.limited(h.Signup))
	r.handle(http.MethodPost, "/api/user/login", "login", r.limited(h.Login))
	r.handle(http.MethodGet, "/api/user/:username/flights", "list_bookings", h.ListBookings)
	r.handle(http.MethodPut, "/api/user/:username/flights", "add_bookings", h.AddBookings)

	r.handle(http.MethodGet, "/api/hotels/", "hotels", h.SearchHotels)
	r.handle(http.MethodGet, "/api/hotels/:description/", "hotels", h.SearchHotels)
	r.handle(http.MethodGet, "/api/hotels/:description/:location/", "hotels", h.SearchHotels)
}

package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument logs each request and records it under route in the request metrics
func (h *Handler) Instrument(route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r, ps)

		duration := time.Since(start)
		h.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		h.metrics.RequestDuration.WithLabelValues(route).Observe(duration.Seconds())
		h.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"route", route,
			"status", rec.status,
			"duration", duration,
			"remote", r.RemoteAddr,
		)
	}
}

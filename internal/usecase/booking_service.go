package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"
	"travel-sample-api/pkg/utils"

	"github.com/google/uuid"
)

// BookingService lists and adds the bookings of a token holder
type BookingService struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	tokens      TokenManager
	metrics     *metrics.Metrics
	logger      logger.Logger
	newID       func() string
	now         func() time.Time
}

// NewBookingService creates a new booking service
func NewBookingService(
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	tokens TokenManager,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		tokens:      tokens,
		metrics:     metrics,
		logger:      logger,
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

// authorize returns the storage key of username when token is bound to it
func (s *BookingService) authorize(token, username string) (string, error) {
	key := utils.NormalizeUsername(username)
	if token == "" || key == "" {
		return "", fmt.Errorf("%w: missing token", ErrUnauthorized)
	}
	subject, err := s.tokens.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if subject != key {
		return "", fmt.Errorf("%w: username does not match token username", ErrUnauthorized)
	}
	return key, nil
}

// List returns the bookings referenced by the user document. References whose booking
// document is gone are skipped and reported in the context.
func (s *BookingService) List(ctx context.Context, tenant, username, token string) ([]entity.Booking, entity.QueryContext, error) {
	key, err := s.authorize(token, username)
	if err != nil {
		return nil, nil, err
	}

	var qc entity.QueryContext
	ids, desc, err := s.userRepo.GetBookings(ctx, tenant, key)
	qc.Add(desc)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, qc, fmt.Errorf("%w: %q", ErrUserNotFound, key)
		}
		return nil, qc, fmt.Errorf("read bookings: %w", err)
	}

	bookings := make([]entity.Booking, 0, len(ids))
	for _, id := range ids {
		booking, desc, err := s.bookingRepo.Get(ctx, tenant, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.Warn("Skipping missing booking", "tenant", tenant, "user", key, "booking", id)
				qc.Add(fmt.Sprintf("Skipped booking %s - document not found", id))
				continue
			}
			qc.Add(desc)
			return nil, qc, fmt.Errorf("get booking %s: %w", id, err)
		}
		bookings = append(bookings, *booking)
	}
	if len(ids) > 0 {
		qc.Add(fmt.Sprintf("KV get - scoped to %s.bookings: %d of %d documents", tenant, len(bookings), len(ids)))
	}
	return bookings, qc, nil
}

// Add stores each flight as its own booking document and appends its key to the user's
// bookings. The append is a single atomic store mutation so concurrent adds do not clobber
// each other. Flights are not rolled back: when one fails, the ones before it stay booked
// and the error names them.
func (s *BookingService) Add(ctx context.Context, tenant, username, token string, flights []entity.Booking) ([]entity.Booking, entity.QueryContext, error) {
	key, err := s.authorize(token, username)
	if err != nil {
		return nil, nil, err
	}
	if len(flights) == 0 {
		return nil, nil, fmt.Errorf("%w: no flights to book", ErrInvalidInput)
	}

	var qc entity.QueryContext
	added := make([]entity.Booking, 0, len(flights))
	for _, flight := range flights {
		booking := flight
		booking.ID = s.newID()
		booking.BookedOn = s.now().UTC().Format(time.RFC3339)

		desc, err := s.bookingRepo.Upsert(ctx, tenant, &booking)
		qc.Add(desc)
		if err != nil {
			return nil, qc, s.partialFailure(tenant, key, added, fmt.Errorf("store booking: %w", err))
		}

		desc, err = s.userRepo.AppendBooking(ctx, tenant, key, booking.ID)
		qc.Add(desc)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, qc, s.partialFailure(tenant, key, added, fmt.Errorf("%w: %q", ErrUserNotFound, key))
			}
			return nil, qc, s.partialFailure(tenant, key, added, fmt.Errorf("append booking: %w", err))
		}

		s.metrics.BookingsCreated.Inc()
		s.logger.Info("Booking added", "tenant", tenant, "user", key, "booking", booking.ID, "flight", booking.Flight)
		added = append(added, booking)
	}
	return added, qc, nil
}

func (s *BookingService) partialFailure(tenant, user string, added []entity.Booking, err error) error {
	if len(added) == 0 {
		return err
	}
	ids := make([]string, 0, len(added))
	for _, b := range added {
		ids = append(ids, b.ID)
	}
	s.logger.Warn("Booking request failed after partial success", "tenant", tenant, "user", user, "added", ids, "error", err)
	return fmt.Errorf("%w (already added: %s)", err, strings.Join(ids, ", "))
}

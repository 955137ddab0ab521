package usecase

import (
	"context"
	"errors"
	"fmt"

	"travel-sample-api/internal/domain/entity"
	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"
	"travel-sample-api/pkg/utils"
)

// TokenManager issues and verifies bearer tokens bound to a username
type TokenManager interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

// PasswordHasher hashes and checks account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// bcrypt only hashes the first 72 bytes and refuses longer input
const maxPasswordBytes = 72

// Login failure reasons, used as metric labels
const (
	loginUnknownUser = "unknown_user"
	loginNoPassword  = "no_password"
	loginMismatch    = "password_mismatch"
	loginTransient   = "transient"
	loginBackend     = "backend"
)

// UserService handles account signup and login
type UserService struct {
	userRepo repository.UserRepository
	tokens   TokenManager
	hasher   PasswordHasher
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repository.UserRepository,
	tokens TokenManager,
	hasher PasswordHasher,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		metrics:  metrics,
		logger:   logger,
	}
}

// Signup creates the account with a create-only insert and returns a token for it
func (s *UserService) Signup(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error) {
	key := utils.NormalizeUsername(username)
	if key == "" || password == "" {
		return "", nil, fmt.Errorf("%w: user and password are required", ErrInvalidInput)
	}
	if len(password) > maxPasswordBytes {
		return "", nil, fmt.Errorf("%w: password must not exceed %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	var qc entity.QueryContext
	desc, err := s.userRepo.Create(ctx, tenant, &entity.User{
		ID:       key,
		Username: key,
		Password: hash,
	})
	qc.Add(desc)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			s.logger.Info("Signup rejected, user exists", "tenant", tenant, "user", key)
			return "", qc, fmt.Errorf("%w: user %q already exists", ErrConflict, key)
		}
		return "", qc, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(key)
	if err != nil {
		return "", qc, err
	}

	s.metrics.SignupsTotal.Inc()
	s.logger.Info("User signed up", "tenant", tenant, "user", key)
	return token, qc, nil
}

// Login checks the password against the stored hash. Every failure, including store
// errors, comes back as ErrUnauthorized so callers cannot probe for accounts.
func (s *UserService) Login(ctx context.Context, tenant, username, password string) (string, entity.QueryContext, error) {
	key := utils.NormalizeUsername(username)
	if key == "" || password == "" {
		return "", nil, s.loginFailed(tenant, key, loginNoPassword, nil)
	}

	var qc entity.QueryContext
	hash, desc, err := s.userRepo.GetPassword(ctx, tenant, key)
	qc.Add(desc)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "", qc, s.loginFailed(tenant, key, loginUnknownUser, err)
	case errors.Is(err, repository.ErrTransient):
		return "", qc, s.loginFailed(tenant, key, loginTransient, err)
	case err != nil:
		return "", qc, s.loginFailed(tenant, key, loginBackend, err)
	}

	if err := s.hasher.Compare(hash, password); err != nil {
		return "", qc, s.loginFailed(tenant, key, loginMismatch, err)
	}

	token, err := s.tokens.Issue(key)
	if err != nil {
		return "", qc, err
	}
	return token, qc, nil
}

func (s *UserService) loginFailed(tenant, user, reason string, cause error) error {
	s.metrics.LoginFailures.WithLabelValues(reason).Inc()
	switch reason {
	case loginTransient, loginBackend:
		s.logger.Error("Login failed on store error", "tenant", tenant, "user", user, "reason", reason, "error", cause)
	default:
		s.logger.Info("Login rejected", "tenant", tenant, "user", user, "reason", reason)
	}
	return fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
}

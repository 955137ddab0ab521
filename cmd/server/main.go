package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"travel-sample-api/internal/domain/repository"
	"travel-sample-api/internal/infrastructure/auth"
	"travel-sample-api/internal/infrastructure/config"
	"travel-sample-api/internal/infrastructure/persistence"
	"travel-sample-api/internal/infrastructure/router"
	"travel-sample-api/internal/interface/handler"
	travelRepo "travel-sample-api/internal/interface/repository"
	"travel-sample-api/internal/usecase"
	"travel-sample-api/pkg/logger"
	"travel-sample-api/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Travel Sample API", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection (users, bookings, hotels)
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection (airports, routes, airlines)
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgres(ctx, cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if cfg.PostgresAutoMigrate {
		if err := persistence.Migrate(gormDB, travelRepo.ReferenceModels()...); err != nil {
			log.Fatal("Failed to migrate reference tables", "error", err)
		}
		log.Info("Reference tables migrated")
	}

	// Set up repositories
	var airportRepo repository.AirportRepository = travelRepo.NewGormAirportRepository(gormDB)
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		log.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		redisClient, err = persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		airportRepo = travelRepo.NewCachedAirportRepository(airportRepo, redisClient, cfg.AirportCacheTTL, log)
	}
	routeRepo := travelRepo.NewGormRouteRepository(gormDB)
	userRepo := travelRepo.NewMongoUserRepository(db)
	bookingRepo := travelRepo.NewMongoBookingRepository(db)
	hotelRepo := travelRepo.NewMongoHotelRepository(db)

	// Set up usecases
	m := metrics.NewMetrics(cfg.MetricsNamespace)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	services := handler.Services{
		Airports:    usecase.NewAirportService(airportRepo, log),
		FlightPaths: usecase.NewFlightPathService(airportRepo, routeRepo, log),
		Users:       usecase.NewUserService(userRepo, tokens, hasher, m, log),
		Bookings:    usecase.NewBookingService(userRepo, bookingRepo, tokens, m, log),
		Hotels:      usecase.NewHotelService(hotelRepo, cfg.HotelSearchLimit, log),
	}

	// Set up HTTP server
	h := handler.NewHandler(services, cfg.DefaultTenant, cfg.AppVersion, m, log)
	limiter := handler.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)
	httpHandler := router.NewRouter(h, m, router.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:    limiter,
	}, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
	if err := persistence.ClosePostgres(gormDB); err != nil {
		log.Error("PostgreSQL close error", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Redis close error", "error", err)
		}
	}

	log.Info("Travel Sample API stopped")
}

package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roverent/roverent-backend/api/controllers"
	"github.com/roverent/roverent-backend/api/routes"
	"github.com/roverent/roverent-backend/internal/auth"
	"github.com/roverent/roverent-backend/internal/branches"
	"github.com/roverent/roverent-backend/internal/feedback"
	"github.com/roverent/roverent-backend/internal/photos"
	"github.com/roverent/roverent-backend/internal/preferences"
	"github.com/roverent/roverent-backend/internal/reservations"
	"github.com/roverent/roverent-backend/internal/users"
	"github.com/roverent/roverent-backend/internal/vehicles"
	"github.com/roverent/roverent-backend/internal/violations"
	"github.com/roverent/roverent-backend/pkg/auth/session"
	"github.com/roverent/roverent-backend/pkg/cache"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/logger"
	"github.com/roverent/roverent-backend/pkg/metrics"
	"github.com/roverent/roverent-backend/pkg/migrate"
	"github.com/roverent/roverent-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	svcs, err := buildServices(cfg, dbClient, sessionManager)
	if err != nil {
		logg.Error(context.Background(), "failed to build services", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	readiness := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, readiness, redisClient, sessionManager, httpMetrics, metricsHandler, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildServices(cfg *config.Config, dbClient *db.Client, sessionManager *session.Manager) (routes.Services, error) {
	userRepo := users.NewRepository(dbClient.DB())
	vehicleRepo := vehicle.NewRepository(dbClient.DB())
	reservationRepo := reservation.NewRepository(dbClient.DB())
	feedbackRepo := feedback.NewRepository(dbClient.DB())
	violationRepo := violation.NewRepository(dbClient.DB())
	photoRepo := photo.NewRepository(dbClient.DB())
	branchRepo := branch.NewRepository(dbClient.DB())

	memoryCache := cache.NewMemory()

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		return routes.Services{}, err
	}

	vehicleService, err := vehicle.NewService(vehicle.ServiceParams{
		Repo:        vehicleRepo,
		Cache:       memoryCache,
		CacheConfig: cfg.Cache,
	})
	if err != nil {
		return routes.Services{}, err
	}

	reservationService, err := reservation.NewService(reservation.ServiceParams{
		Repo:     reservationRepo,
		DB:       dbClient,
		Evictor:  memoryCache,
		EvictKey: vehicle.ListCacheKey,
	})
	if err != nil {
		return routes.Services{}, err
	}

	feedbackService, err := feedback.NewService(feedback.ServiceParams{
		Repo:            feedbackRepo,
		ReservationRepo: reservationRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	violationService, err := violation.NewService(violation.ServiceParams{
		Repo:            violationRepo,
		ReservationRepo: reservationRepo,
	})
	if err != nil {
		return routes.Services{}, err
	}

	photoService, err := photo.NewService(photo.ServiceParams{
		Repo:        photoRepo,
		VehicleRepo: vehicleRepo,
		DB:          dbClient,
	})
	if err != nil {
		return routes.Services{}, err
	}

	branchService, err := branch.NewService(branchRepo)
	if err != nil {
		return routes.Services{}, err
	}

	preferencesService, err := preference.NewService(cfg.Preferences)
	if err != nil {
		return routes.Services{}, err
	}

	return routes.Services{
		Auth:         authService,
		Register:     registerService,
		Vehicles:     vehicleService,
		Reservations: reservationService,
		Feedback:     feedbackService,
		Violations:   violationService,
		Photos:       photoService,
		Branches:     branchService,
		Preferences:  preferencesService,
	}, nil
}

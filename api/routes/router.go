package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roverent/roverent-backend/api/controllers"
	"github.com/roverent/roverent-backend/api/middleware"
	authsvc "github.com/roverent/roverent-backend/internal/auth"
	branchsvc "github.com/roverent/roverent-backend/internal/branches"
	feedbacksvc "github.com/roverent/roverent-backend/internal/feedback"
	photosvc "github.com/roverent/roverent-backend/internal/photos"
	preferencesvc "github.com/roverent/roverent-backend/internal/preferences"
	reservationsvc "github.com/roverent/roverent-backend/internal/reservations"
	vehiclesvc "github.com/roverent/roverent-backend/internal/vehicles"
	violationsvc "github.com/roverent/roverent-backend/internal/violations"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/logger"
	"github.com/roverent/roverent-backend/pkg/metrics"
	"github.com/roverent/roverent-backend/pkg/redis"
)

// Services bundles everything the router mounts.
type Services struct {
	Auth         authsvc.Service
	Register     authsvc.RegisterService
	Vehicles     vehiclesvc.Service
	Reservations reservationsvc.Service
	Feedback     feedbacksvc.Service
	Violations   violationsvc.Service
	Photos       photosvc.Service
	Branches     branchsvc.Service
	Preferences  *preferencesvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	readiness map[string]controllers.Pinger,
	redisClient *redis.Client,
	sessions middleware.SessionChecker,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).Post("/signup", controllers.AuthSignup(svcs.Register, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))
			r.Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
			r.Get("/me", controllers.AuthMe(svcs.Auth, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", controllers.VehicleList(svcs.Vehicles, logg))
			r.Post("/", controllers.VehicleCreate(svcs.Vehicles, logg))
			r.Get("/available", controllers.VehicleListAvailable(svcs.Vehicles, logg))
			r.Route("/{vehicleId}", func(r chi.Router) {
				r.Get("/", controllers.VehicleGet(svcs.Vehicles, logg))
				r.Put("/", controllers.VehicleUpdate(svcs.Vehicles, logg))
				r.Delete("/", controllers.VehicleDelete(svcs.Vehicles, logg))
				r.Patch("/status", controllers.VehicleUpdateStatus(svcs.Vehicles, logg))
				r.Get("/feedback", controllers.FeedbackForVehicle(svcs.Feedback, logg))
				r.Get("/rating", controllers.FeedbackVehicleRating(svcs.Feedback, logg))
				r.Route("/photos", func(r chi.Router) {
					r.Get("/", controllers.PhotoList(svcs.Photos, logg))
					r.Post("/", controllers.PhotoAdd(svcs.Photos, logg))
					r.Post("/{photoId}/primary", controllers.PhotoSetPrimary(svcs.Photos, logg))
					r.Delete("/{photoId}", controllers.PhotoDelete(svcs.Photos, logg))
				})
			})
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", controllers.ReservationList(svcs.Reservations, logg))
			r.Post("/", controllers.ReservationCreate(svcs.Reservations, logg))
			r.Get("/mine", controllers.ReservationListMine(svcs.Reservations, logg))
			r.Get("/availability", controllers.ReservationAvailability(svcs.Reservations, logg))
			r.Route("/{reservationId}", func(r chi.Router) {
				r.Get("/", controllers.ReservationGet(svcs.Reservations, logg))
				r.Post("/confirm", controllers.ReservationConfirm(svcs.Reservations, logg))
				r.Post("/complete", controllers.ReservationComplete(svcs.Reservations, logg))
				r.Post("/cancel", controllers.ReservationCancel(svcs.Reservations, logg))
				r.Get("/violations", controllers.ViolationListForReservation(svcs.Violations, logg))
			})
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", controllers.FeedbackList(svcs.Feedback, logg))
			r.Post("/", controllers.FeedbackCreate(svcs.Feedback, logg))
			r.Get("/mine", controllers.FeedbackListMine(svcs.Feedback, logg))
		})

		r.Route("/violations", func(r chi.Router) {
			r.Get("/", controllers.ViolationList(svcs.Violations, logg))
			r.Post("/", controllers.ViolationReport(svcs.Violations, logg))
			r.Get("/mine", controllers.ViolationListMine(svcs.Violations, logg))
			r.Put("/{violationId}/status", controllers.ViolationReview(svcs.Violations, logg))
		})

		r.Route("/branches", func(r chi.Router) {
			r.Get("/", controllers.BranchList(svcs.Branches, logg))
			r.Post("/", controllers.BranchCreate(svcs.Branches, logg))
			r.Get("/{branchId}", controllers.BranchGet(svcs.Branches, logg))
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", controllers.PreferencesGet(svcs.Preferences, logg))
			r.Put("/", controllers.PreferencesUpdate(svcs.Preferences, logg))
		})
	})

	return r
}

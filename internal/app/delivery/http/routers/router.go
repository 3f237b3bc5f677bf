package routers

import (
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/app/delivery/http/middlewares"
	"medibook-web/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Presenter    *controllers.Presenter
	Auth         *controllers.AuthController
	Dashboard    *controllers.DashboardController
	Appointment  *controllers.AppointmentController
	Doctor       *controllers.DoctorController
	Patient      *controllers.PatientController
	Availability *controllers.AvailabilityController
	Payment      *controllers.PaymentController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestTimeout)

	router.NotFound(ctrls.Presenter.NotFound)
	router.Get(constvars.RouteHealthz, ctrls.Dashboard.Healthz)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Session)

		attachDashboardRoutes(r, ctrls.Dashboard)
		attachAuthRoutes(r, ctrls.Auth)
		attachAppointmentRoutes(r, ctrls.Appointment)
		attachDoctorRoutes(r, ctrls.Doctor)
		attachPatientRoutes(r, ctrls.Patient)
		attachAvailabilityRoutes(r, ctrls.Availability)
		attachPaymentRoutes(r, ctrls.Payment)
	})
}

func allowedOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

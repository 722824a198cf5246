package routers

import (
	"fmt"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Controllers groups every HTTP controller mounted under the versioned prefix.
type Controllers struct {
	Health      *controllers.HealthController
	Doctor      *controllers.DoctorController
	Patient     *controllers.PatientController
	Location    *controllers.LocationController
	Slot        *controllers.SlotController
	Appointment *controllers.AppointmentController
	Feedback    *controllers.FeedbackController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.GlobalRateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyBuffer)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", controllers.Health.Health)
			r.Get("/specialties", controllers.Doctor.GetSpecialties)

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, controllers)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, controllers.Patient)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, controllers.Appointment, controllers.Feedback)
			})

			r.Route("/feedback", func(r chi.Router) {
				attachFeedbackRoutes(r, controllers.Feedback)
			})
		})
	})
}

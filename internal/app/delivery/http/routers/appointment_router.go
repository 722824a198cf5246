package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	feedbackController *controllers.FeedbackController,
) {
	router.With(middlewares.BookingRateLimit()).Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAll)
	router.Get("/{appointmentID}", appointmentController.FindByID)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
	router.Patch("/{appointmentID}/cancel", appointmentController.Cancel)
	router.Patch("/{appointmentID}/reschedule", appointmentController.Reschedule)
	router.Get("/{appointmentID}/feedback", feedbackController.FindByAppointment)
}

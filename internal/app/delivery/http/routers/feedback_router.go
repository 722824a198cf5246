package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, feedbackController *controllers.FeedbackController) {
	router.Post("/", feedbackController.CreateFeedback)
	router.Get("/{feedbackID}", feedbackController.FindByID)
	router.Patch("/{feedbackID}/reply", feedbackController.Reply)
}

package routers

import (
	"telecare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/{patientID}", patientController.FindByID)
	router.Patch("/{patientID}", patientController.UpdatePatient)
	router.Get("/{patientID}/favorites", patientController.GetFavorites)
	router.Post("/{patientID}/favorites/{doctorID}", patientController.AddFavorite)
	router.Delete("/{patientID}/favorites/{doctorID}", patientController.RemoveFavorite)
}

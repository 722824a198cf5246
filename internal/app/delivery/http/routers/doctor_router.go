package routers

import (
	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, controllers *Controllers) {
	doctorController := controllers.Doctor
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.FindAll)
	router.Get("/recommendations", doctorController.Recommend)

	router.Route("/{doctorID}", func(r chi.Router) {
		r.Get("/", doctorController.FindByID)
		r.Patch("/", doctorController.UpdateSettings)
		r.Patch("/approval", doctorController.UpdateApproval)
		r.Patch("/block", doctorController.Block)
		r.Patch("/unblock", doctorController.Unblock)

		r.Get("/locations", controllers.Location.FindAll)
		r.Post("/locations", controllers.Location.CreateLocation)
		r.Patch("/locations/{locationID}", controllers.Location.UpdateLocation)
		r.Delete("/locations/{locationID}", controllers.Location.DeleteLocation)

		r.Get("/slots", controllers.Slot.FindAll)
		r.Post("/slots", controllers.Slot.CreateSlot)
		r.Delete("/slots/{slotID}", controllers.Slot.DeleteSlot)
		r.Get("/availability", controllers.Slot.GetAvailability)
		r.Post("/schedule/export", controllers.Slot.ExportSchedule)

		r.Get("/feedback", controllers.Feedback.FindByDoctor)
	})
}

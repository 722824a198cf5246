package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
	ResponseHealthy = "service is healthy"

	// Doctor-related messages
	CreateDoctorSuccessMessage          = "doctor created successfully"
	GetDoctorSuccessMessage             = "get doctor successfully"
	GetDoctorsSuccessMessage            = "get doctors successfully"
	UpdateDoctorSettingsSuccessMessage  = "doctor settings updated successfully"
	UpdateDoctorApprovalSuccessMessage  = "doctor approval updated successfully"
	GetSpecialtiesSuccessMessage        = "get specialties successfully"
	GetRecommendedDoctorsSuccessMessage = "get recommended doctors successfully"
	BlockDoctorSuccessMessage           = "doctor blocked successfully"
	UnblockDoctorSuccessMessage         = "doctor unblocked successfully"

	// Patient-related messages
	CreatePatientSuccessMessage         = "patient created successfully"
	GetPatientSuccessMessage            = "get patient successfully"
	UpdatePatientSuccessMessage         = "patient updated successfully"
	AddFavoriteDoctorSuccessMessage     = "doctor added to favorites"
	RemoveFavoriteDoctorSuccessMessage  = "doctor removed from favorites"
	GetFavoriteDoctorsSuccessMessage    = "get favorite doctors successfully"

	// Location-related messages
	CreateLocationSuccessMessage = "location created successfully"
	GetLocationsSuccessMessage   = "get locations successfully"
	UpdateLocationSuccessMessage = "location updated successfully"
	DeleteLocationSuccessMessage = "location deleted successfully"

	// Slot-related messages
	CreateSlotSuccessMessage       = "slot created successfully"
	GetSlotsSuccessMessage         = "get slots successfully"
	DeleteSlotSuccessMessage       = "slot deleted successfully"
	GetAvailabilitySuccessMessage  = "get available times successfully"
	ExportScheduleSuccessMessage   = "schedule exported successfully"

	// Appointment-related messages
	CreateAppointmentSuccessMessage       = "appointment booked successfully"
	GetAppointmentSuccessMessage          = "get appointment successfully"
	GetAppointmentsSuccessMessage         = "get appointments successfully"
	UpdateAppointmentStatusSuccessMessage = "appointment status updated successfully"
	CancelAppointmentSuccessMessage       = "appointment cancelled successfully"
	RescheduleAppointmentSuccessMessage   = "appointment rescheduled successfully"

	// Feedback-related messages
	CreateFeedbackSuccessMessage = "feedback submitted successfully"
	GetFeedbackSuccessMessage    = "get feedback successfully"
	ReplyFeedbackSuccessMessage  = "feedback reply saved successfully"
)

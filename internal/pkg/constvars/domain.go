package constvars

const (
	AppointmentModeOnline   = "online"
	AppointmentModeInPerson = "in-person"
	// AppointmentModeBoth is accepted only when creating slots and expands to one slot per concrete mode.
	AppointmentModeBoth = "both"
)

const (
	AppointmentStatusUpcoming  = "upcoming"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

const (
	ActorPatient = "patient"
	ActorDoctor  = "doctor"
	ActorAdmin   = "admin"
)

const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

const (
	TimeFormat12h = "12h"
	TimeFormat24h = "24h"
)

const (
	DefaultAppointmentIntervalMinutes = 30
	MinAppointmentIntervalMinutes     = 5
	MaxAppointmentIntervalMinutes     = 240
)

const (
	SpecialtyOther = "Other"
)

// CoreSpecialties is the fixed list of specialties a doctor can pick without admin review.
var CoreSpecialties = []string{
	"Allergist",
	"Cardiologist",
	"Common Cold",
	"Dermatologist",
	"Endocrinologist",
	"Gastroenterologist",
	"Gynecologist",
	"Hepatologist",
	"Internal Medicine",
	"Neurologist",
	"Osteoarthritis",
	"Osteopathic",
	"Otolaryngologist",
	"Pediatrician",
	"Phlebologist",
	"Pulmonologist",
	"Rheumatologist",
}

var DateFormats = []string{"DD-MM-YYYY", "MM-DD-YYYY", "YYYY-MM-DD"}

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionLocations    = "hospital_locations"
	MongoCollectionSlots        = "appointment_slots"
	MongoCollectionAppointments = "appointments"
	MongoCollectionFeedback     = "feedback"
)

const (
	RedisKeyAvailabilityVersionFormat = "availability:version:%s"
	RedisKeyAvailabilityCacheFormat   = "availability:%s:v%s:%s:%s:%s"
	RedisKeySlotDayLockFormat         = "lock:slots:%s:%s"
	RedisKeyLocationLockFormat        = "lock:location:%s:%s"
	RedisKeyBookingLockFormat         = "lock:booking:%s:%s:%s:%s"
	RedisKeyAvailabilityWarmerLeader  = "availability:warmer:leader"
)

const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentCancelled     = "appointment.cancelled"
	EventAppointmentRescheduled   = "appointment.rescheduled"
	EventAppointmentStatusUpdated = "appointment.status_updated"
	EventFeedbackCreated          = "feedback.created"
)

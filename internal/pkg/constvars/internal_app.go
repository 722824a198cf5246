package constvars

type ContextKey string

const (
	ResourceDoctors      = "doctors"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
	ResourceFeedback     = "feedback"
	ResourceSpecialties  = "specialties"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 20
	AppMaxPageSize         = 100
)

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "TLCR_SVC_"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

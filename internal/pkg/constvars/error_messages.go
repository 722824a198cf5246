package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"email":            "must be a valid email",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"numeric":          "must be a number",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"lt":               "must be less than %s",
	"lte":              "must be less than or equal to %s",
	"uuid":             "must be a valid UUID",
	"required_if":      "is required when %s",
	"person_name":      "must contain only letters, and may include hyphens (-) or apostrophes (')",
	"password":         "must be 8-64 characters and contain an uppercase letter, a lowercase letter, a number and a special character",
	"phone_number":     "must contain 10 to 15 digits",
	"specialty":        "must be one of the listed specialties or Other",
	"day_of_week":      "must be a full weekday name such as Monday",
	"clock_time":       "must be a time in HH:MM format",
	"date_only":        "must be a date in YYYY-MM-DD format",
	"appointment_mode": "must be either online or in-person",
	"slot_mode":        "must be one of [online, in-person, both]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"len":         true,
	"gt":          true,
	"gte":         true,
	"lt":          true,
	"lte":         true,
	"oneof":       true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientServiceUnavailable            = "service is temporarily unavailable"

	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientLocationNotFound              = "Location not found"
	ErrClientSlotNotFound                  = "Slot not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientFeedbackNotFound              = "Feedback not found"
	ErrClientDoctorNotAvailableOnDay       = "Doctor is not available on %ss for %s appointments"
	ErrClientTimeNotAvailable              = "Selected time is not available for %s appointments on %ss"
	ErrClientTimeSlotAlreadyBooked         = "Time slot is already booked for %s appointments"
	ErrClientAppointmentInPast             = "Cannot book an appointment in the past"
	ErrClientAppointmentAlreadyCancelled   = "Appointment is already cancelled"
	ErrClientCannotCancelCompleted         = "Cannot cancel a completed appointment"
	ErrClientOnlyUpcomingCanBeRescheduled  = "Only upcoming appointments can be rescheduled"
	ErrClientRescheduleReasonRequired      = "Reschedule reason is required"
	ErrClientCancelledStatusIsFinal        = "Cancelled appointments cannot change status"
	ErrClientSlotOverlap                   = "Time slot overlaps with existing %s slot (%s - %s) on %s. Please choose a different time."
	ErrClientSlotScheduleBusy              = "The schedule is being modified, please try again"
	ErrClientBookingInProgress             = "This time slot is being booked by someone else, please try again"
	ErrClientLocationRequiredForInPerson   = "Location is required for in-person slots"
	ErrClientLocationInactive              = "Location is not active"
	ErrClientLocationHasActiveSlots        = "Location still has active in-person slots"
	ErrClientSlotStartAfterEnd             = "Start time must be before end time"
	ErrClientFeedbackNotAllowed            = "Feedback can only be submitted for completed or cancelled appointments"
	ErrClientFeedbackAlreadyExists         = "Feedback already exists for this appointment"
	ErrClientRatingOutOfRange              = "Rating must be an integer between 1 and 5"
	ErrClientRejectionReasonRequired       = "Rejection reason is required"
	ErrClientDoctorAlreadyInFavorites      = "Doctor is already in favorites"
	ErrClientDoctorNotInFavorites          = "Doctor is not in favorites"
	ErrClientInvalidAppointmentInterval    = "Appointment interval must be between 5 and 240 minutes"
	ErrClientInvalidAppointmentStatus      = "Status must be one of upcoming, completed or cancelled"
	ErrClientReplyTextRequired             = "Reply text is required"
	ErrClientInvalidSpecialty              = "Specialty must be one of the listed specialties or Other"
	ErrClientDateBeforeToday               = "Date cannot be in the past"
	ErrClientInvalidDate                   = "Date must be in YYYY-MM-DD format"
	ErrClientInvalidTime                   = "Time must be in HH:MM format"
	ErrClientInvalidMode                   = "Mode must be either online or in-person"
	ErrClientBookingSameAsCurrentSchedule  = "New date and time are the same as the current schedule"
	ErrClientUnknownActor                  = "Actor must be one of patient, doctor or admin"
	ErrClientSpecialtyRequired             = "specialty parameter is required"
	ErrClientDoctorBlocked                 = "Doctor is currently not accepting appointments"
	ErrClientDoctorAlreadyBlocked          = "Doctor is already blocked"
	ErrClientDoctorNotBlocked              = "Doctor is not blocked"
	ErrClientBlockReasonRequired           = "Block reason is required"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotParseTime            = "cannot parse time into the given format"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevInvalidFormat              = "invalid %s format"
	ErrDevURLParamIDValidationFailed = "url param %s is missing or malformed"
	ErrDevServerDeadlineExceeded     = "the server exceeded the request deadline"
	ErrDevServerProcess              = "the server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevRequestBodyTooLarge        = "request body exceeds %d bytes"
	ErrDevPanicRecovered             = "recovered from panic"
	ErrDevDependencyUnhealthy        = "one or more dependencies failed the health check"
	ErrDevFailedToHashPassword       = "failed to hash password"

	ErrDevDBFailedToFindDocument      = "failed to find document in database"
	ErrDevDBFailedToInsertDocument    = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument    = "failed to update document in database"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document in database"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents from database"
	ErrDevDBFailedToCountDocuments    = "failed to count documents in database"
	ErrDevDBFailedToCreateIndex       = "failed to create database index"
	ErrDevDBDuplicateKey              = "duplicate key on unique index %s"

	ErrDevRedisGetNoData      = "failed to get data from redis for key %s"
	ErrDevRedisSetData        = "failed to set data in redis"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisIncrementValue = "failed to increment value in redis"
	ErrDevRedisUnlock         = "failed to release redis lock"
	ErrDevRedisRefreshLock    = "failed to refresh redis lock"

	ErrDevMinioFailedToCreateObject   = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject  = "failed to presign object in bucket %s"
	ErrDevRabbitMQFailedToPublish     = "failed to publish message to queue %s"

	ErrDevDoctorNotFound       = "doctor %s does not exist"
	ErrDevPatientNotFound      = "patient %s does not exist"
	ErrDevLocationNotFound     = "location %s does not exist for doctor"
	ErrDevSlotNotFound         = "slot %s does not exist for doctor"
	ErrDevAppointmentNotFound  = "appointment %s does not exist"
	ErrDevFeedbackNotFound     = "feedback %s does not exist"
	ErrDevSlotOverlap          = "slot overlaps with active slot %s"
	ErrDevLockNotAcquired      = "lock %s is held by another request"
	ErrDevBookingRuleViolated  = "booking rule violated"
	ErrDevTimeSlotBooked       = "time slot already booked"
	ErrDevStatusTransition     = "appointment status transition rejected"
	ErrDevFeedbackRuleViolated = "feedback rule violated"
	ErrDevProfileValidation    = "profile field validation failed"
)

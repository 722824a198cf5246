package constvars

const (
	URLParamDoctorID      = "doctorID"
	URLParamPatientID     = "patientID"
	URLParamLocationID    = "locationID"
	URLParamSlotID        = "slotID"
	URLParamAppointmentID = "appointmentID"
	URLParamFeedbackID    = "feedbackID"
)

const (
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "page_size"
	URLQueryParamDate      = "date"
	URLQueryParamMode      = "mode"
	URLQueryParamLocation  = "location"
	URLQueryParamExclude   = "exclude"
	URLQueryParamDoctor    = "doctor"
	URLQueryParamPatient   = "patient"
	URLQueryParamStatus    = "status"
	URLQueryParamSpecialty = "specialty"
	URLQueryParamApproval  = "approval_status"
)

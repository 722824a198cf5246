package utils

import (
	"strings"
	"telecare-service/internal/pkg/dto/requests"
)

func trimPtr(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = CapitalizeWords(strings.TrimSpace(input.FirstName))
	input.MiddleName = CapitalizeWords(strings.TrimSpace(input.MiddleName))
	input.LastName = CapitalizeWords(strings.TrimSpace(input.LastName))
	input.Gender = strings.TrimSpace(input.Gender)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.Bio = strings.TrimSpace(input.Bio)
}

func SanitizeUpdateDoctorSettingsRequest(input *requests.UpdateDoctorSettings) {
	trimPtr(input.FirstName)
	trimPtr(input.MiddleName)
	trimPtr(input.LastName)
	trimPtr(input.Bio)
}

func SanitizeCreatePatientRequest(input *requests.CreatePatient) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = CapitalizeWords(strings.TrimSpace(input.FirstName))
	input.LastName = CapitalizeWords(strings.TrimSpace(input.LastName))
	input.Gender = strings.TrimSpace(input.Gender)
}

func SanitizeUpdatePatientRequest(input *requests.UpdatePatient) {
	trimPtr(input.FirstName)
	trimPtr(input.LastName)
	trimPtr(input.Gender)
}

func SanitizeCreateLocationRequest(input *requests.CreateLocation) {
	input.Name = strings.TrimSpace(input.Name)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeUpdateLocationRequest(input *requests.UpdateLocation) {
	trimPtr(input.Name)
	trimPtr(input.Address)
}

func SanitizeCreateSlotRequest(input *requests.CreateSlot) {
	input.DayOfWeek = strings.TrimSpace(input.DayOfWeek)
	input.StartTime = strings.TrimSpace(input.StartTime)
	input.EndTime = strings.TrimSpace(input.EndTime)
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
	input.LocationID = strings.TrimSpace(input.LocationID)
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Mode = strings.ToLower(strings.TrimSpace(input.Mode))
	input.LocationID = strings.TrimSpace(input.LocationID)
	input.Reason = strings.TrimSpace(input.Reason)
}

func SanitizeRescheduleAppointmentRequest(input *requests.RescheduleAppointment) {
	input.NewDate = strings.TrimSpace(input.NewDate)
	input.NewTime = strings.TrimSpace(input.NewTime)
	input.Reason = strings.TrimSpace(input.Reason)
	input.RescheduledBy = strings.ToLower(strings.TrimSpace(input.RescheduledBy))
}

func SanitizeCancelAppointmentRequest(input *requests.CancelAppointment) {
	input.Reason = strings.TrimSpace(input.Reason)
	input.CancelledBy = strings.ToLower(strings.TrimSpace(input.CancelledBy))
}

func SanitizeFeedbackRequest(input *requests.CreateFeedback) {
	input.AppointmentID = strings.TrimSpace(input.AppointmentID)
	input.Comment = strings.TrimSpace(input.Comment)
}

package utils

import (
	"telecare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateDoctorRequest(t *testing.T) {
	request := &requests.CreateDoctor{
		Email:     "  DR.WHO@EXAMPLE.COM ",
		FirstName: "  mary jane ",
		LastName:  "O'BRIEN",
		Specialty: " Cardiologist ",
	}

	SanitizeCreateDoctorRequest(request)

	assert.Equal(t, "dr.who@example.com", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, "Mary Jane", request.FirstName)
	assert.Equal(t, "O'brien", request.LastName)
	assert.Equal(t, "Cardiologist", request.Specialty)
}

func TestSanitizeCreateSlotRequest(t *testing.T) {
	request := &requests.CreateSlot{
		DayOfWeek: " Monday ",
		StartTime: " 09:00",
		EndTime:   "12:00 ",
		Mode:      " In-Person ",
	}

	SanitizeCreateSlotRequest(request)

	assert.Equal(t, "Monday", request.DayOfWeek)
	assert.Equal(t, "09:00", request.StartTime)
	assert.Equal(t, "12:00", request.EndTime)
	assert.Equal(t, "in-person", request.Mode)
}

func TestSanitizeUpdatePatientRequest(t *testing.T) {
	name := "  Ann  "
	request := &requests.UpdatePatient{FirstName: &name}

	SanitizeUpdatePatientRequest(request)

	assert.Equal(t, "Ann", *request.FirstName)
	assert.Nil(t, request.LastName)
}

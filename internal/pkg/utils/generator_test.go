package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDoctorID(t *testing.T) {
	id, err := GenerateDoctorID()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^dr\d{6}$`), id)
	assert.NoError(t, ValidateDoctorID(id))
}

func TestGenerateAppointmentID(t *testing.T) {
	now := time.Unix(1700000000, 0)
	id, err := GenerateAppointmentID(now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "APT-1700000000-"))
	assert.NoError(t, ValidateAppointmentID(id))
}

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()
	assert.True(t, strings.HasPrefix(first, "TLCR_SVC_"))
	assert.NotEqual(t, first, second)
}

func TestGenerateFileName(t *testing.T) {
	now := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "schedule_dr123456_20250102_030405.json", GenerateFileName("schedule", "dr123456", ".json", now))
}

func TestValidateURLParams(t *testing.T) {
	assert.Error(t, ValidateDoctorID(""))
	assert.Error(t, ValidateDoctorID("dr12345"))
	assert.Error(t, ValidateAppointmentID("APT-1-12"))
	assert.Error(t, ValidateUrlParamID("not-a-uuid"))
	assert.NoError(t, ValidateUrlParamID("8c1f6a52-6f53-4c38-9d55-1b6f1f0b2a10"))
}

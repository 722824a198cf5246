package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidation(t *testing.T, expected string, err error) {
	t.Helper()
	if expected == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.Equal(t, expected, err.Error())
}

func TestValidateName(t *testing.T) {
	const lettersOnly = "must contain only letters, and may include hyphens (-) or apostrophes (')"

	tests := []struct {
		name     string
		input    string
		field    string
		required bool
		expected string
	}{
		{"simple name", "John", "First name", true, ""},
		{"hyphenated", "Mary-Jane", "First name", true, ""},
		{"apostrophe", "O'Brien", "Last name", true, ""},
		{"inner space", "Anne Marie", "First name", true, ""},
		{"two characters", "Li", "Last name", true, ""},
		{"empty optional", "", "Middle name", false, ""},
		{"single letter", "J", "First name", true, "First name must be at least 2 characters"},
		{"digits", "John123", "First name", true, "First name " + lettersOnly},
		{"at symbol", "John@Smith", "Last name", true, "Last name " + lettersOnly},
		{"underscore", "John_Doe", "Last name", true, "Last name " + lettersOnly},
		{"empty required", "", "First name", true, "First name is required"},
		{"too long", strings.Repeat("a", 31), "First name", true, "First name must not exceed 30 characters"},
		{"leading hyphen", "-John", "First name", true, "First name " + lettersOnly},
		{"trailing hyphen", "John-", "First name", true, "First name " + lettersOnly},
		{"leading apostrophe", "'John", "First name", true, "First name " + lettersOnly},
		{"trimmed before checks", "  Jo  ", "First name", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateName(tt.input, tt.field, tt.required))
		})
	}
}

func TestValidateAdminFullName(t *testing.T) {
	const charset = "Full name must contain only letters and may include hyphens (-) or apostrophes (')"

	tests := []struct {
		input    string
		expected string
	}{
		{"John Doe", ""},
		{"John Paul George Ringo", ""},
		{"Mary-Kate O'Connor Smith", ""},
		{strings.Repeat("A", 30), ""},
		{" John", ""},
		{"Jean--Pierre", ""},
		{"", "Full name is required"},
		{"A ", "Full name must be at least 2 characters"},
		{strings.Repeat("A", 31), "Full name must not exceed 30 characters"},
		{"John  Doe", "Full name cannot contain consecutive spaces"},
		{"A B C D E", "Full name can contain at most 3 spaces"},
		{"John Doe 2", charset},
		{"John.Doe", charset},
		{"John'", charset},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateAdminFullName(tt.input))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "Password is required"},
		{"Pass1@", "Password must be at least 8 characters long"},
		{"P@ssw0rd" + strings.Repeat("a", 60), "Password must not exceed 64 characters"},
		{"password123@", "Password must contain at least one uppercase letter (A-Z)"},
		{"PASSWORD123@", "Password must contain at least one lowercase letter (a-z)"},
		{"Password@", "Password must contain at least one number (0-9)"},
		{"Password123", "Password must contain at least one special character (!@#$%^&*, etc.)"},
		{"MyP@ssw0rd123", ""},
		{"Secure#2024Pass", ""},
		{"Test$1234Abc", ""},
		{"Admin!2024", ""},
		{`Back\slash1a`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidatePassword(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	const digitsOnly = "Phone number must contain only digits (0-9)"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ten digits", "1234567890", ""},
		{"fifteen digits", "123456789012345", ""},
		{"all zeros", "0000000000", ""},
		{"empty", "", "Phone number is required"},
		{"nine digits", "123456789", "Phone number must be at least 10 digits"},
		{"sixteen digits", "1234567890123456", "Phone number must not exceed 15 digits"},
		{"inner space", "12345 67890", digitsOnly},
		{"plus sign", "+1234567890", digitsOnly},
		{"hyphens", "123-456-7890", digitsOnly},
		{"trailing newline", "1234567890\n", digitsOnly},
		{"short with letters", "123abc", digitsOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidatePhone(tt.input))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"valid", "patient@example.com", ""},
		{"plus tag", "user+tag@example.co.uk", ""},
		{"minimal", "a@b.c", ""},
		{"at limit", strings.Repeat("a", 241) + "@example.com", ""},
		{"empty", "", "Email is required"},
		{"over limit", strings.Repeat("a", 242) + "@example.com", "Email must be under 254 characters"},
		{"space", "patient @example.com", "Email must not contain spaces"},
		{"missing at", "patientexample.com", `Email must contain "@" and "."`},
		{"missing dot", "patient@domain", `Email must contain "@" and "."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateEmail(tt.input))
		})
	}
}

func TestValidateCustomSpecialty(t *testing.T) {
	const required = `Custom specialty is required when "Other" is selected`
	const charset = "Custom specialty must contain only letters and spaces"

	tests := []struct {
		input    string
		expected string
	}{
		{"Heart Surgeon", ""},
		{"Abc", ""},
		{strings.Repeat("A", 50), ""},
		{"Heart   Surgeon", ""},
		{"  Heart Surgeon  ", ""},
		{"ab", "Custom specialty must be at least 3 characters"},
		{strings.Repeat("A", 51), "Custom specialty must not exceed 50 characters"},
		{"Test123", charset},
		{"Test-Med", charset},
		{"", required},
		{"   ", required},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateCustomSpecialty(tt.input))
		})
	}
}

func TestValidateSpecialty(t *testing.T) {
	assert.NoError(t, ValidateSpecialty("Cardiologist", ""))
	assert.NoError(t, ValidateSpecialty("Other", "Sports Medicine"))
	assert.EqualError(t, ValidateSpecialty("Other", ""), `Custom specialty is required when "Other" is selected`)
	assert.Error(t, ValidateSpecialty("Astrologer", ""))
	assert.Error(t, ValidateSpecialty("", ""))
}

func TestCapitalization(t *testing.T) {
	assert.Equal(t, "John Doe", CapitalizeWords("jOhN dOe"))
	assert.Equal(t, "Jean-pierre", CapitalizeWords("jean-pierre"))
	assert.Equal(t, "John  Doe", CapitalizeWords("john  doe"))
	assert.Equal(t, "Mcdonald", CapitalizeName("mCdonald"))
	assert.Equal(t, "", CapitalizeName(""))
	assert.Equal(t, "Sports Medicine", CapitalizeSpecialty("  sports MEDICINE "))
}

func TestValidateBio(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"exactly fifty", "I am a cardiologist with 10 years of experience!!!", ""},
		{"maximum", strings.Repeat("A", 1000), ""},
		{"angle brackets without tag", "Scores: 3 < 5 and 7 > 2 are simple comparisons in any text.", ""},
		{"too short", "Short bio", "Bio must be at least 50 characters"},
		{"short padded", "   Short   ", "Bio must be at least 50 characters"},
		{"too long", strings.Repeat("A", 1001), "Bio must not exceed 1000 characters"},
		{"html tag", "<p>" + strings.Repeat("A", 60) + "</p>", "Bio cannot contain HTML tags or scripts"},
		{"script", "<script>alert(1)</script>", "Bio cannot contain HTML tags or scripts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateBio(tt.input))
		})
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	now := time.Date(2025, time.November, 13, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected string
	}{
		{"", "Date of birth is required"},
		{"invalid-date", "Invalid date"},
		{"2030-01-01", "Date of birth cannot be in the future"},
		{"2001-12-12", "You must be at least 25 years old"},
		{"2000-11-14", "You must be at least 25 years old"},
		{"2000-11-13", ""},
		{"1995-06-15", ""},
		{"1945-11-13", ""},
		{"1944-01-01", "Age cannot exceed 80 years"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateDateOfBirth(tt.input, now))
		})
	}
}

func TestValidateGender(t *testing.T) {
	assert.EqualError(t, ValidateGender(""), "Gender is required")
	assert.NoError(t, ValidateGender("Prefer not to say"))
}

func TestValidateYearsOfExperience(t *testing.T) {
	tests := []struct {
		input    string
		years    int
		expected string
	}{
		{"0", 0, ""},
		{"50", 50, ""},
		{"12", 12, ""},
		{"", 0, "Years of experience is required"},
		{"51", 0, "Years of experience cannot exceed 50"},
		{"-1", 0, "Years of experience cannot be negative"},
		{"2.5", 0, "Years of experience must be a whole number (no decimals)"},
		{"-2.5", 0, "Years of experience must be a whole number (no decimals)"},
		{"5years", 0, "Years of experience must be a valid number"},
		{"abc", 0, "Years of experience must be a valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			years, err := ValidateYearsOfExperience(tt.input)
			assertValidation(t, tt.expected, err)
			assert.Equal(t, tt.years, years)
		})
	}
}

func TestValidateLicenseNumber(t *testing.T) {
	const charset = "License number must contain only letters, numbers, hyphens, or slashes"

	tests := []struct {
		input    string
		expected string
	}{
		{"MED123456", ""},
		{"MED-2024-ABC", ""},
		{"/ABC123", ""},
		{"A1-B2/C3", ""},
		{"", "License number is required"},
		{"MED 123456", charset},
		{"MED_123456", charset},
		{`MED\123456`, charset},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assertValidation(t, tt.expected, ValidateLicenseNumber(tt.input))
		})
	}
}

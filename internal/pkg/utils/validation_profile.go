package utils

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"telecare-service/internal/pkg/constvars"
	"time"
	"unicode"
	"unicode/utf8"
)

var (
	rePersonName            = regexp.MustCompile(constvars.RegexPersonName)
	reContainUppercase      = regexp.MustCompile(constvars.RegexContainUppercase)
	reContainLowercase      = regexp.MustCompile(constvars.RegexContainLowercase)
	reContainDigit          = regexp.MustCompile(constvars.RegexContainDigit)
	reContainSpecialChar    = regexp.MustCompile(constvars.RegexContainSpecialChar)
	reDigitsOnly            = regexp.MustCompile(constvars.RegexDigitsOnly)
	reLettersAndSpaces      = regexp.MustCompile(constvars.RegexLettersAndSpaces)
	reLicenseNumber         = regexp.MustCompile(constvars.RegexLicenseNumber)
	reHTMLTag               = regexp.MustCompile(constvars.RegexHTMLTag)
	reConsecutiveWhitespace = regexp.MustCompile(constvars.RegexConsecutiveWhitespace)
	reWhitespace            = regexp.MustCompile(`\s`)
)

const (
	nameMinLength            = 2
	nameMaxLength            = 30
	fullNameMaxSpaces        = 3
	passwordMinLength        = 8
	passwordMaxLength        = 64
	phoneMinDigits           = 10
	phoneMaxDigits           = 15
	emailMaxLength           = 253
	customSpecialtyMinLength = 3
	customSpecialtyMaxLength = 50
	bioMinLength             = 50
	bioMaxLength             = 1000
	doctorMinAge             = 25
	doctorMaxAge             = 80
	experienceMaxYears       = 50
)

// ValidateName checks a first, middle or last name. Optional names may be empty.
func ValidateName(name, fieldName string, required bool) error {
	if name == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}

	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	if length < nameMinLength {
		return fmt.Errorf("%s must be at least %d characters", fieldName, nameMinLength)
	}
	if length > nameMaxLength {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, nameMaxLength)
	}
	if !rePersonName.MatchString(trimmed) {
		return fmt.Errorf("%s must contain only letters, and may include hyphens (-) or apostrophes (')", fieldName)
	}
	return nil
}

func ValidateAdminFullName(fullName string) error {
	if fullName == "" {
		return errors.New("Full name is required")
	}

	trimmed := strings.TrimSpace(fullName)
	length := utf8.RuneCountInString(trimmed)
	if length < nameMinLength {
		return errors.New("Full name must be at least 2 characters")
	}
	if length > nameMaxLength {
		return errors.New("Full name must not exceed 30 characters")
	}
	if reConsecutiveWhitespace.MatchString(fullName) {
		return errors.New("Full name cannot contain consecutive spaces")
	}
	if len(reWhitespace.FindAllString(fullName, -1)) > fullNameMaxSpaces {
		return errors.New("Full name can contain at most 3 spaces")
	}
	if !rePersonName.MatchString(trimmed) {
		return errors.New("Full name must contain only letters and may include hyphens (-) or apostrophes (')")
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("Password is required")
	}

	length := utf8.RuneCountInString(password)
	switch {
	case length < passwordMinLength:
		return errors.New("Password must be at least 8 characters long")
	case length > passwordMaxLength:
		return errors.New("Password must not exceed 64 characters")
	case !reContainUppercase.MatchString(password):
		return errors.New("Password must contain at least one uppercase letter (A-Z)")
	case !reContainLowercase.MatchString(password):
		return errors.New("Password must contain at least one lowercase letter (a-z)")
	case !reContainDigit.MatchString(password):
		return errors.New("Password must contain at least one number (0-9)")
	case !reContainSpecialChar.MatchString(password):
		return errors.New("Password must contain at least one special character (!@#$%^&*, etc.)")
	}
	return nil
}

func ValidatePhone(phone string) error {
	if phone == "" {
		return errors.New("Phone number is required")
	}
	if !reDigitsOnly.MatchString(phone) {
		return errors.New("Phone number must contain only digits (0-9)")
	}
	if len(phone) < phoneMinDigits {
		return errors.New("Phone number must be at least 10 digits")
	}
	if len(phone) > phoneMaxDigits {
		return errors.New("Phone number must not exceed 15 digits")
	}
	return nil
}

// ValidateEmail is a format guard only. Uniqueness is enforced by the repository.
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("Email is required")
	}
	if len(email) > emailMaxLength {
		return errors.New("Email must be under 254 characters")
	}
	if strings.Contains(email, " ") {
		return errors.New("Email must not contain spaces")
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return errors.New(`Email must contain "@" and "."`)
	}
	return nil
}

func ValidateCustomSpecialty(specialty string) error {
	trimmed := strings.TrimSpace(specialty)
	if trimmed == "" {
		return errors.New(`Custom specialty is required when "Other" is selected`)
	}

	length := utf8.RuneCountInString(trimmed)
	if length < customSpecialtyMinLength {
		return errors.New("Custom specialty must be at least 3 characters")
	}
	if length > customSpecialtyMaxLength {
		return errors.New("Custom specialty must not exceed 50 characters")
	}
	if !reLettersAndSpaces.MatchString(trimmed) {
		return errors.New("Custom specialty must contain only letters and spaces")
	}
	return nil
}

// ValidateSpecialty accepts a core specialty, or "Other" together with a valid custom specialty.
func ValidateSpecialty(specialty, customSpecialty string) error {
	if specialty == "" {
		return errors.New("Specialty is required")
	}
	if specialty == constvars.SpecialtyOther {
		return ValidateCustomSpecialty(customSpecialty)
	}
	if !IsCoreSpecialty(specialty) {
		return errors.New(constvars.ErrClientInvalidSpecialty)
	}
	return nil
}

func IsCoreSpecialty(specialty string) bool {
	for _, core := range constvars.CoreSpecialties {
		if core == specialty {
			return true
		}
	}
	return false
}

func ValidateBio(bio string) error {
	if bio == "" {
		return nil
	}

	lowered := strings.ToLower(bio)
	if reHTMLTag.MatchString(bio) || strings.Contains(lowered, "<script") || strings.Contains(lowered, "</script>") {
		return errors.New("Bio cannot contain HTML tags or scripts")
	}

	trimmedLength := utf8.RuneCountInString(strings.TrimSpace(bio))
	if trimmedLength > 0 && trimmedLength < bioMinLength {
		return errors.New("Bio must be at least 50 characters")
	}
	if utf8.RuneCountInString(bio) > bioMaxLength {
		return errors.New("Bio must not exceed 1000 characters")
	}
	return nil
}

// ValidateDateOfBirth checks a YYYY-MM-DD birth date against the doctor age window relative to now.
func ValidateDateOfBirth(dob string, now time.Time) error {
	if dob == "" {
		return errors.New("Date of birth is required")
	}

	birthDate, err := time.ParseInLocation(constvars.DateLayout, dob, now.Location())
	if err != nil {
		return errors.New("Invalid date")
	}
	if birthDate.After(now) {
		return errors.New("Date of birth cannot be in the future")
	}

	age := CalculateAge(birthDate, now)
	if age < doctorMinAge {
		return errors.New("You must be at least 25 years old")
	}
	if age > doctorMaxAge {
		return errors.New("Age cannot exceed 80 years")
	}
	return nil
}

// CalculateAge returns completed years between birthDate and now.
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() || (now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

func ValidateGender(gender string) error {
	if gender == "" {
		return errors.New("Gender is required")
	}
	return nil
}

// ValidateYearsOfExperience parses the raw form value and returns the whole number of years.
func ValidateYearsOfExperience(experience string) (int, error) {
	if experience == "" {
		return 0, errors.New("Years of experience is required")
	}

	years, err := strconv.ParseFloat(strings.TrimSpace(experience), 64)
	if err != nil || math.IsNaN(years) {
		return 0, errors.New("Years of experience must be a valid number")
	}
	if math.IsInf(years, 0) || years != math.Trunc(years) {
		return 0, errors.New("Years of experience must be a whole number (no decimals)")
	}
	if years < 0 {
		return 0, errors.New("Years of experience cannot be negative")
	}
	if years > experienceMaxYears {
		return 0, errors.New("Years of experience cannot exceed 50")
	}
	return int(years), nil
}

func ValidateLicenseNumber(license string) error {
	if license == "" {
		return errors.New("License number is required")
	}
	if !reLicenseNumber.MatchString(license) {
		return errors.New("License number must contain only letters, numbers, hyphens, or slashes")
	}
	return nil
}

// CapitalizeName upper-cases the first letter and lower-cases the rest.
func CapitalizeName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// CapitalizeWords applies CapitalizeName to every space separated word, keeping the spacing.
func CapitalizeWords(value string) string {
	words := strings.Split(value, " ")
	for i, word := range words {
		words[i] = CapitalizeName(word)
	}
	return strings.Join(words, " ")
}

func CapitalizeSpecialty(specialty string) string {
	return CapitalizeWords(strings.TrimSpace(specialty))
}

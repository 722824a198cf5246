package utils

import (
	"regexp"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var reClockHHMM = regexp.MustCompile(constvars.RegexClockHHMM)

func init() {
	validate = validator.New()
	validate.RegisterValidation("person_name", validatePersonName)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("specialty", validateSpecialty)
	validate.RegisterValidation("day_of_week", validateDayOfWeek)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("appointment_mode", validateAppointmentMode)
	validate.RegisterValidation("slot_mode", validateSlotMode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePersonName(fl validator.FieldLevel) bool {
	return ValidateName(fl.Field().String(), fl.FieldName(), false) == nil
}

func validatePassword(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String()) == nil
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return ValidatePhone(fl.Field().String()) == nil
}

func validateSpecialty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.SpecialtyOther || IsCoreSpecialty(value)
}

func validateDayOfWeek(fl validator.FieldLevel) bool {
	_, ok := ParseWeekday(fl.Field().String())
	return ok
}

func validateClockTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !reClockHHMM.MatchString(value) {
		return false
	}
	_, err := ParseClock(value)
	return err == nil
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateLayout, fl.Field().String())
	return err == nil
}

func validateAppointmentMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AppointmentModeOnline || value == constvars.AppointmentModeInPerson
}

func validateSlotMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.AppointmentModeOnline ||
		value == constvars.AppointmentModeInPerson ||
		value == constvars.AppointmentModeBoth
}

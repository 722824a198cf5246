package utils

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
)

var (
	reDoctorID      = regexp.MustCompile(`^dr\d{6}$`)
	reAppointmentID = regexp.MustCompile(`^APT-\d+-\d{4}$`)
)

func ValidateUrlParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}

	_, err := uuid.Parse(param)
	if err != nil {
		return err
	}

	return nil
}

func ValidateDoctorID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !reDoctorID.MatchString(param) {
		return errors.New("doctor id must look like dr123456")
	}
	return nil
}

func ValidateAppointmentID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	if !reAppointmentID.MatchString(param) {
		return errors.New("appointment id must look like APT-1700000000-1234")
	}
	return nil
}

// Package testutil builds randomized domain fixtures for tests.
package testutil

import (
	"math/rand"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"time"

	"github.com/jaswdr/faker"
)

var (
	Source = rand.NewSource(time.Now().UnixNano())
	Faker  = faker.NewWithSeed(Source)
)

func RandomDoctor() models.Doctor {
	return models.Doctor{
		ID:                  "dr" + Faker.Numerify("######"),
		Email:               Faker.Internet().Email(),
		FirstName:           Faker.Person().FirstName(),
		LastName:            Faker.Person().LastName(),
		Gender:              Faker.RandomStringElement([]string{"Male", "Female"}),
		DateOfBirth:         "1980-01-15",
		Specialty:           Faker.RandomStringElement(constvars.CoreSpecialties),
		Phone:               Faker.Numerify("##########"),
		LicenseNumber:       "MED-" + Faker.Numerify("######"),
		YearsOfExperience:   Faker.IntBetween(0, 40),
		AppointmentInterval: constvars.DefaultAppointmentIntervalMinutes,
		TimeFormat:          constvars.TimeFormat24h,
		DateFormat:          "YYYY-MM-DD",
		ApprovalStatus:      constvars.ApprovalStatusApproved,
	}
}

func RandomPatient() models.Patient {
	return models.Patient{
		ID:              Faker.UUID().V4(),
		Email:           Faker.Internet().Email(),
		FirstName:       Faker.Person().FirstName(),
		LastName:        Faker.Person().LastName(),
		Phone:           Faker.Numerify("##########"),
		FavoriteDoctors: []string{},
	}
}

func RandomLocation(doctorID string) models.HospitalLocation {
	return models.HospitalLocation{
		ID:       Faker.UUID().V4(),
		DoctorID: doctorID,
		Name:     Faker.Company().Name(),
		Address:  Faker.Address().Address(),
		Phone:    Faker.Numerify("##########"),
		IsActive: true,
	}
}

func Slot(doctorID, day, start, end, mode, locationID string) models.AppointmentSlot {
	return models.AppointmentSlot{
		ID:         Faker.UUID().V4(),
		DoctorID:   doctorID,
		DayOfWeek:  day,
		StartTime:  start,
		EndTime:    end,
		Mode:       mode,
		LocationID: locationID,
		IsActive:   true,
	}
}

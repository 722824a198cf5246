package models

import (
	"strings"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/responses"
	"time"
)

type Doctor struct {
	ID                  string     `bson:"_id"`
	Email               string     `bson:"email"`
	Password            string     `bson:"password"`
	FirstName           string     `bson:"firstName"`
	MiddleName          string     `bson:"middleName,omitempty"`
	LastName            string     `bson:"lastName"`
	Gender              string     `bson:"gender"`
	DateOfBirth         string     `bson:"dateOfBirth"`
	Specialty           string     `bson:"specialty"`
	PendingSpecialty    string     `bson:"pendingSpecialty,omitempty"`
	Phone               string     `bson:"phone"`
	LicenseNumber       string     `bson:"licenseNumber"`
	YearsOfExperience   int        `bson:"yearsOfExperience"`
	Bio                 string     `bson:"bio,omitempty"`
	AppointmentInterval int        `bson:"appointmentInterval"`
	TimeFormat          string     `bson:"timeFormat"`
	DateFormat          string     `bson:"dateFormat"`
	ApprovalStatus      string     `bson:"approvalStatus"`
	RejectionReason     string     `bson:"rejectionReason,omitempty"`
	IsBlocked           bool       `bson:"isBlocked"`
	BlockReason         string     `bson:"blockReason,omitempty"`
	BlockedAt           *time.Time `bson:"blockedAt,omitempty"`
	TimeModel           `bson:",inline"`
}

func (d *Doctor) FullName() string {
	parts := []string{d.FirstName}
	if d.MiddleName != "" {
		parts = append(parts, d.MiddleName)
	}
	parts = append(parts, d.LastName)
	return strings.Join(parts, " ")
}

// IntervalMinutes returns the booking grid step, falling back to the default for unset records.
func (d *Doctor) IntervalMinutes() int {
	if d.AppointmentInterval <= 0 {
		return constvars.DefaultAppointmentIntervalMinutes
	}
	return d.AppointmentInterval
}

// Recommendable reports whether patients may be pointed at the doctor.
func (d *Doctor) Recommendable() bool {
	return d.ApprovalStatus == constvars.ApprovalStatusApproved && !d.IsBlocked
}

func (d *Doctor) ToResponse() responses.Doctor {
	return responses.Doctor{
		ID:                  d.ID,
		Email:               d.Email,
		FirstName:           d.FirstName,
		MiddleName:          d.MiddleName,
		LastName:            d.LastName,
		FullName:            d.FullName(),
		Gender:              d.Gender,
		DateOfBirth:         d.DateOfBirth,
		Specialty:           d.Specialty,
		PendingSpecialty:    d.PendingSpecialty,
		Phone:               d.Phone,
		LicenseNumber:       d.LicenseNumber,
		YearsOfExperience:   d.YearsOfExperience,
		Bio:                 d.Bio,
		AppointmentInterval: d.IntervalMinutes(),
		TimeFormat:          d.TimeFormat,
		DateFormat:          d.DateFormat,
		ApprovalStatus:      d.ApprovalStatus,
		RejectionReason:     d.RejectionReason,
		IsBlocked:           d.IsBlocked,
		BlockReason:         d.BlockReason,
		BlockedAt:           d.BlockedAt,
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

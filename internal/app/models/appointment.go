package models

import (
	"strings"
	"telecare-service/internal/pkg/dto/responses"
	"time"
)

type Appointment struct {
	ID                 string     `bson:"_id"`
	PatientID          string     `bson:"patientId"`
	DoctorID           string     `bson:"doctorId"`
	Date               string     `bson:"date"`
	Time               string     `bson:"time"`
	Type               string     `bson:"type,omitempty"`
	Mode               string     `bson:"mode"`
	LocationID         string     `bson:"locationId,omitempty"`
	Status             string     `bson:"status"`
	Reason             string     `bson:"reason,omitempty"`
	Notes              string     `bson:"notes,omitempty"`
	CancellationReason string     `bson:"cancellationReason,omitempty"`
	CancelledBy        string     `bson:"cancelledBy,omitempty"`
	CancelledAt        *time.Time `bson:"cancelledAt,omitempty"`
	RescheduleReason   string     `bson:"rescheduleReason,omitempty"`
	RescheduledBy      string     `bson:"rescheduledBy,omitempty"`
	RescheduledAt      *time.Time `bson:"rescheduledAt,omitempty"`
	OriginalDate       string     `bson:"originalDate,omitempty"`
	OriginalTime       string     `bson:"originalTime,omitempty"`
	// BookingKey is unset once cancelled so the sparse unique index only covers live bookings.
	BookingKey string `bson:"bookingKey,omitempty"`
	TimeModel  `bson:",inline"`
}

func BuildBookingKey(doctorID, date, clock, mode string) string {
	return strings.Join([]string{doctorID, date, clock, mode}, "|")
}

func (a *Appointment) ToResponse(location *HospitalLocation) responses.Appointment {
	out := responses.Appointment{
		ID:                 a.ID,
		PatientID:          a.PatientID,
		DoctorID:           a.DoctorID,
		Date:               a.Date,
		Time:               a.Time,
		Type:               a.Type,
		Mode:               a.Mode,
		LocationID:         a.LocationID,
		Status:             a.Status,
		Reason:             a.Reason,
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CancelledBy:        a.CancelledBy,
		CancelledAt:        a.CancelledAt,
		RescheduleReason:   a.RescheduleReason,
		RescheduledBy:      a.RescheduledBy,
		RescheduledAt:      a.RescheduledAt,
		OriginalDate:       a.OriginalDate,
		OriginalTime:       a.OriginalTime,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
	if location != nil {
		out.Location = location.Info()
	}
	return out
}

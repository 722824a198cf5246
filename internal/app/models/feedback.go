package models

import (
	"telecare-service/internal/pkg/dto/responses"
	"time"
)

type Feedback struct {
	ID             string     `bson:"_id"`
	AppointmentID  string     `bson:"appointmentId"`
	PatientID      string     `bson:"patientId"`
	DoctorID       string     `bson:"doctorId"`
	Rating         int        `bson:"rating"`
	Comment        string     `bson:"comment,omitempty"`
	DoctorReply    string     `bson:"doctorReply,omitempty"`
	DoctorReplyAt  *time.Time `bson:"doctorReplyAt,omitempty"`
	PatientReply   string     `bson:"patientReply,omitempty"`
	PatientReplyAt *time.Time `bson:"patientReplyAt,omitempty"`
	TimeModel      `bson:",inline"`
}

// FeedbackStats is the per-doctor rating aggregate.
type FeedbackStats struct {
	DoctorID      string  `bson:"_id"`
	AverageRating float64 `bson:"averageRating"`
	Count         int     `bson:"count"`
}

func (f *Feedback) ToResponse() responses.Feedback {
	return responses.Feedback{
		ID:             f.ID,
		AppointmentID:  f.AppointmentID,
		PatientID:      f.PatientID,
		DoctorID:       f.DoctorID,
		Rating:         f.Rating,
		Comment:        f.Comment,
		DoctorReply:    f.DoctorReply,
		DoctorReplyAt:  f.DoctorReplyAt,
		PatientReply:   f.PatientReply,
		PatientReplyAt: f.PatientReplyAt,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}

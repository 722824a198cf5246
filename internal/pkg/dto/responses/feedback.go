package responses

import "time"

type Feedback struct {
	ID             string     `json:"id"`
	AppointmentID  string     `json:"appointment_id"`
	PatientID      string     `json:"patient_id"`
	DoctorID       string     `json:"doctor_id"`
	Rating         int        `json:"rating"`
	Comment        string     `json:"comment,omitempty"`
	DoctorReply    string     `json:"doctor_reply,omitempty"`
	DoctorReplyAt  *time.Time `json:"doctor_reply_at,omitempty"`
	PatientReply   string     `json:"patient_reply,omitempty"`
	PatientReplyAt *time.Time `json:"patient_reply_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type DoctorFeedback struct {
	DoctorID      string     `json:"doctor_id"`
	AverageRating float64    `json:"average_rating"`
	Count         int        `json:"count"`
	Items         []Feedback `json:"items"`
}

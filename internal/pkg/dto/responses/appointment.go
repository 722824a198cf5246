package responses

import "time"

type Appointment struct {
	ID                 string        `json:"id"`
	PatientID          string        `json:"patient_id"`
	DoctorID           string        `json:"doctor_id"`
	Date               string        `json:"date"`
	Time               string        `json:"time"`
	Type               string        `json:"type,omitempty"`
	Mode               string        `json:"mode"`
	LocationID         string        `json:"location_id,omitempty"`
	Location           *LocationInfo `json:"location,omitempty"`
	Status             string        `json:"status"`
	Reason             string        `json:"reason,omitempty"`
	Notes              string        `json:"notes,omitempty"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CancelledBy        string        `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time    `json:"cancelled_at,omitempty"`
	RescheduleReason   string        `json:"reschedule_reason,omitempty"`
	RescheduledBy      string        `json:"rescheduled_by,omitempty"`
	RescheduledAt      *time.Time    `json:"rescheduled_at,omitempty"`
	OriginalDate       string        `json:"original_date,omitempty"`
	OriginalTime       string        `json:"original_time,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

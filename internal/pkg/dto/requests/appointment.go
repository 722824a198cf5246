package requests

type CreateAppointment struct {
	PatientID  string `json:"patient_id" validate:"required"`
	DoctorID   string `json:"doctor_id" validate:"required"`
	Date       string `json:"date" validate:"required,date_only"`
	Time       string `json:"time" validate:"required,clock_time"`
	Type       string `json:"type"`
	Mode       string `json:"mode" validate:"required,appointment_mode"`
	LocationID string `json:"location_id"`
	Reason     string `json:"reason" validate:"max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type CancelAppointment struct {
	Reason      string `json:"reason" validate:"max=500"`
	CancelledBy string `json:"cancelled_by" validate:"required"`
}

type RescheduleAppointment struct {
	NewDate       string `json:"new_date" validate:"required,date_only"`
	NewTime       string `json:"new_time" validate:"required,clock_time"`
	Reason        string `json:"reason"`
	RescheduledBy string `json:"rescheduled_by" validate:"required"`
}

type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Date      string `validate:"omitempty,date_only"`
	Status    string `validate:"omitempty,oneof=upcoming completed cancelled"`
	Mode      string `validate:"omitempty,appointment_mode"`
	Pagination
}

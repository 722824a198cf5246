package requests

type CreateSlot struct {
	DayOfWeek  string `json:"day_of_week" validate:"required,day_of_week"`
	StartTime  string `json:"start_time" validate:"required,clock_time"`
	EndTime    string `json:"end_time" validate:"required,clock_time"`
	Mode       string `json:"mode" validate:"required,slot_mode"`
	LocationID string `json:"location_id"`
}

type AvailabilityQuery struct {
	DoctorID             string
	Date                 string `validate:"required,date_only"`
	Mode                 string `validate:"required,appointment_mode"`
	LocationID           string
	ExcludeAppointmentID string
}

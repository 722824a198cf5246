package responses

import "time"

type Slot struct {
	ID         string        `json:"id"`
	DoctorID   string        `json:"doctor_id"`
	DayOfWeek  string        `json:"day_of_week"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	Mode       string        `json:"mode"`
	LocationID string        `json:"location_id,omitempty"`
	Location   *LocationInfo `json:"location,omitempty"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
}

type AvailableSlot struct {
	SlotID     string        `json:"slot_id"`
	LocationID string        `json:"location_id,omitempty"`
	Location   *LocationInfo `json:"location,omitempty"`
}

type AvailableTime struct {
	Time  string          `json:"time"`
	Slots []AvailableSlot `json:"slots"`
}

type Availability struct {
	DoctorID        string          `json:"doctor_id"`
	Date            string          `json:"date"`
	DayOfWeek       string          `json:"day_of_week"`
	Mode            string          `json:"mode"`
	LocationID      string          `json:"location_id,omitempty"`
	IntervalMinutes int             `json:"interval_minutes"`
	Times           []AvailableTime `json:"times"`
}

type ScheduleExport struct {
	ObjectName string    `json:"object_name"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

package slot

import (
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/utils"
	"time"
)

// dayWindow defines an inclusive start and exclusive end wall-clock window for a single day.
type dayWindow struct {
	Start utils.Clock
	End   utils.Clock
}

func (w dayWindow) overlaps(other dayWindow) bool {
	return w.Start.Minutes() < other.End.Minutes() && w.End.Minutes() > other.Start.Minutes()
}

func (w dayWindow) contains(c utils.Clock) bool {
	return c.Minutes() >= w.Start.Minutes() && c.Minutes() < w.End.Minutes()
}

// weeklyPlan lists the active slots per weekday.
type weeklyPlan map[time.Weekday][]models.AppointmentSlot

// forWeekday returns the slots for the given weekday.
func (wp weeklyPlan) forWeekday(wd time.Weekday) []models.AppointmentSlot {
	return wp[wd]
}

// timeOffer is one bookable wall-clock time and the slots offering it.
type timeOffer struct {
	Clock utils.Clock
	Slots []models.AppointmentSlot
}

// availabilityInput carries everything the engine needs to compute the offered times of one day.
type availabilityInput struct {
	Slots           []models.AppointmentSlot
	Date            time.Time
	Mode            string
	LocationID      string
	IntervalMinutes int
	Booked          []string
	Now             time.Time
	Location        *time.Location
}

type scheduleDocument struct {
	DoctorID        string        `json:"doctor_id"`
	DoctorName      string        `json:"doctor_name"`
	IntervalMinutes int           `json:"interval_minutes"`
	Timezone        string        `json:"timezone"`
	GeneratedAt     time.Time     `json:"generated_at"`
	Days            []scheduleDay `json:"days"`
}

type scheduleDay struct {
	DayOfWeek string             `json:"day_of_week"`
	Coverage  []scheduleCoverage `json:"coverage"`
	Slots     []scheduleSlot     `json:"slots"`
}

// scheduleCoverage is the merged wall-clock coverage of one mode on one day.
type scheduleCoverage struct {
	Mode    string   `json:"mode"`
	Windows []string `json:"windows"`
}

type scheduleSlot struct {
	ID              string `json:"id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Mode            string `json:"mode"`
	LocationName    string `json:"location_name,omitempty"`
	LocationAddress string `json:"location_address,omitempty"`
	TimesOffered    int    `json:"times_offered"`
}

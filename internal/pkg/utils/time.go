package utils

import (
	"fmt"
	"strconv"
	"strings"
	"telecare-service/internal/pkg/constvars"
	"time"
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	H int
	M int
}

func (c Clock) Minutes() int {
	return c.H*60 + c.M
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.H, c.M)
}

func (c Clock) Before(other Clock) bool {
	return c.Minutes() < other.Minutes()
}

// ParseClock accepts "HH:MM" or "HH.MM". A trailing seconds part is ignored.
func ParseClock(value string) (Clock, error) {
	s := strings.ReplaceAll(strings.TrimSpace(value), ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Clock{}, fmt.Errorf("invalid clock value %q", value)
	}
	h, errHour := strconv.Atoi(parts[0])
	m, errMinute := strconv.Atoi(parts[1])
	if errHour != nil || errMinute != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("invalid clock value %q", value)
	}
	return Clock{H: h, M: m}, nil
}

// NormalizeClock returns value formatted as zero padded "HH:MM".
func NormalizeClock(value string) (string, error) {
	c, err := ParseClock(value)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// ParseWeekday maps a weekday name or common abbreviation to time.Weekday.
func ParseWeekday(value string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return time.Sunday, false
}

// WeekdayOrder ranks Monday first and Sunday last.
func WeekdayOrder(day string) int {
	wd, ok := ParseWeekday(day)
	if !ok {
		return 7
	}
	return (int(wd) + 6) % 7
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(constvars.DateLayout, value, loc)
}

// AtClock returns the time on day at the given wall clock in loc.
func AtClock(day time.Time, c Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	d := day.In(loc)
	y, mo, dd := d.Date()
	return time.Date(y, mo, dd, c.H, c.M, 0, 0, loc)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

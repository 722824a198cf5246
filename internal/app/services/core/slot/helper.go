package slot

import (
	"fmt"
	"sort"
	"strings"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

func slotWindow(s models.AppointmentSlot) (dayWindow, error) {
	start, err := utils.ParseClock(s.StartTime)
	if err != nil {
		return dayWindow{}, err
	}
	end, err := utils.ParseClock(s.EndTime)
	if err != nil {
		return dayWindow{}, err
	}
	return dayWindow{Start: start, End: end}, nil
}

func validWindow(w dayWindow) bool {
	return w.Start.Before(w.End)
}

// expandModes turns a requested slot mode into the concrete modes it creates.
func expandModes(mode string) mapset.Set[string] {
	if mode == constvars.AppointmentModeBoth {
		return mapset.NewThreadUnsafeSet(constvars.AppointmentModeOnline, constvars.AppointmentModeInPerson)
	}
	return mapset.NewThreadUnsafeSet(mode)
}

// scopeLocation returns the location a slot of mode is scoped to. Online slots share the empty location.
func scopeLocation(mode, locationID string) string {
	if mode == constvars.AppointmentModeOnline {
		return ""
	}
	return locationID
}

func sameScope(s models.AppointmentSlot, day, mode, locationID string) bool {
	return strings.EqualFold(s.DayOfWeek, day) &&
		s.Mode == mode &&
		scopeLocation(s.Mode, s.LocationID) == scopeLocation(mode, locationID)
}

// findOverlap returns the first active slot sharing the candidate's day, mode and location whose
// window overlaps the candidate. Touching windows do not overlap.
func findOverlap(existing []models.AppointmentSlot, candidate models.AppointmentSlot) (*models.AppointmentSlot, error) {
	w, err := slotWindow(candidate)
	if err != nil {
		return nil, err
	}

	for i := range existing {
		s := existing[i]
		if !s.IsActive || !sameScope(s, candidate.DayOfWeek, candidate.Mode, candidate.LocationID) {
			continue
		}
		ew, err := slotWindow(s)
		if err != nil {
			continue
		}
		if w.overlaps(ew) {
			return &existing[i], nil
		}
	}
	return nil, nil
}

// matchingSlots keeps the active slots of mode. In-person slots are narrowed to locationID when one is given.
func matchingSlots(slots []models.AppointmentSlot, mode, locationID string) []models.AppointmentSlot {
	out := make([]models.AppointmentSlot, 0, len(slots))
	for _, s := range slots {
		if !s.IsActive || s.Mode != mode {
			continue
		}
		if mode == constvars.AppointmentModeInPerson && locationID != "" && s.LocationID != locationID {
			continue
		}
		out = append(out, s)
	}
	return out
}

// generateTimesBetween steps from w.Start while t < w.End.
func generateTimesBetween(w dayWindow, stepMinutes int) []utils.Clock {
	if stepMinutes <= 0 {
		stepMinutes = constvars.DefaultAppointmentIntervalMinutes
	}
	var out []utils.Clock
	for m := w.Start.Minutes(); m < w.End.Minutes(); m += stepMinutes {
		out = append(out, utils.Clock{H: m / 60, M: m % 60})
	}
	return out
}

// onGrid reports whether c is one of the times generated for w.
func onGrid(w dayWindow, c utils.Clock, stepMinutes int) bool {
	if stepMinutes <= 0 {
		stepMinutes = constvars.DefaultAppointmentIntervalMinutes
	}
	return w.contains(c) && (c.Minutes()-w.Start.Minutes())%stepMinutes == 0
}

// buildTimeOffers merges the generated times of every slot into a minute-of-day keyed map.
func buildTimeOffers(slots []models.AppointmentSlot, stepMinutes int) map[int]*timeOffer {
	offers := make(map[int]*timeOffer)
	for _, s := range slots {
		w, err := slotWindow(s)
		if err != nil || !validWindow(w) {
			continue
		}
		for _, c := range generateTimesBetween(w, stepMinutes) {
			offer, ok := offers[c.Minutes()]
			if !ok {
				offer = &timeOffer{Clock: c}
				offers[c.Minutes()] = offer
			}
			offer.Slots = append(offer.Slots, s)
		}
	}
	return offers
}

func bookedSet(booked []string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, b := range booked {
		if normalized, err := utils.NormalizeClock(b); err == nil {
			set.Add(normalized)
		}
	}
	return set
}

func excludeBookedTimes(offers map[int]*timeOffer, booked []string) {
	set := bookedSet(booked)
	if set.Cardinality() == 0 {
		return
	}
	for key, offer := range offers {
		if set.Contains(offer.Clock.String()) {
			delete(offers, key)
		}
	}
}

// dropElapsedTimes clears every offer for past dates and the offers not after now for today.
func dropElapsedTimes(offers map[int]*timeOffer, date, now time.Time, loc *time.Location) {
	day := utils.StartOfDay(date.In(loc))
	today := utils.StartOfDay(now.In(loc))
	switch {
	case day.Before(today):
		for key := range offers {
			delete(offers, key)
		}
	case day.Equal(today):
		for key, offer := range offers {
			if !utils.AtClock(date, offer.Clock, loc).After(now) {
				delete(offers, key)
			}
		}
	}
}

func sortedOffers(offers map[int]*timeOffer) []timeOffer {
	out := make([]timeOffer, 0, len(offers))
	for _, offer := range offers {
		sort.SliceStable(offer.Slots, func(i, j int) bool {
			return offer.Slots[i].LocationID < offer.Slots[j].LocationID
		})
		out = append(out, *offer)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Clock.Minutes() < out[j].Clock.Minutes()
	})
	return out
}

// computeAvailability returns the ascending bookable times of one day.
func computeAvailability(in availabilityInput) []timeOffer {
	loc := in.Location
	if loc == nil {
		loc = time.Local
	}
	slots := matchingSlots(in.Slots, in.Mode, in.LocationID)
	offers := buildTimeOffers(slots, in.IntervalMinutes)
	excludeBookedTimes(offers, in.Booked)
	dropElapsedTimes(offers, in.Date, in.Now, loc)
	return sortedOffers(offers)
}

// mergeWindows sorts windows by start and merges overlapping or touching ones.
func mergeWindows(windows []dayWindow) []dayWindow {
	if len(windows) == 0 {
		return nil
	}
	sorted := append([]dayWindow(nil), windows...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Minutes() < sorted[j].Start.Minutes()
	})

	merged := []dayWindow{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start.Minutes() <= last.End.Minutes() {
			if w.End.Minutes() > last.End.Minutes() {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

func buildWeeklyPlan(slots []models.AppointmentSlot) weeklyPlan {
	plan := make(weeklyPlan)
	for _, s := range slots {
		wd, ok := utils.ParseWeekday(s.DayOfWeek)
		if !ok {
			continue
		}
		plan[wd] = append(plan[wd], s)
	}
	for wd := range plan {
		sortSlots(plan[wd])
	}
	return plan
}

// sortSlots orders slots Monday first, then by start time and mode.
func sortSlots(slots []models.AppointmentSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		oi, oj := utils.WeekdayOrder(slots[i].DayOfWeek), utils.WeekdayOrder(slots[j].DayOfWeek)
		if oi != oj {
			return oi < oj
		}
		si, _ := utils.NormalizeClock(slots[i].StartTime)
		sj, _ := utils.NormalizeClock(slots[j].StartTime)
		if si != sj {
			return si < sj
		}
		return slots[i].Mode < slots[j].Mode
	})
}

func dayLockKey(doctorID, day string) string {
	return fmt.Sprintf(constvars.RedisKeySlotDayLockFormat, doctorID, day)
}

// locationLockKey guards a location against deactivation while in-person slots are written to it.
func locationLockKey(doctorID, locationID string) string {
	return fmt.Sprintf(constvars.RedisKeyLocationLockFormat, doctorID, locationID)
}

func availabilityVersionKey(doctorID string) string {
	return fmt.Sprintf(constvars.RedisKeyAvailabilityVersionFormat, doctorID)
}

func availabilityCacheKey(doctorID, version, date, mode, locationID string) string {
	if locationID == "" {
		locationID = "any"
	}
	return fmt.Sprintf(constvars.RedisKeyAvailabilityCacheFormat, doctorID, version, date, mode, locationID)
}

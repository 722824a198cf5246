package slot

import (
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	online   = constvars.AppointmentModeOnline
	inPerson = constvars.AppointmentModeInPerson
)

func TestFindOverlap(t *testing.T) {
	existing := []models.AppointmentSlot{
		testutil.Slot("dr000001", "Monday", "09:00", "12:00", online, ""),
		testutil.Slot("dr000001", "Monday", "14:00", "16:00", inPerson, "loc-a"),
	}

	tests := []struct {
		name      string
		candidate models.AppointmentSlot
		conflict  bool
	}{
		{"inside online window", testutil.Slot("dr000001", "Monday", "10:00", "11:00", online, ""), true},
		{"covers online window", testutil.Slot("dr000001", "Monday", "08:00", "13:00", online, ""), true},
		{"touching end", testutil.Slot("dr000001", "Monday", "12:00", "13:00", online, ""), false},
		{"touching start", testutil.Slot("dr000001", "Monday", "08:00", "09:00", online, ""), false},
		{"other mode same time", testutil.Slot("dr000001", "Monday", "10:00", "11:00", inPerson, "loc-a"), false},
		{"other day", testutil.Slot("dr000001", "Tuesday", "10:00", "11:00", online, ""), false},
		{"same location", testutil.Slot("dr000001", "Monday", "15:00", "17:00", inPerson, "loc-a"), true},
		{"other location", testutil.Slot("dr000001", "Monday", "15:00", "17:00", inPerson, "loc-b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, err := findOverlap(existing, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.conflict, conflict != nil)
		})
	}
}

func TestFindOverlap_IgnoresInactiveSlots(t *testing.T) {
	inactive := testutil.Slot("dr000001", "Monday", "09:00", "12:00", online, "")
	inactive.IsActive = false

	conflict, err := findOverlap([]models.AppointmentSlot{inactive}, testutil.Slot("dr000001", "Monday", "10:00", "11:00", online, ""))
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestExpandModes(t *testing.T) {
	assert.ElementsMatch(t, []string{online, inPerson}, expandModes(constvars.AppointmentModeBoth).ToSlice())
	assert.ElementsMatch(t, []string{online}, expandModes(online).ToSlice())
}

func TestExpandModes_AgainstBookableModes(t *testing.T) {
	tests := []struct {
		mode     string
		bookable bool
	}{
		{online, true},
		{inPerson, true},
		{constvars.AppointmentModeBoth, true},
		{"phone", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var bookable bool
			require.NotPanics(t, func() { bookable = expandModes(tt.mode).IsSubset(bookableModes) })
			assert.Equal(t, tt.bookable, bookable)
		})
	}
}

func TestGenerateTimesBetween(t *testing.T) {
	w := dayWindow{Start: utils.Clock{H: 9}, End: utils.Clock{H: 10, M: 15}}

	var got []string
	for _, c := range generateTimesBetween(w, 30) {
		got = append(got, c.String())
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)

	assert.Len(t, generateTimesBetween(w, 0), 3, "non positive steps use the default interval")
	assert.Empty(t, generateTimesBetween(dayWindow{Start: utils.Clock{H: 9}, End: utils.Clock{H: 9}}, 30))
}

func TestOnGrid(t *testing.T) {
	w := dayWindow{Start: utils.Clock{H: 9}, End: utils.Clock{H: 12}}
	assert.True(t, onGrid(w, utils.Clock{H: 9}, 30))
	assert.True(t, onGrid(w, utils.Clock{H: 11, M: 30}, 30))
	assert.False(t, onGrid(w, utils.Clock{H: 12}, 30))
	assert.False(t, onGrid(w, utils.Clock{H: 9, M: 15}, 30))
	assert.True(t, onGrid(w, utils.Clock{H: 9, M: 15}, 15))
}

func TestComputeAvailability(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.March, 2, 10, 5, 0, 0, loc)
	monday := time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)

	slots := []models.AppointmentSlot{
		testutil.Slot("dr000001", "Monday", "09:00", "10:30", inPerson, "loc-a"),
		testutil.Slot("dr000001", "Monday", "10:00", "11:00", inPerson, "loc-b"),
		testutil.Slot("dr000001", "Monday", "09:00", "10:00", online, ""),
	}

	t.Run("merges slots offering the same time", func(t *testing.T) {
		offers := computeAvailability(availabilityInput{
			Slots: slots, Date: monday, Mode: inPerson, IntervalMinutes: 30, Now: now, Location: loc,
		})
		require.Len(t, offers, 4)
		assert.Equal(t, "09:00", offers[0].Clock.String())
		assert.Equal(t, "10:00", offers[2].Clock.String())
		require.Len(t, offers[2].Slots, 2)
		assert.Equal(t, "loc-a", offers[2].Slots[0].LocationID)
		assert.Equal(t, "loc-b", offers[2].Slots[1].LocationID)
	})

	t.Run("narrows to location", func(t *testing.T) {
		offers := computeAvailability(availabilityInput{
			Slots: slots, Date: monday, Mode: inPerson, LocationID: "loc-b", IntervalMinutes: 30, Now: now, Location: loc,
		})
		require.Len(t, offers, 2)
		assert.Equal(t, "10:00", offers[0].Clock.String())
	})

	t.Run("removes booked times", func(t *testing.T) {
		offers := computeAvailability(availabilityInput{
			Slots: slots, Date: monday, Mode: online, IntervalMinutes: 30, Booked: []string{"09:30:00"}, Now: now, Location: loc,
		})
		require.Len(t, offers, 1)
		assert.Equal(t, "09:00", offers[0].Clock.String())
	})

	t.Run("past date yields nothing", func(t *testing.T) {
		offers := computeAvailability(availabilityInput{
			Slots: slots, Date: monday.AddDate(0, 0, -14), Mode: online, IntervalMinutes: 30, Now: now, Location: loc,
		})
		assert.Empty(t, offers)
	})

	t.Run("today drops times not after now", func(t *testing.T) {
		today := time.Date(2026, time.March, 2, 0, 0, 0, 0, loc)
		offers := computeAvailability(availabilityInput{
			Slots: slots, Date: today, Mode: inPerson, IntervalMinutes: 30, Now: now, Location: loc,
		})
		require.Len(t, offers, 1)
		assert.Equal(t, "10:30", offers[0].Clock.String())
	})
}

func TestMergeWindows(t *testing.T) {
	windows := []dayWindow{
		{Start: utils.Clock{H: 13}, End: utils.Clock{H: 14}},
		{Start: utils.Clock{H: 9}, End: utils.Clock{H: 10}},
		{Start: utils.Clock{H: 10}, End: utils.Clock{H: 11}},
		{Start: utils.Clock{H: 10, M: 30}, End: utils.Clock{H: 10, M: 45}},
	}

	merged := mergeWindows(windows)
	require.Len(t, merged, 2)
	assert.Equal(t, "09:00", merged[0].Start.String())
	assert.Equal(t, "11:00", merged[0].End.String())
	assert.Equal(t, "13:00", merged[1].Start.String())
	assert.Nil(t, mergeWindows(nil))
}

func TestSortSlots(t *testing.T) {
	slots := []models.AppointmentSlot{
		testutil.Slot("dr000001", "Sunday", "09:00", "10:00", online, ""),
		testutil.Slot("dr000001", "Monday", "13:00", "14:00", online, ""),
		testutil.Slot("dr000001", "Monday", "9:00", "10:00", online, ""),
	}
	sortSlots(slots)

	assert.Equal(t, "Monday", slots[0].DayOfWeek)
	assert.Equal(t, "9:00", slots[0].StartTime)
	assert.Equal(t, "13:00", slots[1].StartTime)
	assert.Equal(t, "Sunday", slots[2].DayOfWeek)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "lock:slots:dr000001:Monday", dayLockKey("dr000001", "Monday"))
	assert.Equal(t, "availability:version:dr000001", availabilityVersionKey("dr000001"))
	assert.Equal(t, "availability:dr000001:v3:2026-03-09:online:any", availabilityCacheKey("dr000001", "3", "2026-03-09", online, ""))
}

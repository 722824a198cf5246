package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "09:00", want: Clock{H: 9, M: 0}},
		{input: "9:30", want: Clock{H: 9, M: 30}},
		{input: "14.45", want: Clock{H: 14, M: 45}},
		{input: "23:59:59", want: Clock{H: 23, M: 59}},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockHelpers(t *testing.T) {
	c := Clock{H: 9, M: 5}
	assert.Equal(t, "09:05", c.String())
	assert.Equal(t, 545, c.Minutes())
	assert.True(t, c.Before(Clock{H: 9, M: 6}))
	assert.False(t, c.Before(c))

	normalized, err := NormalizeClock("25.00")
	assert.Error(t, err)
	assert.Empty(t, normalized)

	normalized, err = NormalizeClock("9.05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", normalized)
}

func TestParseWeekday(t *testing.T) {
	wd, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, wd)

	wd, ok = ParseWeekday(" thurs ")
	assert.True(t, ok)
	assert.Equal(t, time.Thursday, wd)

	_, ok = ParseWeekday("Funday")
	assert.False(t, ok)

	assert.Equal(t, 0, WeekdayOrder("Monday"))
	assert.Equal(t, 6, WeekdayOrder("Sunday"))
	assert.Equal(t, 7, WeekdayOrder("unknown"))
}

func TestAtClockAndStartOfDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	day := time.Date(2025, time.March, 3, 22, 30, 0, 0, time.UTC)

	got := AtClock(day, Clock{H: 9, M: 15}, loc)
	assert.Equal(t, time.Date(2025, time.March, 4, 9, 15, 0, 0, loc), got)

	start := StartOfDay(time.Date(2025, time.March, 4, 9, 15, 0, 0, loc))
	assert.Equal(t, time.Date(2025, time.March, 4, 0, 0, 0, 0, loc), start)

	parsed, err := ParseDate("2025-03-04", loc)
	require.NoError(t, err)
	assert.Equal(t, start, parsed)
}

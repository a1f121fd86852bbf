package xclim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _daily_range(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestDayLengths(t *testing.T) {
	// 1992-12-01 through 1994-01-01; index of an event date within it.
	dates := _daily_range(_date(1992, time.December, 1), 397)
	idx := map[string]int{
		"1992-12-21": 20,
		"1993-03-20": 109,
		"1993-06-21": 202,
		"1993-12-21": 385,
	}
	lats := []float64{-60, -45, -30, 0, 30, 45, 60, 80}

	solstices := map[string][]float64{
		"1992-12-21": {18.49, 15.43, 13.93, 12.0, 10.07, 8.57, 5.51, math.NaN()},
		"1993-06-21": {5.51, 8.57, 10.07, 12.0, 13.93, 15.43, 18.49, math.NaN()},
		"1993-12-21": {18.49, 15.43, 13.93, 12.0, 10.07, 8.57, 5.51, math.NaN()},
	}

	for j, lat := range lats {
		dl, err := DayLengths(dates, CalendarStandard, lat, MethodSpencer, false)
		require.NoError(t, err)

		for date, exp := range solstices {
			got := dl[idx[date]]
			if math.IsNaN(exp[j]) {
				assert.True(t, math.IsNaN(got), "lat %g on %s", lat, date)
			} else {
				assert.InDelta(t, exp[j], got, 0.01, "lat %g on %s", lat, date)
			}
		}

		// Around the equinox every latitude sees close to 12 hours.
		got := dl[idx["1993-03-20"]]
		if !math.IsNaN(got) {
			assert.InDelta(t, 12.0, got, 12.0*0.2)
		}
	}
}

func TestDayLengthsInfill(t *testing.T) {
	dates := _daily_range(_date(1992, time.December, 1), 397)
	dl, err := DayLengths(dates, CalendarStandard, 80, MethodSpencer, true)
	require.NoError(t, err)

	// Polar night around the December solstice, polar day in June.
	assert.Equal(t, 0.0, dl[20])
	assert.Equal(t, 24.0, dl[202])
	for _, v := range dl {
		assert.False(t, math.IsNaN(v))
	}
}

func TestDayLengthsHemisphereSymmetry(t *testing.T) {
	dates := _daily_range(_date(2005, time.January, 1), 365)
	north, err := DayLengths(dates, CalendarStandard, 52, MethodSpencer, false)
	require.NoError(t, err)
	south, err := DayLengths(dates, CalendarStandard, -52, MethodSpencer, false)
	require.NoError(t, err)

	for i := range dates {
		assert.InDelta(t, 24.0, north[i]+south[i], 1e-9)
	}
}

func TestDayLengthsEquator(t *testing.T) {
	dates := _daily_range(_date(2005, time.January, 1), 365)
	dl, err := DayLengths(dates, CalendarStandard, 0, MethodSimple, false)
	require.NoError(t, err)
	for _, v := range dl {
		assert.InDelta(t, 12.0, v, 1e-9)
	}
}

func TestDayLengthsNonDaily(t *testing.T) {
	hourly := _hourly_times(_date(2005, time.January, 1), 10)
	_, err := DayLengths(hourly, CalendarStandard, 45, MethodSpencer, false)
	assert.ErrorIs(t, err, ErrNonDailyFrequency)
}

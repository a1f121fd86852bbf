package xclim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func _year_of_days(year int) []time.Time {
	start := _date(year, time.January, 1)
	out := make([]time.Time, 365)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestSolarDeclination(t *testing.T) {
	// Expected values from https://gml.noaa.gov/grad/solcalc/azel.html
	times := []time.Time{
		time.Date(1793, time.January, 21, 10, 22, 0, 0, time.UTC),
		time.Date(1969, time.July, 20, 20, 17, 40, 0, time.UTC),
		time.Date(2022, time.May, 20, 16, 55, 48, 0, time.UTC),
	}
	exp_deg := []float64{-19.83, 20.64, 20.00}

	tests := []struct {
		method Method
		atol   float64 // percent of the possible range, rad
	}{
		{MethodSpencer, 5e-3 * 2 * 23.44 * to_rad},
		{MethodSimple, 1e-2 * 2 * 23.44 * to_rad},
	}
	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			got, err := SolarDeclination(times, CalendarStandard, tt.method)
			require.NoError(t, err)
			for i, e := range exp_deg {
				assert.InDelta(t, e*to_rad, got[i], tt.atol)
			}
		})
	}
}

func TestSolarDeclinationRange(t *testing.T) {
	times := _year_of_days(2003)
	for _, method := range []Method{MethodSpencer, MethodSimple} {
		got, err := SolarDeclination(times, CalendarStandard, method)
		require.NoError(t, err)
		for _, d := range got {
			assert.LessOrEqual(t, math.Abs(d), 23.45*to_rad+0.01)
		}
	}
}

func TestSolarDeclinationUnsupportedMethod(t *testing.T) {
	_, err := SolarDeclination(_year_of_days(2003)[:3], CalendarStandard, Method("fourier"))
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestEccentricityCorrectionFactor(t *testing.T) {
	times := _year_of_days(2003)
	for _, method := range []Method{MethodSpencer, MethodSimple} {
		got, err := EccentricityCorrectionFactor(times, CalendarStandard, method)
		require.NoError(t, err)

		// Perihelion in early January, aphelion in early July.
		assert.Greater(t, got[3], 1.03)
		assert.Less(t, got[184], 0.97)
		for _, v := range got {
			assert.Greater(t, v, 0.96)
			assert.Less(t, v, 1.04)
		}
	}

	_, err := EccentricityCorrectionFactor(times[:3], CalendarStandard, Method(""))
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestDistanceFromSun(t *testing.T) {
	// Perihelion and aphelion of the year 2000, astronomical units.
	times := []time.Time{
		time.Date(2000, time.January, 3, 12, 0, 0, 0, time.UTC),
		time.Date(2000, time.July, 4, 12, 0, 0, 0, time.UTC),
	}
	got := DistanceFromSun(times, CalendarStandard)
	assert.InDelta(t, 0.9833, got[0], 2e-4)
	assert.InDelta(t, 1.0167, got[1], 2e-4)
}

func TestDistanceFromSunCalendars(t *testing.T) {
	times := _year_of_days(2001)
	for _, cal := range []Calendar{CalendarStandard, CalendarNoLeap, CalendarAllLeap, Calendar360Day} {
		got := DistanceFromSun(times, cal)
		for _, d := range got {
			assert.Greater(t, d, 0.983)
			assert.Less(t, d, 1.017)
		}
	}
}

func TestTimeCorrectionForSolarAngle(t *testing.T) {
	times := _year_of_days(2003)
	got := TimeCorrectionForSolarAngle(times, CalendarStandard)

	// The equation of time peaks around +16.5 min in early November and
	// -14 min in mid February; four minutes per degree of rotation.
	max, min := got[0], got[0]
	for _, v := range got {
		max = math.Max(max, v)
		min = math.Min(min, v)
	}
	assert.Greater(t, max, 0.060)
	assert.Less(t, max, 0.078)
	assert.Less(t, min, -0.055)
	assert.Greater(t, min, -0.070)
}

func TestDayAngleRange(t *testing.T) {
	times := _year_of_days(2001)
	da := DayAngle(times, CalendarStandard)
	prev := -1.0
	for _, a := range da {
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2.0*math.Pi)
		assert.Greater(t, a, prev)
		prev = a
	}
}

package xclim

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Calendar identifies the day-count convention of a time series. Climate
// model output is frequently produced on calendars without leap years or
// with twelve 30-day months; the day-angle computation must honour the
// calendar the data was generated on, not the proleptic Gregorian one.
type Calendar string

const (
	CalendarStandard Calendar = "standard"
	CalendarNoLeap   Calendar = "noleap"
	CalendarAllLeap  Calendar = "all_leap"
	Calendar360Day   Calendar = "360_day"
)

// Julian date of the epoch 2000-01-01T12:00:00 used by the sun-earth
// distance formula.
const j2000 = 2451545.0

// Cumulative days at the start of each month for 365- and 366-day years.
var (
	month_offset_365 = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	month_offset_366 = [12]int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
)

/*
Whether the year is a leap year on the Gregorian calendar.

	Args:
	    year: calendar year

	Returns:
	    true for leap years
*/
func _is_leap_year(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
Number of days in the year on this calendar.

	Args:
	    year: calendar year

	Returns:
	    number of days, d
*/
func (c Calendar) days_in_year(year int) float64 {
	switch c {
	case CalendarNoLeap:
		return 365.0
	case CalendarAllLeap:
		return 366.0
	case Calendar360Day:
		return 360.0
	default:
		if _is_leap_year(year) {
			return 366.0
		}
		return 365.0
	}
}

/*
Day of year of the timestamp on this calendar (January 1st is 1).

On the "noleap" calendar a February 29th input is counted as February
28th; on the "360_day" calendar days past the 30th are counted as the
30th. This only matters when a Gregorian-represented timestamp is
interpreted on a shorter calendar.

	Args:
	    t: timestamp

	Returns:
	    day of year, d
*/
func (c Calendar) day_of_year(t time.Time) int {
	t = t.UTC()
	month, day := t.Month(), t.Day()

	switch c {
	case CalendarNoLeap:
		if month == time.February && day > 28 {
			day = 28
		}
		return month_offset_365[month-1] + day
	case CalendarAllLeap:
		if month == time.February && day > 29 {
			day = 29
		}
		return month_offset_366[month-1] + day
	case Calendar360Day:
		if day > 30 {
			day = 30
		}
		return (int(month)-1)*30 + day
	default:
		return t.YearDay()
	}
}

/*
Fraction of the day elapsed since midnight UTC.

	Args:
	    t: timestamp

	Returns:
	    day fraction, d
*/
func _day_fraction(t time.Time) float64 {
	t = t.UTC()
	s := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
	return s / 86400.0
}

/*
Decimal year of each timestamp: the calendar year plus the elapsed
fraction of that year on the given calendar.

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series

	Returns:
	    decimal years, a, [n]
*/
func DecimalYear(times []time.Time, cal Calendar) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		t = t.UTC()
		year := t.Year()
		doy := float64(cal.day_of_year(t)-1) + _day_fraction(t)
		out[i] = float64(year) + doy/cal.days_in_year(year)
	}
	return out
}

/*
Days elapsed since the epoch 2000-01-01T12:00:00 on this calendar.

On the standard calendar this is the Julian date difference; on the other
calendars the years between the epoch and the timestamp are counted with
that calendar's year lengths.

	Args:
	    t: timestamp

	Returns:
	    days since epoch, d (negative before the epoch)
*/
func (c Calendar) days_since_epoch(t time.Time) float64 {
	t = t.UTC()
	if c == CalendarStandard || c == "" {
		return julian.TimeToJD(t) - j2000
	}

	days := 0.0
	year := t.Year()
	if year >= 2000 {
		for y := 2000; y < year; y++ {
			days += c.days_in_year(y)
		}
	} else {
		for y := year; y < 2000; y++ {
			days -= c.days_in_year(y)
		}
	}
	return days + float64(c.day_of_year(t)-1) + _day_fraction(t) - 0.5
}

/*
Whether the series is sampled at a daily frequency. Series with fewer
than three timestamps are assumed daily, matching the interval handling
of the zenith-angle engine.

	Args:
	    times: timestamps, [n]

	Returns:
	    true when every gap equals 24 hours (within one second)
*/
func _is_daily(times []time.Time) bool {
	if len(times) < 3 {
		return true
	}
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		if gap < 24*time.Hour-time.Second || gap > 24*time.Hour+time.Second {
			return false
		}
	}
	return true
}

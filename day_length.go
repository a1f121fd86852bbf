package xclim

import (
	"fmt"
	"math"
	"time"
)

// Latitude beyond which polar days and nights occur, degree.
const polar_circle_lat_deg = 66.5

/*
Day length according to latitude and day of the year.

The day length is the time between sunrise and sunset: twice the hour
angle of sunset, converted to hours. Latitude/declination pairs outside
the arccos domain (polar day or polar night) yield NaN unless
infill_polar_days is set. Based on Kalogirou (2014).

	Args:
	    dates: daily timestamps, [n]
	    cal: calendar of the series
	    lat_deg: latitude, degree (north positive)
	    method: declination approximation (see SolarDeclination)
	    infill_polar_days: replace polar-day NaNs with 24 h and
	        polar-night NaNs with 0 h, classified by the sign of the
	        declination against the hemisphere

	Returns:
	    day lengths, h, [n]
*/
func DayLengths(dates []time.Time, cal Calendar, lat_deg float64, method Method, infill_polar_days bool) ([]float64, error) {
	if !_is_daily(dates) {
		return nil, fmt.Errorf("%w: day lengths require daily data", ErrNonDailyFrequency)
	}

	declination, err := SolarDeclination(dates, cal, method)
	if err != nil {
		return nil, err
	}

	lat := lat_deg * to_rad
	out := make([]float64, len(dates))
	for i, dec := range declination {
		// arccos gives the hour angle at sunset; multiply by 24 / 2 pi
		// for hours. The day length is twice that.
		dl := (24.0 / math.Pi) * math.Acos(-math.Tan(lat)*math.Tan(dec))

		if infill_polar_days && math.IsNaN(dl) {
			polar_day := (lat_deg > polar_circle_lat_deg && dec > 0) ||
				(lat_deg < -polar_circle_lat_deg && dec < 0)
			polar_night := (lat_deg > polar_circle_lat_deg && dec < 0) ||
				(lat_deg < -polar_circle_lat_deg && dec > 0)
			if polar_day {
				dl = 24.0
			} else if polar_night {
				dl = 0.0
			}
		}
		out[i] = dl
	}
	return out, nil
}

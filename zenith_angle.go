package xclim

import (
	"fmt"
	"math"
	"time"
)

// Seconds in a complete day cycle.
const s_in_d = 86400.0

/*
Cosine of the solar zenith angle.

The solar zenith angle is the angle between a vertical line and the sun
rays. This computes a statistic of its cosine: the instantaneous value,
the integral over the evaluation interval, or the average over the same
interval, optionally restricted to the sunlit part of the interval.
Based on Kalogirou (2014) and Di Napoli et al. (2020).

The evaluation interval of each timestep is derived from the series
itself: a daily series (or one with fewer than three timestamps) is
assumed to span a full day centred on local solar noon; otherwise the
timestamp is taken as the start of the interval and the interval length
is the sampling period.

	Args:
	    times: UTC timestamps, [n]
	    declination: solar declination, rad, [n] (see SolarDeclination)
	    lat_deg: latitude, degree (north positive)
	    lon_deg: longitude, degree (east positive); only used when the
	        series is subdaily
	    time_correction: time correction for the solar angle, rad, [n];
	        required when stat is StatInstant, ignored otherwise
	    stat: which statistic to return
	    sunlit: when true, only the sunlit part of each interval
	        contributes to the integral or average; ignored for
	        StatInstant

	Returns:
	    cosine of the solar zenith angle, dimensionless, [n] (radians of
	    the hour angle for StatIntegral: multiply by 86400 / 2 pi for
	    seconds)
*/
func CosineOfSolarZenithAngle(
	times []time.Time,
	declination []float64,
	lat_deg float64,
	lon_deg float64,
	time_correction []float64,
	stat Stat,
	sunlit bool,
) ([]float64, error) {
	n := len(times)
	if len(declination) != n {
		return nil, fmt.Errorf("declination has %d values for %d timestamps", len(declination), n)
	}
	switch stat {
	case StatInstant, StatAverage, StatIntegral:
	default:
		return nil, fmt.Errorf("%w: %q (must be \"average\", \"integral\" or \"instant\")", ErrUnsupportedStat, stat)
	}

	lat := _wrap_radians(lat_deg * to_rad)
	lon := lon_deg * to_rad

	// Interval bounds as hour angles (start and end of each timestep).
	h_s := make([]float64, n)
	h_e := make([]float64, n)
	if _is_daily(times) {
		start := -math.Pi
		if stat == StatInstant {
			start = 0.0
		}
		for i := range times {
			h_s[i] = start
			h_e[i] = math.Pi - hour_angle_epsilon
		}
	} else {
		for i, t := range times {
			t = t.UTC()
			sod := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
			h_s[i] = (sod/s_in_d)*2.0*math.Pi + math.Pi + lon
		}
		for i := range times {
			var interval float64
			if i == 0 {
				interval = times[1].Sub(times[0]).Seconds()
			} else {
				interval = times[i].Sub(times[i-1]).Seconds()
			}
			h_e[i] = h_s[i] + 2.0*math.Pi*interval/s_in_d
		}
	}

	out := make([]float64, n)

	if stat == StatInstant {
		if time_correction == nil {
			return nil, ErrMissingTimeCorrection
		}
		if len(time_correction) != n {
			return nil, fmt.Errorf("time correction has %d values for %d timestamps", len(time_correction), n)
		}
		for i := range times {
			h := h_s[i] + time_correction[i]
			cza := math.Sin(declination[i])*math.Sin(lat) + math.Cos(declination[i])*math.Cos(lat)*math.Cos(h)
			out[i] = math.Max(cza, 0.0)
		}
		return out, nil
	}

	average := stat == StatAverage
	for i := range times {
		// Hour angle of sunset: NaN inside the polar day/night when only
		// the sunlit part counts, placed just before midnight otherwise.
		var h_ss float64
		if sunlit {
			tantan := -math.Tan(lat) * math.Tan(declination[i])
			if math.Abs(tantan) <= 1.0 {
				h_ss = math.Acos(tantan)
			} else {
				h_ss = math.NaN()
			}
		} else {
			h_ss = math.Pi - hour_angle_epsilon
		}

		out[i] = _sunlit_integral_of_cosine_of_solar_zenith_angle(
			declination[i],
			lat,
			_wrap_radians(h_ss),
			_wrap_radians(h_s[i]),
			_wrap_radians(h_e[i]),
			average,
		)
	}
	return out, nil
}

/*
Integral of the cosine of the solar zenith angle over the sunlit part of
the interval [h_start, h_end].

Scalar kernel of CosineOfSolarZenithAngle: each (declination, latitude,
hour angle) triple resolves independently, so the caller may map it over
arbitrarily chunked arrays. All hour angles are wrapped into [-pi, pi);
h_end < h_start therefore means the interval crosses local midnight. A
NaN h_sunset flags the polar day or polar night, disambiguated by the
sign of declination*lat.

Every case uses the closed-form antiderivative over its resolved bounds
[h1, h2]:

	sin(dec)*sin(lat)*(h2-h1) + cos(dec)*cos(lat)*(sin(h2)-sin(h1))

	Args:
	    declination: solar declination, rad
	    lat: latitude, rad
	    h_sunset: hour angle of sunset, rad (sunrise is -h_sunset)
	    h_start: hour angle at the interval start, rad
	    h_end: hour angle at the interval end, rad
	    average: divide by the sunlit duration (0 when there is none)

	Returns:
	    integral (or average) of the cosine of the solar zenith angle
*/
func _sunlit_integral_of_cosine_of_solar_zenith_angle(declination, lat, h_sunset, h_start, h_end float64, average bool) float64 {
	h_sunrise := -h_sunset

	var num, denum float64
	switch {
	// Polar day: the whole interval is sunlit.
	case math.IsNaN(h_sunset) && declination*lat > 0:
		num = math.Sin(h_end) - math.Sin(h_start)
		if h_end < h_start {
			denum = h_end + 2.0*math.Pi - h_start
		} else {
			denum = h_end - h_start
		}
	// Polar night.
	case math.IsNaN(h_sunset) && declination*lat < 0:
		return 0.0
	// Interval fully at night: 1) crossing midnight, 2) between midnight
	// and sunrise, 3) between sunset and midnight.
	case (h_start > h_sunset && h_end < h_sunrise) ||
		(h_start < h_sunrise && h_end < h_sunrise) ||
		(h_start > h_sunset && h_end > h_sunset):
		return 0.0
	// Crossing midnight, starting after sunset, finishing after sunrise.
	case h_start > h_end && h_end >= h_sunrise && h_start >= h_sunset:
		num = math.Sin(h_end) - math.Sin(h_sunrise)
		denum = h_end - h_sunrise
	// Crossing midnight, starting after sunrise, finishing after sunset
	// (past midnight).
	case h_end < h_start && h_start >= h_sunrise && h_sunrise >= h_end:
		num = math.Sin(h_sunset) - math.Sin(h_start)
		denum = h_sunset - h_start
	// Crossing midnight, starting before sunset and finishing after
	// sunrise: two disjoint sunlit parts.
	case h_sunset >= h_start && h_start > h_end && h_end >= h_sunrise:
		num = math.Sin(h_sunset) - math.Sin(h_start) + math.Sin(h_end) - math.Sin(h_sunrise)
		denum = h_sunset - h_start + h_end - h_sunrise
	// Not crossing midnight, overlapping the sunlit part.
	default:
		h1 := math.Max(h_sunrise, h_start)
		h2 := math.Min(h_sunset, h_end)
		num = math.Sin(h2) - math.Sin(h1)
		denum = h2 - h1
	}

	out := math.Sin(declination)*math.Sin(lat)*denum + math.Cos(declination)*math.Cos(lat)*num
	if average {
		if denum == 0 {
			return 0.0
		}
		out /= denum
	}
	return out
}

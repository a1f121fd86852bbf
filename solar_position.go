package xclim

import (
	"fmt"
	"math"
	"time"
)

/*
Day of year as an angle.

Assuming the earth makes a full circle in a year, this is the angle
covered from the beginning of the year up to each timestep. Also called
the "julian day fraction".

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series

	Returns:
	    day angle, rad, [n]
*/
func DayAngle(times []time.Time, cal Calendar) []float64 {
	out := DecimalYear(times, cal)
	for i, dy := range out {
		_, frac := math.Modf(dy)
		out[i] = frac * 2.0 * math.Pi
	}
	return out
}

/*
Solar declination.

The angle between the sun rays and the earth's equator, as approximated
by the Fourier series of Spencer (1971) or assuming a circular orbit.

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series
	    method: MethodSpencer uses the first seven terms of the Fourier
	        series of the observed declination. MethodSimple assumes the
	        orbit is a circle with an obliquity of 0.4091 rad (23.43
	        degrees) and the equinox at a fixed angle on the orbit.

	Returns:
	    solar declination, rad, wrapped into [-pi, pi), [n]
*/
func SolarDeclination(times []time.Time, cal Calendar, method Method) ([]float64, error) {
	da := DayAngle(times, cal)
	sd := make([]float64, len(da))

	switch method {
	case MethodSimple:
		for i, a := range da {
			sd[i] = 0.4091 * math.Sin(a-1.39)
		}
	case MethodSpencer:
		for i, a := range da {
			sd[i] = 0.006918 -
				0.399912*math.Cos(a) +
				0.070257*math.Sin(a) -
				0.006758*math.Cos(2.0*a) +
				0.000907*math.Sin(2.0*a) -
				0.002697*math.Cos(3.0*a) +
				0.001480*math.Sin(3.0*a)
		}
	default:
		return nil, fmt.Errorf("%w: %q (must be \"simple\" or \"spencer\")", ErrUnsupportedMethod, method)
	}

	return _wrap_radians_slice(sd), nil
}

/*
Eccentricity correction factor of the earth's orbit.

The squared ratio of the mean earth-sun distance to the distance at a
specific moment; a multiplicative correction on top-of-atmosphere
radiation.

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series
	    method: MethodSpencer uses the first five terms of the Fourier
	        series of the eccentricity, MethodSimple only the first two
	        (Perrin de Brichambaut, 1975).

	Returns:
	    eccentricity correction factor, dimensionless, [n]
*/
func EccentricityCorrectionFactor(times []time.Time, cal Calendar, method Method) ([]float64, error) {
	da := DayAngle(times, cal)
	out := make([]float64, len(da))

	switch method {
	case MethodSimple:
		for i, a := range da {
			out[i] = 1.0 + 0.033*math.Cos(a)
		}
	case MethodSpencer:
		for i, a := range da {
			out[i] = 1.0001100 +
				0.034221*math.Cos(a) +
				0.001280*math.Sin(a) +
				0.000719*math.Cos(2.0*a) +
				0.000077*math.Sin(2.0*a)
		}
	default:
		return nil, fmt.Errorf("%w: %q (must be \"simple\" or \"spencer\")", ErrUnsupportedMethod, method)
	}

	return out, nil
}

/*
Sun-earth distance.

Mean-anomaly based estimate referenced to the epoch 2000-01-01T12:00:00,
from the Astronomical Almanac (U.S. Naval Observatory, 1985).

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series

	Returns:
	    sun-earth distance, astronomical units, [n]
*/
func DistanceFromSun(times []time.Time, cal Calendar) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		g := math.Mod(357.528+0.9856003*cal.days_since_epoch(t), 360.0) * to_rad
		out[i] = 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2.0*g)
	}
	return out
}

/*
Time correction for the solar angle.

Every degree of angular rotation of the earth equals four minutes of
time; this correction (the equation of time, as an angle) adjusts local
watch time to true solar time. Needed by the instantaneous statistic of
CosineOfSolarZenithAngle.

	Args:
	    times: timestamps, [n]
	    cal: calendar of the series

	Returns:
	    time correction, rad, wrapped into [-pi, pi), [n]
*/
func TimeCorrectionForSolarAngle(times []time.Time, cal Calendar) []float64 {
	da := DayAngle(times, cal)
	out := make([]float64, len(da))
	for i, a := range da {
		// The Fourier coefficients are in degrees of rotation.
		tc := 0.004297 +
			0.107029*math.Cos(a) -
			1.837877*math.Sin(a) -
			0.837378*math.Cos(2.0*a) -
			2.340475*math.Sin(2.0*a)
		out[i] = _wrap_radians(tc * to_rad)
	}
	return out
}

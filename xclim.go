/*
Package xclim computes solar position and radiation geometry for climate
indices: day angle, solar declination, eccentricity correction, the cosine
of the solar zenith angle (instantaneous, averaged or sunlit-integrated),
day length and extraterrestrial solar radiation, plus the day-length
latitude coefficients and hourly-temperature reconstruction built on top
of them.

All functions are stateless and operate element-wise on time series:
evaluating any of them on a contiguous subset of the input timestamps
gives the same values as evaluating the full series, so computations can
be partitioned freely along the time axis.

Latitudes and longitudes cross the API boundary in degrees (north and
east positive) and are converted to radians internally. All angle outputs
are in radians, wrapped into [-pi, pi).
*/
package xclim

import "errors"

// Method selects the approximation used for the solar declination and the
// eccentricity correction factor.
type Method string

const (
	// MethodSpencer uses the Fourier series of Spencer (1971): seven terms
	// for the declination, five for the eccentricity correction.
	MethodSpencer Method = "spencer"

	// MethodSimple assumes a circular orbit with a fixed obliquity of
	// 0.4091 rad and fixed solstice/equinox angles on the orbit.
	MethodSimple Method = "simple"
)

// Stat selects which statistic of the cosine of the solar zenith angle is
// returned over the evaluation interval.
type Stat string

const (
	// StatAverage is the mean of the cosine over the interval (or over its
	// sunlit part).
	StatAverage Stat = "average"

	// StatIntegral is the integral of the cosine over the hour angle, in
	// radians of the day circle. Multiply by 86400 / 2 pi for seconds.
	StatIntegral Stat = "integral"

	// StatInstant is the instantaneous cosine at the timestamp, clipped at
	// zero when the sun is below the horizon.
	StatInstant Stat = "instant"
)

// SolarConstant is the default total solar irradiance, W m-2, from
// Matthes et al. (2017).
const SolarConstant = 1361.0

var (
	// ErrUnsupportedMethod is returned when a Method is not one of
	// "simple" or "spencer".
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrUnsupportedStat is returned when a Stat is not one of "average",
	// "integral" or "instant".
	ErrUnsupportedStat = errors.New("unsupported stat")

	// ErrNonDailyFrequency is returned when an operation requiring daily
	// data receives a series sampled at another frequency.
	ErrNonDailyFrequency = errors.New("series is not daily")

	// ErrMissingTimeCorrection is returned when StatInstant is requested
	// without the time correction for the solar angle.
	ErrMissingTimeCorrection = errors.New("time correction is required when stat is \"instant\"")
)

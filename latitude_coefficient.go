package xclim

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// HuglinMethod selects the empirical day-length latitude coefficient used
// by viticulture indices such as the Huglin heliothermal index.
type HuglinMethod string

const (
	// HuglinMethodHuglin is the original stepwise table of Huglin (1978).
	HuglinMethodHuglin HuglinMethod = "huglin"

	// HuglinMethodInterpolated linearly smooths the stepwise table
	// between 40 and 50 degrees.
	HuglinMethodInterpolated HuglinMethod = "interpolated"
)

// JonesMethod selects the growing-season day-length latitude coefficient
// of Hall & Jones (2010).
type JonesMethod string

const (
	JonesMethodJones      JonesMethod = "jones"
	JonesMethodGladstones JonesMethod = "gladstones"
)

// SeasonFreq fixes the month a growing season year starts on: January for
// the northern hemisphere, July for the southern.
type SeasonFreq string

const (
	SeasonFreqJan SeasonFreq = "YS-JAN"
	SeasonFreqJul SeasonFreq = "YS-JUL"
)

// MonthDay is a calendar day within a year, used to bound the growing
// season.
type MonthDay struct {
	Month time.Month
	Day   int
}

/*
Simple day-length latitude coefficient for viticulture indices.

An empirical approximation of the day-length multiplication factor k as a
function of latitude alone. Huglin (1978).

	Args:
	    lats_deg: latitudes, degree (north positive), [m]
	    method: stepwise table or its interpolated variant
	    cap_value: coefficient used poleward of 50 degrees (NaN leaves
	        those latitudes undefined)

	Returns:
	    day-length coefficient, dimensionless, [m]
*/
func HuglinLatitudeCoefficient(lats_deg []float64, method HuglinMethod, cap_value float64) ([]float64, error) {
	out := make([]float64, len(lats_deg))

	switch method {
	case HuglinMethodHuglin:
		for i, lat := range lats_deg {
			a := math.Abs(lat)
			switch {
			case a <= 40:
				out[i] = 1.00
			case a <= 42:
				out[i] = 1.02
			case a <= 44:
				out[i] = 1.03
			case a <= 46:
				out[i] = 1.04
			case a <= 48:
				out[i] = 1.05
			case a <= 50:
				out[i] = 1.06
			default:
				out[i] = cap_value
			}
		}
	case HuglinMethodInterpolated:
		for i, lat := range lats_deg {
			a := math.Abs(lat)
			if a <= 50 {
				out[i] = 1.0 + math.Max(0.0, (a-40.0)/10.0)*0.06
			} else {
				out[i] = cap_value
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q (must be \"huglin\" or \"interpolated\")", ErrUnsupportedMethod, method)
	}

	return out, nil
}

/*
Day-length latitude coefficient based on the Gladstones methodology.

The ratio of the day length at each latitude to the day length at a
neutral reference latitude in the same hemisphere, per date. Gladstones
(1992, 2011).

	Args:
	    dates: daily timestamps, [n]
	    cal: calendar of the series
	    lats_deg: latitudes, degree (north positive), [m]
	    neutral_lat_deg: latitude at which the coefficient is 1
	    constrain_deg: equatorward of this absolute latitude the
	        coefficient is fixed to 1 (NaN disables the constraint)
	    method: declination approximation for the day lengths

	Returns:
	    day-length coefficient, dimensionless, [m][n]
*/
func GladstonesLatitudeCoefficient(
	dates []time.Time,
	cal Calendar,
	lats_deg []float64,
	neutral_lat_deg float64,
	constrain_deg float64,
	method Method,
) ([][]float64, error) {
	neutral := math.Abs(neutral_lat_deg)
	pivot_north, err := DayLengths(dates, cal, neutral, method, false)
	if err != nil {
		return nil, err
	}
	pivot_south, err := DayLengths(dates, cal, -neutral, method, false)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(lats_deg))
	for j, lat := range lats_deg {
		dl, err := DayLengths(dates, cal, lat, method, false)
		if err != nil {
			return nil, err
		}

		k := make([]float64, len(dates))
		for i := range dates {
			switch {
			case math.IsNaN(constrain_deg):
				if lat >= 0 {
					k[i] = dl[i] / pivot_north[i]
				} else {
					k[i] = dl[i] / pivot_south[i]
				}
			case lat >= constrain_deg:
				k[i] = dl[i] / pivot_north[i]
			case lat <= -constrain_deg:
				k[i] = dl[i] / pivot_south[i]
			default:
				k[i] = 1.0
			}
		}
		out[j] = k
	}
	return out, nil
}

/*
Growing-season day-length latitude coefficient of Hall & Jones (2010).

Day lengths are summed over the growing season of each year and mapped
linearly to the coefficient k; the "gladstones" variant applies the
additional affine transformation relating the two methodologies. Seasons
where the coefficient falls below 1 at every latitude are considered
incomplete and yield NaN.

	Args:
	    dates: daily timestamps, [n]
	    cal: calendar of the series
	    lats_deg: latitudes, degree (north positive), [m]
	    method: JonesMethodJones or JonesMethodGladstones
	    floor: clip coefficients below 1 up to 1
	    start: first day of the growing season (included)
	    end: last day of the growing season (excluded); an end before
	        start wraps around the new year
	    freq: month the season year starts on

	Returns:
	    day-length coefficient per season and latitude, dimensionless,
	    [season][m], with the season start years [season]
*/
func JonesLatitudeCoefficient(
	dates []time.Time,
	cal Calendar,
	lats_deg []float64,
	method JonesMethod,
	floor bool,
	start MonthDay,
	end MonthDay,
	freq SeasonFreq,
) ([][]float64, []int, error) {
	switch method {
	case JonesMethodJones, JonesMethodGladstones:
	default:
		return nil, nil, fmt.Errorf("%w: %q (must be \"jones\" or \"gladstones\")", ErrUnsupportedMethod, method)
	}
	switch freq {
	case SeasonFreqJan, SeasonFreqJul:
	default:
		return nil, nil, fmt.Errorf("%w: %q (must be \"YS-JAN\" or \"YS-JUL\")", ErrUnsupportedMethod, freq)
	}

	// Day lengths per latitude over the whole series.
	day_length := make([][]float64, len(lats_deg))
	for j, lat := range lats_deg {
		dl, err := DayLengths(dates, cal, lat, MethodSpencer, false)
		if err != nil {
			return nil, nil, err
		}
		day_length[j] = dl
	}

	// Gather the in-season day lengths of each season year.
	season_days := map[int][]int{}
	var season_years []int
	for i, t := range dates {
		if !_in_season(t, start, end) {
			continue
		}
		y := _season_year(t, freq)
		if _, ok := season_days[y]; !ok {
			season_years = append(season_years, y)
		}
		season_days[y] = append(season_days[y], i)
	}
	if len(season_years) == 0 {
		return nil, nil, errors.New("no dates fall within the growing season")
	}

	out := make([][]float64, len(season_years))
	all_nan := true
	for s, year := range season_years {
		idx := season_days[year]
		k := make([]float64, len(lats_deg))

		all_below_1 := true
		for j := range lats_deg {
			season := make([]float64, len(idx))
			for m, i := range idx {
				season[m] = day_length[j][i]
			}
			total := floats.Sum(season)
			k[j] = 2.8311e-4*total + 0.30834
			if !(k[j] < 1.0) {
				all_below_1 = false
			}
		}
		// A season whose coefficient is below 1 everywhere cannot contain
		// a full set of growing-season day lengths.
		if all_below_1 {
			for j := range k {
				k[j] = math.NaN()
			}
		} else {
			all_nan = false
			if method == JonesMethodGladstones {
				for j := range k {
					k[j] = 1.1135*k[j] - 0.1352
				}
			}
			if floor {
				for j := range k {
					if k[j] < 1.0 {
						k[j] = 1.0
					}
				}
			}
		}
		out[s] = k
	}

	if all_nan {
		return nil, nil, errors.New(
			"all latitudes for every growing season have a day length latitude coefficient below 1.0; " +
				"the growing season bounds are likely too restrictive or the time series incomplete")
	}
	return out, season_years, nil
}

/*
Whether the date lies within the growing season [start, end); seasons
with end before start wrap around the new year.
*/
func _in_season(t time.Time, start, end MonthDay) bool {
	t = t.UTC()
	md := int(t.Month())*100 + t.Day()
	s := int(start.Month)*100 + start.Day
	e := int(end.Month)*100 + end.Day
	if s <= e {
		return md >= s && md < e
	}
	return md >= s || md < e
}

/*
Season start year of the date: the calendar year for SeasonFreqJan, the
year of the preceding July for SeasonFreqJul.
*/
func _season_year(t time.Time, freq SeasonFreq) int {
	t = t.UTC()
	if freq == SeasonFreqJul && t.Month() < time.July {
		return t.Year() - 1
	}
	return t.Year()
}

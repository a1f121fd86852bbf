package xclim

import (
	"fmt"
	"math"
	"time"
)

/*
Disaggregate daily minimum and maximum temperatures to hourly values.

Daytime temperatures follow a sine over the day length; after sunset the
temperature decays logarithmically towards the next day's minimum.
Linvill (1990), as used by Chill Hours and Chill Units computations.

	Args:
	    dates: daily timestamps, [n]
	    cal: calendar of the series
	    tasmin: daily minimum temperature, degree C, [n]
	    tasmax: daily maximum temperature, degree C, [n]
	    lat_deg: latitude, degree (north positive)

	Returns:
	    hourly timestamps [24n] with the matching temperatures, degree C
*/
func MakeHourlyTemperature(
	dates []time.Time,
	cal Calendar,
	tasmin []float64,
	tasmax []float64,
	lat_deg float64,
) ([]time.Time, []float64, error) {
	if len(tasmin) != len(dates) || len(tasmax) != len(dates) {
		return nil, nil, fmt.Errorf("tasmin has %d and tasmax %d values for %d timestamps",
			len(tasmin), len(tasmax), len(dates))
	}

	day_length, err := DayLengths(dates, cal, lat_deg, MethodSpencer, true)
	if err != nil {
		return nil, nil, err
	}

	times := make([]time.Time, 0, 24*len(dates))
	tas := make([]float64, 0, 24*len(dates))

	for i, day := range dates {
		dl := day_length[i]
		// Temperature at sunset, from the daytime sine.
		tas_sunset := (tasmax[i]-tasmin[i])*math.Sin(math.Pi*dl/(dl+4.0)) + tasmin[i]

		// The last day keeps decaying towards its own minimum.
		next_tasmin := tasmin[i]
		if i+1 < len(dates) {
			next_tasmin = tasmin[i+1]
		}

		day_start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		for h := 0; h < 24; h++ {
			hf := float64(h)
			var v float64
			if hf < dl {
				v = (tasmax[i]-tasmin[i])*math.Sin(math.Pi*hf/(dl+4.0)) + tasmin[i]
			} else {
				decay := (tas_sunset - next_tasmin) / math.Log(24.0-(dl-1.0))
				v = tas_sunset - decay*math.Log(math.Max(1.0, hf+1.0-dl))
			}
			times = append(times, day_start.Add(time.Duration(h)*time.Hour))
			tas = append(tas, v)
		}
	}
	return times, tas, nil
}

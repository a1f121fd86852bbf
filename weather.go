package xclim

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// WeatherRow is one line of a daily weather CSV file.
type WeatherRow struct {
	Date   string  `csv:"date"`
	Tasmin float64 `csv:"tasmin"`
	Tasmax float64 `csv:"tasmax"`
}

// WeatherSeries holds a daily temperature series loaded from CSV.
type WeatherSeries struct {
	Times  []time.Time
	Tasmin []float64
	Tasmax []float64
}

/*
Load a daily weather series from a CSV file.

The file must carry a header with the columns date, tasmin and tasmax.
Dates are parsed as 2006-01-02, optionally followed by a time of day.

	Args:
	    file_path: path of the weather CSV file

	Returns:
	    the loaded series
*/
func LoadWeatherSeries(file_path string) (*WeatherSeries, error) {
	if _, err := os.Stat(file_path); os.IsNotExist(err) {
		return nil, fmt.Errorf("weather file %s does not exist", file_path)
	}

	file, err := os.Open(file_path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []*WeatherRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file_path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("weather file %s has no data rows", file_path)
	}

	ws := &WeatherSeries{
		Times:  make([]time.Time, len(rows)),
		Tasmin: make([]float64, len(rows)),
		Tasmax: make([]float64, len(rows)),
	}
	for i, row := range rows {
		t, err := _parse_date(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d of %s: %w", i+1, file_path, err)
		}
		ws.Times[i] = t
		ws.Tasmin[i] = row.Tasmin
		ws.Tasmax[i] = row.Tasmax
	}
	return ws, nil
}

func _parse_date(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

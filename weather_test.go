package xclim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWeatherSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	data := "date,tasmin,tasmax\n" +
		"2001-06-01,8.5,21.0\n" +
		"2001-06-02,9.0,22.5\n" +
		"2001-06-03,7.5,19.0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	ws, err := LoadWeatherSeries(path)
	require.NoError(t, err)
	require.Len(t, ws.Times, 3)

	assert.Equal(t, _date(2001, time.June, 1), ws.Times[0])
	assert.Equal(t, []float64{8.5, 9.0, 7.5}, ws.Tasmin)
	assert.Equal(t, []float64{21.0, 22.5, 19.0}, ws.Tasmax)
}

func TestLoadWeatherSeriesErrors(t *testing.T) {
	_, err := LoadWeatherSeries(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("date,tasmin,tasmax\nyesterday,1,2\n"), 0644))
	_, err = LoadWeatherSeries(bad)
	assert.Error(t, err)
}

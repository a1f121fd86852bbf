package xclim

import (
	"fmt"
	"math"
)

// Roughness parameters of the neutral-stability logarithmic wind profile
// over short grass, after Allen et al. (1998), eq. 47.
const (
	wind_profile_b = 67.8
	wind_profile_c = 5.42
)

/*
Convert wind speed between measurement heights.

Assumes a logarithmic wind profile under neutral stability over a short
grassed surface.

	Args:
	    ua: wind speed at h_source, m/s, [n]
	    h_source: height of the provided wind speed, m
	    h_target: height to convert the wind speed to, m

	Returns:
	    wind speed at h_target, m/s, [n]
*/
func WindSpeedHeightConversion(ua []float64, h_source float64, h_target float64) ([]float64, error) {
	// The profile 67.8 h - 5.42 must stay above 1 m for the logarithm
	// to be positive.
	min_height := (1.0 + wind_profile_c) / wind_profile_b
	if h_source <= min_height || h_target <= min_height {
		return nil, fmt.Errorf("wind profile heights must exceed %.4f m, got source %g m and target %g m",
			min_height, h_source, h_target)
	}

	factor := math.Log(wind_profile_b*h_target-wind_profile_c) /
		math.Log(wind_profile_b*h_source-wind_profile_c)
	out := make([]float64, len(ua))
	for i, u := range ua {
		out[i] = u * factor
	}
	return out, nil
}

package xclim

import (
	"math"
	"time"
)

/*
Extraterrestrial solar radiation.

The daily energy received on a surface parallel to the ground at the top
of the atmosphere: the solar constant scaled by the eccentricity
correction and the sunlit integral of the cosine of the solar zenith
angle. The 1 / 2 pi factor converts radians of the day circle into a
fraction of a day. Based on Kalogirou (2014); the default solar constant
is SolarConstant (Matthes et al., 2017).

	Args:
	    times: daily timestamps, [n]
	    cal: calendar of the series
	    lat_deg: latitude, degree (north positive)
	    solar_constant: total solar irradiance, W m-2
	    method: approximation for declination and eccentricity (see
	        SolarDeclination, EccentricityCorrectionFactor)

	Returns:
	    extraterrestrial solar radiation, J m-2 d-1, [n]
*/
func ExtraterrestrialSolarRadiation(times []time.Time, cal Calendar, lat_deg float64, solar_constant float64, method Method) ([]float64, error) {
	dr, err := EccentricityCorrectionFactor(times, cal, method)
	if err != nil {
		return nil, err
	}
	ds, err := SolarDeclination(times, cal, method)
	if err != nil {
		return nil, err
	}
	czi, err := CosineOfSolarZenithAngle(times, ds, lat_deg, 0.0, nil, StatIntegral, true)
	if err != nil {
		return nil, err
	}

	// W m-2 to J m-2 d-1.
	gsc := solar_constant * s_in_d
	rad_to_day := 1.0 / (2.0 * math.Pi)

	out := make([]float64, len(times))
	for i := range out {
		out[i] = gsc * rad_to_day * czi[i] * dr[i]
	}
	return out, nil
}

package xclim

import "math"

// Degrees per radian conversion factor.
const to_rad = math.Pi / 180.0

// Epsilon keeping hour angles strictly below pi, so that a sunset placed
// "at midnight" never collides with the interval end in the case dispatch
// of the zenith-angle kernel.
const hour_angle_epsilon = 1e-9

/*
Wrap an angle into [-pi, pi).

	Args:
	    x: angle, rad

	Returns:
	    wrapped angle, rad
*/
func _wrap_radians(x float64) float64 {
	m := math.Mod(x+math.Pi, 2.0*math.Pi)
	if m < 0 {
		m += 2.0 * math.Pi
	}
	return m - math.Pi
}

/*
Wrap every angle of a series into [-pi, pi).

	Args:
	    xs: angles, rad, [n]

	Returns:
	    wrapped angles, rad, [n]
*/
func _wrap_radians_slice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = _wrap_radians(x)
	}
	return out
}

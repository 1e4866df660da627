package gamemath

// ClampSpeed clamps a value to [-max, max]. A max of zero or less leaves the
// speed unclamped.
func ClampSpeed(speed, max float64) float64 {
	if max <= 0 {
		return speed
	}
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

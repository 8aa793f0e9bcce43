package physics

// CapSpeed limits v to [-maxSpeed, maxSpeed], returns true if clamped
// maxSpeed <= 0 disables the cap
func CapSpeed(v *float64, maxSpeed float64) bool {
	if maxSpeed <= 0 {
		return false
	}
	if *v > maxSpeed {
		*v = maxSpeed
		return true
	}
	if *v < -maxSpeed {
		*v = -maxSpeed
		return true
	}
	return false
}

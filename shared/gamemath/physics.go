package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// JumpForce is the upward displacement for one jump tick. Positive moves the
// character up (decreasing y).
func JumpForce(jumpSpeed, mass, maxForce float64) float64 {
	return ClampSpeed(mass*jumpSpeed, maxForce)
}

// JumpPeak returns the height gained by a jump with no obstacles and the number
// of ticks spent ascending. jumpSpeed drops by one unit per tick, so the ascent
// is the sum of the positive forces.
func JumpPeak(startSpeed, mass, maxForce float64) (height float64, ticks int) {
	for speed := startSpeed; ; speed-- {
		f := JumpForce(speed, mass, maxForce)
		if f <= 0 {
			return height, ticks
		}
		height += f
		ticks++
	}
}

// JumpAirTicks returns the number of jump ticks from take-off until the
// character is back at take-off height on flat ground.
func JumpAirTicks(startSpeed, mass, maxForce float64) int {
	if startSpeed <= 0 || mass <= 0 || maxForce <= 0 {
		return 1
	}
	var y float64 // displacement above take-off
	ticks := 0
	for speed := startSpeed; ; speed-- {
		y += JumpForce(speed, mass, maxForce)
		ticks++
		if y <= 0 {
			return ticks
		}
	}
}

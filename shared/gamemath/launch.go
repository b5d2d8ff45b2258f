package gamemath

import "math"

// UnitVector returns the normalized direction from (fromX, fromY) to (toX, toY).
// Coincident points yield (0, 0) instead of dividing by zero.
func UnitVector(fromX, fromY, toX, toY float64) (dirX, dirY float64) {
	dx := toX - fromX
	dy := toY - fromY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		dirX = dx / dist
		dirY = dy / dist
	}
	return dirX, dirY
}

// LaunchVelocity scales a direction by force and adds an upward lift.
// Screen y grows downward, so lift is subtracted.
func LaunchVelocity(dirX, dirY, force, lift float64) (velX, velY float64) {
	return dirX * force, dirY*force - lift
}

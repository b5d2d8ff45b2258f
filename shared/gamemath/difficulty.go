package gamemath

// DifficultySteps returns the number of completed difficulty steps for a score, capped at maxSteps.
func DifficultySteps(score, step, maxSteps int) int {
	if step <= 0 || score <= 0 {
		return 0
	}
	return min(score/step, maxSteps)
}

// DifficultyLevel is the 1-based level shown to players.
func DifficultyLevel(score, step, maxSteps int) int {
	return DifficultySteps(score, step, maxSteps) + 1
}

// MorphInterval returns the ticks between terrain morphs for the current score:
// base shortened by cut per difficulty step, never below floor.
func MorphInterval(score, base, cut, step, maxSteps, floor int) int {
	return max(base-cut*DifficultySteps(score, step, maxSteps), floor)
}

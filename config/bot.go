package config

// BotDifficulty affects reaction time and how eagerly a CPU player fights
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay int     // Ticks between decisions
	EngageRange   float64 // Fraction of an action's range the bot waits for before firing it
}

// BotConfig tunes the CPU controller
type BotConfig struct {
	LookAhead     float64 // Horizontal distance probed for holes in the walking direction
	ChaseDeadband float64 // Horizontal distance at which the bot stops walking toward a target
	ClimbHeight   float64 // Target height above the bot that makes it jump
	Difficulties  map[BotDifficulty]BotDifficultyConfig
}

func defaultBotConfig() BotConfig {
	return BotConfig{
		LookAhead:     40,
		ChaseDeadband: 20,
		ClimbHeight:   60,
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay: 30, // 0.5 second reaction time
				EngageRange:   0.6,
			},
			BotDifficultyNormal: {
				ReactionDelay: 15,
				EngageRange:   0.8,
			},
			BotDifficultyHard: {
				ReactionDelay: 5, // Near-instant reaction
				EngageRange:   1.0,
			},
		},
	}
}

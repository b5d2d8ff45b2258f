package config

// StageConfig contains the fixed stage geometry and simulation rate
type StageConfig struct {
	Width    int
	Height   int
	TickRate int // ticks per second, one tick per rendered frame

	GroundHeight float64 // Height of the full-width ground strip at the bottom of the stage
	SpawnOffsetY float64 // Spawn y is Height - SpawnOffsetY
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed         float64 // Constant horizontal speed while a direction is held
	JumpSpeed     float64 // Upward velocity applied on jump (positive, applied as -JumpSpeed)
	IdleFriction  float64 // Horizontal velocity multiplier when no direction is held
	LockFriction  float64 // Horizontal velocity multiplier while stunned or during a morph
	Gravity       float64
	DeathGravity  float64 // Gravity multiplier applied while dead
	DeathPopSpeed float64 // Upward velocity given on death
	DeathDriftMax int     // Horizontal death velocity is drawn from [-DeathDriftMax, DeathDriftMax]

	// Durations (ticks)
	DeathDuration int
	StunDuration  int
}

// CombatConfig contains ranges, forces and cooldowns for tag, punch and throw
type CombatConfig struct {
	TagRange    float64
	TagCooldown int

	PunchRange    float64
	PunchForce    float64
	PunchLift     float64 // Subtracted from the vertical knockback
	PunchCooldown int

	ThrowRange    float64
	ThrowForce    float64
	ThrowLift     float64 // Subtracted from the vertical launch velocity
	ThrowCooldown int
}

// TerrainConfig contains generation ranges and morph scheduling values
type TerrainConfig struct {
	// Initial layout
	InitialHoles          int
	InitialHoleMinWidth   int
	InitialHoleMaxWidth   int
	HoleMinX              int // Holes are placed with x in [HoleMinX, Width-HoleMaxXInset]
	HoleMaxXInset         int
	SafeZone              float64
	HolePlacementAttempts int

	InitialPlatforms         int
	InitialPlatformMinWidth  int
	InitialPlatformMaxWidth  int
	InitialPlatformHeight    int
	InitialPlatformMinX      int
	InitialPlatformMaxXInset int
	InitialPlatformMinY      int
	InitialPlatformMaxYInset int

	// Morph layout
	MorphMinHoles          int
	MorphMaxHoles          int
	MorphHoleMinWidth      int
	MorphHoleMaxWidth      int
	MorphMinPlatforms      int
	MorphMaxPlatforms      int
	MorphPlatformMaxXInset int
	MorphPlatformMinY      int
	MorphPlatformMaxYInset int
	MorphPlatformMinWidth  int
	MorphPlatformMaxWidth  int
	MorphPlatformMinHeight int
	MorphPlatformMaxHeight int
	PlatformSkipChance     float64
	PlatformShrinkChance   float64
	PlatformShrinkMin      int
	PlatformShrinkMax      int
	PlatformMinWidth       int

	// Scheduling
	BaseMorphInterval int
	MinMorphInterval  int
	DifficultyStep    int // Score ticks per difficulty step
	DifficultyCut     int // Interval reduction per difficulty step
	MaxDifficulty     int
	MorphDuration     int
	MorphWarning      int // Ticks before a morph where the HUD warns players
	ShakeWindow       int // Ticks before a morph where the renderer shakes the stage
}

// RoundConfig contains round and session values
type RoundConfig struct {
	RoundEndDuration int
	MinPlayers       int
	MaxPlayers       int
}

// Config is the complete tuning for one session. It is owned by the session
// root and passed explicitly to the terrain and every system.
type Config struct {
	Stage   StageConfig
	Player  PlayerConfig
	Combat  CombatConfig
	Terrain TerrainConfig
	Round   RoundConfig
	Bot     BotConfig
	Seed    uint64 // 0 = seed from the clock
}

// Default returns the canonical tuning for a 1200x800 stage at 60 ticks/second.
func Default() *Config {
	return &Config{
		Stage: StageConfig{
			Width:        1200,
			Height:       800,
			TickRate:     60,
			GroundHeight: 60,
			SpawnOffsetY: 150,
		},
		Player: PlayerConfig{
			Width:         30,
			Height:        40,
			Speed:         8,
			JumpSpeed:     15,
			IdleFriction:  0.8,
			LockFriction:  0.9,
			Gravity:       0.8,
			DeathGravity:  0.5,
			DeathPopSpeed: 8,
			DeathDriftMax: 5,
			DeathDuration: 60,
			StunDuration:  120, // 2 seconds at 60fps
		},
		Combat: CombatConfig{
			TagRange:    60,
			TagCooldown: 30,

			PunchRange:    50,
			PunchForce:    12,
			PunchLift:     3,
			PunchCooldown: 20,

			ThrowRange:    45,
			ThrowForce:    15,
			ThrowLift:     12,
			ThrowCooldown: 60,
		},
		Terrain: TerrainConfig{
			InitialHoles:          2,
			InitialHoleMinWidth:   60,
			InitialHoleMaxWidth:   120,
			HoleMinX:              100,
			HoleMaxXInset:         200,
			SafeZone:              80,
			HolePlacementAttempts: 50,

			InitialPlatforms:         6,
			InitialPlatformMinWidth:  80,
			InitialPlatformMaxWidth:  200,
			InitialPlatformHeight:    20,
			InitialPlatformMinX:      100,
			InitialPlatformMaxXInset: 200,
			InitialPlatformMinY:      200,
			InitialPlatformMaxYInset: 150,

			MorphMinHoles:          2,
			MorphMaxHoles:          5,
			MorphHoleMinWidth:      60,
			MorphHoleMaxWidth:      150,
			MorphMinPlatforms:      4,
			MorphMaxPlatforms:      8,
			MorphPlatformMaxXInset: 150,
			MorphPlatformMinY:      150,
			MorphPlatformMaxYInset: 150,
			MorphPlatformMinWidth:  60,
			MorphPlatformMaxWidth:  250,
			MorphPlatformMinHeight: 15,
			MorphPlatformMaxHeight: 25,
			PlatformSkipChance:     0.2,
			PlatformShrinkChance:   0.1,
			PlatformShrinkMin:      10,
			PlatformShrinkMax:      30,
			PlatformMinWidth:       30,

			BaseMorphInterval: 180,
			MinMorphInterval:  60, // ~1 second
			DifficultyStep:    500,
			DifficultyCut:     20,
			MaxDifficulty:     10,
			MorphDuration:     30,
			MorphWarning:      60,
			ShakeWindow:       30,
		},
		Round: RoundConfig{
			RoundEndDuration: 180, // 3 seconds at 60fps
			MinPlayers:       2,
			MaxPlayers:       3,
		},
		Bot: defaultBotConfig(),
	}
}

// StageCenter returns the point thrown players are launched toward
func (c *Config) StageCenter() (float64, float64) {
	return float64(c.Stage.Width / 2), float64(c.Stage.Height / 2)
}

// GroundY returns the top edge of the ground strip
func (c *Config) GroundY() float64 {
	return float64(c.Stage.Height) - c.Stage.GroundHeight
}

// SpawnPositions returns the symmetric spawn x-positions for a player count.
// Two players spawn at thirds of the stage, any other count at quarters.
func (c *Config) SpawnPositions(numPlayers int) []float64 {
	w := c.Stage.Width
	if numPlayers == 2 {
		return []float64{float64(w / 3), float64(2 * w / 3)}
	}
	return []float64{float64(w / 4), float64(w / 2), float64(3 * w / 4)}
}

// SpawnY returns the shared spawn height
func (c *Config) SpawnY() float64 {
	return float64(c.Stage.Height) - c.Stage.SpawnOffsetY
}

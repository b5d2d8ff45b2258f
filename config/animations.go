package config

// AnimationConfig contains render-only timing values. Nothing here feeds the simulation.
type AnimationConfig struct {
	ShakeScale      float64 // Stage offset in pixels per tick inside the pre-morph shake window
	WarningFlashMs  int64   // Period of the "TERRAIN SHIFT!" flash
	DeathBlinkTicks int     // Half period of the death color blink
	StunPulseTicks  int     // Period of the stunned color pulse
	MorphFadeSecs   float32 // Duration of the platform fade-in after a morph
	OverlayFadeSecs float32 // Duration of the round-over overlay fade-in
	OverlayAlpha    float32 // Final alpha of the round-over overlay
	StarCount       int
	StarSeed        uint64 // Fixed so the background is the same every frame
}

// Animation is the global animation configuration
var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		ShakeScale:      0.5,
		WarningFlashMs:  200,
		DeathBlinkTicks: 5,
		StunPulseTicks:  20,
		MorphFadeSecs:   0.5,
		OverlayFadeSecs: 0.4,
		OverlayAlpha:    0.7,
		StarCount:       80,
		StarSeed:        42,
	}
}

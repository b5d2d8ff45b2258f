package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMorphIntervalRamp(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{0, 180},
		{499, 180},
		{500, 160},
		{1000, 140},
		{2999, 140 - 20*3},
		{3000, 60},
		{5000, 60},
		{100000, 60},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MorphInterval(tc.score, 180, 20, 500, 10, 60), "score %d", tc.score)
	}
}

func TestMorphIntervalNeverBelowFloor(t *testing.T) {
	for score := 0; score < 20000; score += 37 {
		got := MorphInterval(score, 180, 20, 500, 10, 60)
		want := max(180-20*min(score/500, 10), 60)
		assert.Equal(t, want, got)
		assert.GreaterOrEqual(t, got, 60)
	}
}

func TestDifficultyLevel(t *testing.T) {
	assert.Equal(t, 1, DifficultyLevel(0, 500, 10))
	assert.Equal(t, 2, DifficultyLevel(500, 500, 10))
	assert.Equal(t, 11, DifficultyLevel(99999, 500, 10))
}

func TestUnitVector(t *testing.T) {
	dx, dy := UnitVector(0, 0, 3, 4)
	assert.InDelta(t, 0.6, dx, 1e-9)
	assert.InDelta(t, 0.8, dy, 1e-9)

	dx, dy = UnitVector(10, 10, 10, 10)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, math.IsNaN(dx))
}

func TestLaunchVelocity(t *testing.T) {
	vx, vy := LaunchVelocity(0, 0, 12, 3)
	assert.Equal(t, 0.0, vx)
	assert.Equal(t, -3.0, vy)

	vx, vy = LaunchVelocity(1, 0, 15, 12)
	assert.Equal(t, 15.0, vx)
	assert.Equal(t, -12.0, vy)
}

func TestRectOverlapIsStrict(t *testing.T) {
	platform := Rect{X: 0, Y: 740, W: 1200, H: 60}

	resting := Rect{X: 100, Y: 700, W: 30, H: 40}
	assert.False(t, resting.Overlaps(platform))

	sunk := Rect{X: 100, Y: 700.5, W: 30, H: 40}
	assert.True(t, sunk.Overlaps(platform))

	beside := Rect{X: 1200, Y: 750, W: 30, H: 40}
	assert.False(t, beside.Overlaps(platform))

	assert.True(t, Rect{X: 10, W: 5, H: 1}.OverlapsX(Rect{X: 14, W: 5, H: 1}))
	assert.False(t, Rect{X: 10, W: 5, H: 1}.OverlapsX(Rect{X: 15, W: 5, H: 1}))
}

func TestRandIntInclusive(t *testing.T) {
	r := NewRand(1)
	seen := map[int]bool{}
	for range 1000 {
		v := RandInt(r, -2, 2)
		assert.GreaterOrEqual(t, v, -2)
		assert.LessOrEqual(t, v, 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 7, RandInt(r, 7, 7))
	assert.Equal(t, 7, RandInt(r, 7, 3))
}

func TestNewRandIsReproducible(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for range 50 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestClampAndDecay(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-4, 0, 1170))
	assert.Equal(t, 1170.0, Clamp(1300, 0, 1170))
	assert.Equal(t, 55.5, Clamp(55.5, 0, 1170))
	assert.InDelta(t, 6.4, Decay(8, 0.8), 1e-9)
	assert.Equal(t, 5.0, Distance(0, 0, 3, 4))
}

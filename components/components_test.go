package components

import (
	"testing"

	cfg "github.com/automoto/dreamrunner/config"
	"github.com/stretchr/testify/assert"
)

func TestGetLeader(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"no rounds", nil, -2},
		{"no wins", []int{0, 0, 0}, -2},
		{"single leader", []int{1, 3, 2}, 1},
		{"tied leaders", []int{2, 2, 0}, -1},
		{"tie below leader", []int{1, 1, 4}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MatchData{PlayerScores: tt.scores}
			assert.Equal(t, tt.want, m.GetLeader())
		})
	}
}

func TestRoundWinner(t *testing.T) {
	m := &MatchData{WinnerIndex: cfg.WinnerTie}
	_, ok := m.RoundWinner()
	assert.False(t, ok)

	m.WinnerIndex = 2
	idx, ok := m.RoundWinner()
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestMenuMoveWraps(t *testing.T) {
	m := &MenuData{Options: []int{2, 3}}
	assert.Equal(t, 2, m.Selected())

	m.Move(1)
	assert.Equal(t, 3, m.Selected())
	m.Move(1)
	assert.Equal(t, 2, m.Selected())
	m.Move(-1)
	assert.Equal(t, 3, m.Selected())

	empty := &MenuData{}
	empty.Move(1)
	assert.Equal(t, 0, empty.Selected())
}

func TestControls(t *testing.T) {
	var c ControlsData
	c.Held[cfg.ActionJump] = true
	assert.True(t, c.Pressed(cfg.ActionJump))
	assert.False(t, c.Pressed(cfg.ActionTag))
	c.Clear()
	assert.False(t, c.Pressed(cfg.ActionJump))
}

func TestTerrainMorphCountdown(t *testing.T) {
	terrain := &TerrainData{MorphInterval: 180, MorphTimer: 130}
	assert.Equal(t, 50, terrain.TicksUntilMorph())
	assert.True(t, terrain.MorphWarning(60))
	assert.False(t, terrain.MorphWarning(30))

	terrain.IsMorphing = true
	assert.False(t, terrain.MorphWarning(60))
}

func TestTerrainShakeLevel(t *testing.T) {
	terrain := &TerrainData{MorphInterval: 180, MorphTimer: 100}
	assert.Equal(t, 0, terrain.ShakeLevel(30), "outside the window")

	terrain.MorphTimer = 170
	assert.Equal(t, 20, terrain.ShakeLevel(30))
	assert.Equal(t, 0, terrain.ShakeLevel(5), "window comes from the caller's config")

	terrain.IsMorphing = true
	assert.Equal(t, 0, terrain.ShakeLevel(30))
}

package input

import (
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ControlSchemeBindings maps each keyboard layout to the keys for every action.
var ControlSchemeBindings = map[cfg.ControlSchemeID]map[cfg.ActionID][]ebiten.Key{
	cfg.ControlSchemeWASD: {
		cfg.ActionMoveLeft:  {ebiten.KeyA},
		cfg.ActionMoveRight: {ebiten.KeyD},
		cfg.ActionJump:      {ebiten.KeyW},
		cfg.ActionTag:       {ebiten.KeyQ},
		cfg.ActionPunch:     {ebiten.KeyE},
		cfg.ActionThrow:     {ebiten.KeyS},
	},
	cfg.ControlSchemeArrows: {
		cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
		cfg.ActionMoveRight: {ebiten.KeyArrowRight},
		cfg.ActionJump:      {ebiten.KeyArrowUp},
		cfg.ActionTag:       {ebiten.KeyShiftRight},
		cfg.ActionPunch:     {ebiten.KeySlash},
		cfg.ActionThrow:     {ebiten.KeyArrowDown},
	},
	cfg.ControlSchemeTFGH: {
		cfg.ActionMoveLeft:  {ebiten.KeyG},
		cfg.ActionMoveRight: {ebiten.KeyJ},
		cfg.ActionJump:      {ebiten.KeyY},
		cfg.ActionTag:       {ebiten.KeyT},
		cfg.ActionPunch:     {ebiten.KeyU},
		cfg.ActionThrow:     {ebiten.KeyH},
	},
}

// ControlSchemeHelp is the one-line key summary drawn on the HUD per slot.
var ControlSchemeHelp = map[cfg.ControlSchemeID]string{
	cfg.ControlSchemeWASD:   "P1: WASD + Q(tag) E(punch) S(throw)",
	cfg.ControlSchemeArrows: "P2: Arrows + RShift(tag) /(punch) Down(throw)",
	cfg.ControlSchemeTFGH:   "P3: YGJ + T(tag) U(punch) H(throw)",
}

// GamepadBindings applies to the gamepad bound to a slot, in addition to its keys.
var GamepadBindings = map[cfg.ActionID][]ebiten.StandardGamepadButton{
	cfg.ActionMoveLeft:  {ebiten.StandardGamepadButtonLeftLeft},
	cfg.ActionMoveRight: {ebiten.StandardGamepadButtonLeftRight},
	cfg.ActionJump:      {ebiten.StandardGamepadButtonRightBottom},
	cfg.ActionTag:       {ebiten.StandardGamepadButtonRightLeft},
	cfg.ActionPunch:     {ebiten.StandardGamepadButtonRightRight},
	cfg.ActionThrow:     {ebiten.StandardGamepadButtonRightTop},
}

// SessionBindings are edge-triggered keys shared by all players.
var SessionBindings = map[cfg.SessionActionID][]ebiten.Key{
	cfg.SessionRestart:     {ebiten.KeyR},
	cfg.SessionMenu:        {ebiten.KeyEscape},
	cfg.SessionToggleMusic: {ebiten.KeyM},
}

// Start menu navigation keys
var (
	MenuUpKeys     = []ebiten.Key{ebiten.KeyArrowUp}
	MenuDownKeys   = []ebiten.Key{ebiten.KeyArrowDown}
	MenuSelectKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}
)

const analogDeadzone = 0.25

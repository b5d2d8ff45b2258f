// Package input maps keyboard and gamepad state onto per-player controls.
package input

import (
	"github.com/automoto/dreamrunner/components"
	cfg "github.com/automoto/dreamrunner/config"
	"github.com/automoto/dreamrunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdatePlayerControls polls the bound keys of every human player in the
// roster. Must run BEFORE the simulation step.
func UpdatePlayerControls(w donburi.World) {
	match, ok := systems.GetMatch(w)
	if !ok {
		return
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for _, e := range systems.Roster(w, match) {
		if e.HasComponent(components.Bot) {
			continue
		}
		player := components.Player.Get(e)
		controls := components.Controls.Get(e)
		controls.Clear()

		pollKeys(controls, cfg.ControlSchemeForSlot(player.Index))
		if player.Index < len(gamepadIDs) {
			pollGamepad(controls, gamepadIDs[player.Index])
		}
	}
}

func pollKeys(controls *components.ControlsData, scheme cfg.ControlSchemeID) {
	for actionID, keys := range ControlSchemeBindings[scheme] {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				controls.Held[actionID] = true
			}
		}
	}
}

func pollGamepad(controls *components.ControlsData, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}

	for actionID, buttons := range GamepadBindings {
		for _, btn := range buttons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				controls.Held[actionID] = true
			}
		}
	}

	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if horizontal < -analogDeadzone {
		controls.Held[cfg.ActionMoveLeft] = true
	}
	if horizontal > analogDeadzone {
		controls.Held[cfg.ActionMoveRight] = true
	}
}

// SessionJustPressed reports whether a session key went down this frame.
func SessionJustPressed(action cfg.SessionActionID) bool {
	return anyJustPressed(SessionBindings[action])
}

// MenuDelta returns -1 or 1 when a menu navigation key went down this frame.
func MenuDelta() int {
	switch {
	case anyJustPressed(MenuUpKeys):
		return -1
	case anyJustPressed(MenuDownKeys):
		return 1
	}
	return 0
}

func MenuSelectJustPressed() bool {
	return anyJustPressed(MenuSelectKeys)
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

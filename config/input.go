package config

// ActionID represents a logical per-player action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionTag
	ActionPunch
	ActionThrow
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
	ActionTag:       "tag",
	ActionPunch:     "punch",
	ActionThrow:     "throw",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// SessionActionID represents a session-wide command issued by the shell
type SessionActionID int

const (
	SessionRestart SessionActionID = iota
	SessionMenu
	SessionToggleMusic
	SessionActionCount
)

// ControlSchemeID identifies the keyboard layout bound to a player slot
type ControlSchemeID int

const (
	ControlSchemeWASD ControlSchemeID = iota
	ControlSchemeArrows
	ControlSchemeTFGH
	ControlSchemeCount
)

// ControlSchemeForSlot returns the keyboard layout for a roster position
func ControlSchemeForSlot(index int) ControlSchemeID {
	if index < 0 || index >= int(ControlSchemeCount) {
		return ControlSchemeWASD
	}
	return ControlSchemeID(index)
}

package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the start menu
type MenuData struct {
	SelectedIndex int   // Current selection index in Options
	Options       []int // Player counts offered
}

func (m *MenuData) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.SelectedIndex = ((m.SelectedIndex+delta)%n + n) % n
}

func (m *MenuData) Selected() int {
	if len(m.Options) == 0 {
		return 0
	}
	return m.Options[m.SelectedIndex]
}

// Menu is the component type for start menu state
var Menu = donburi.NewComponentType[MenuData]()

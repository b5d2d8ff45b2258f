package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	OnGround bool // Set by terrain collision, cleared at the start of every check
}

var Physics = donburi.NewComponentType[PhysicsData]()

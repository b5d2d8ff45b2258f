package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Bot     = donburi.NewTag().SetName("Bot")
	Terrain = donburi.NewTag().SetName("Terrain")
)

// Resolv tags for physics collision
const (
	ResolvPlayer   = "player"
	ResolvPlatform = "platform"
	ResolvGround   = "ground"
	ResolvHole     = "hole"
)

package components

import (
	"github.com/automoto/dreamrunner/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounding box.
func (o *ObjectData) Rect() gamemath.Rect {
	return RectOf(o.Object)
}

// RectOf returns the bounding box of a resolv object.
func RectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// Sync pushes a moved object back into its space so broadphase queries see it.
func Sync(obj *resolv.Object) {
	if obj.Space != nil {
		obj.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()

package components

import (
	"github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"
)

// Translation adapts a donburi transform so a bounding box can push its
// position into it.
type Translation struct {
	*transform.TransformData
}

func (t Translation) SetTranslation(x, y float64) {
	t.LocalPosition = math.NewVec2(x, y)
}

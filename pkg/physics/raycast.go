package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Raycast 返回线段 from→to 上最近的命中（XY 平面）
func (s *Space) Raycast(from, to mgl64.Vec3) (RaycastHit, bool) {
	length := to.Vec2().Sub(from.Vec2()).Len()
	if length < 1e-12 {
		return RaycastHit{}, false
	}

	info := s.space.SegmentQueryFirst(toVector(from), toVector(to), 0, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return RaycastHit{}, false
	}
	b, ok := info.Shape.UserData.(*body)
	if !ok {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Body:     b.id,
		Point:    fromVector(info.Point, from.Z()),
		Normal:   fromVector(info.Normal, 0),
		Distance: info.Alpha * length,
	}, true
}

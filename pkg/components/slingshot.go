package components

import (
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// DragState 弹弓拖拽状态
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// SlingshotComponent 弹弓
//
// 状态：空 → 已装填 → 拖拽中 → 释放后回到空。
// 同一时刻最多装填一只小鸟。
type SlingshotComponent struct {
	Base      mgl64.Vec3 // 底座位置
	RestPoint mgl64.Vec3 // 小鸟静止位置（底座 + 偏移）

	LoadedBird ecs.EntityID // 0 表示空
	State      DragState
	// DragOffset 拖拽点相对静止点的偏移，长度不超过最大拉距且 X 不为正
	DragOffset mgl64.Vec3
}

// DragPoint 当前拖拽点的世界坐标
func (s *SlingshotComponent) DragPoint() mgl64.Vec3 {
	return s.RestPoint.Add(s.DragOffset)
}

// IsEmpty 是否未装填
func (s *SlingshotComponent) IsEmpty() bool {
	return s.LoadedBird == 0
}

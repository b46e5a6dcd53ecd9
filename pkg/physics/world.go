package physics

import "github.com/go-gl/mathgl/mgl64"

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . World

// World 物理引擎边界
//
// 所有引用未注册 BodyID 的操作都静默忽略（返回零值/false），
// 以容忍玩法移除刚体与碰撞回调之间的时序竞争。
type World interface {
	// AddBody 注册刚体，id 已存在时返回 ErrDuplicateBody
	AddBody(id BodyID, def BodyDef) error
	// RemoveBody 移除刚体，未知 id 为空操作
	RemoveBody(id BodyID)
	HasBody(id BodyID) bool
	Body(id BodyID) (BodyState, bool)

	// Step 推进模拟，返回本次实际执行的固定子步数
	Step(dt float64) int

	// ApplyImpulse 施加瞬时冲量，worldPoint 非空时作用于该点（产生力矩）
	ApplyImpulse(id BodyID, impulse mgl64.Vec3, worldPoint *mgl64.Vec3)
	// SetPosition 直接设置位置并清零速度
	SetPosition(id BodyID, pos mgl64.Vec3)
	SetVelocity(id BodyID, vel mgl64.Vec3)
	SetMass(id BodyID, mass float64)

	// MakeKinematic 切换为运动学模式：零质量、清零速度、无碰撞响应、禁止休眠
	MakeKinematic(id BodyID)
	// MakeDynamic 切换回动力学模式：恢复质量、允许休眠并唤醒
	MakeDynamic(id BodyID, mass float64)

	WakeUp(id BodyID)
	Sleep(id BodyID)

	Raycast(from, to mgl64.Vec3) (RaycastHit, bool)

	// Clear 移除全部刚体
	Clear()
	BodyCount() int
}

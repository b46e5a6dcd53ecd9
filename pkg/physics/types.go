// Package physics 提供刚体物理适配层
//
// 玩法代码只通过 World 接口与物理引擎交互：按 BodyID 注册/移除刚体、推进模拟、
// 施加冲量、查询状态以及订阅碰撞事件。Space 是基于 Chipmunk2D（github.com/jakecoffman/cp）的实现，
// 对外使用三维坐标，模拟只在 XY 平面内进行，Z 坐标原样保留。
package physics

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDuplicateBody 同一 BodyID 重复注册
var ErrDuplicateBody = errors.New("physics: body already registered")

// BodyID 刚体标识，由调用方分配（通常等于实体ID）
type BodyID uint64

// ShapeKind 碰撞形状类型
type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapePlane
)

// Shape 碰撞形状
type Shape struct {
	Kind        ShapeKind
	Radius      float64    // 球体半径
	HalfExtents mgl64.Vec3 // 长方体半尺寸
}

// Sphere 创建球体形状
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box 创建长方体形状（参数为完整宽、高、深）
func Box(width, height, depth float64) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: mgl64.Vec3{width / 2, height / 2, depth / 2}}
}

// Plane 创建水平无限平面（法线 +Y，高度取刚体位置的 Y 坐标）
func Plane() Shape {
	return Shape{Kind: ShapePlane}
}

// BodyMode 刚体模式
type BodyMode int

const (
	// ModeDynamic 受重力、冲量和碰撞响应影响
	ModeDynamic BodyMode = iota
	// ModeKinematic 质量为零，位置由外部直接设置，不受力和碰撞影响
	ModeKinematic
	// ModeStatic 永不移动
	ModeStatic
)

func (m BodyMode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	case ModeKinematic:
		return "kinematic"
	case ModeStatic:
		return "static"
	}
	return "unknown"
}

// CollisionEvent 碰撞事件
// ImpactVelocity 为接触点处沿法线方向的相对速度（接近时为负），由接收方自行解释
type CollisionEvent struct {
	Self           BodyID
	Other          BodyID
	ImpactVelocity float64
	Normal         mgl64.Vec3 // 从 Self 指向 Other
	Point          mgl64.Vec3
}

// CollisionHandler 碰撞回调，在 Step 结束后按发生顺序调用
type CollisionHandler func(CollisionEvent)

// BodyDef 刚体创建参数
type BodyDef struct {
	Shape    Shape
	Material string
	// Mass 为 0 时创建静态刚体
	Mass     float64
	Position mgl64.Vec3
	Angle    float64 // 绕 Z 轴旋转（弧度）
	Velocity mgl64.Vec3

	LinearDamping  float64
	AngularDamping float64
	// LinearFactor/AngularFactor 逐轴运动锁定，零值时分别取 (1,1,0) 和 (0,0,1)
	LinearFactor  mgl64.Vec3
	AngularFactor mgl64.Vec3

	AllowSleep      bool
	SleepSpeedLimit float64
	SleepTimeLimit  float64
	StartAsleep     bool

	// Group 非零且相同的刚体之间不产生碰撞
	Group uint32

	OnCollide CollisionHandler
}

// BodyState 刚体状态快照
type BodyState struct {
	Position        mgl64.Vec3
	Velocity        mgl64.Vec3
	Angle           float64
	AngularVelocity float64
	Mode            BodyMode
	Asleep          bool
	Mass            float64
	Shape           Shape
	Material        string
}

// Speed 线速度大小
func (s BodyState) Speed() float64 {
	return s.Velocity.Len()
}

// RaycastHit 射线检测结果
type RaycastHit struct {
	Body     BodyID
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

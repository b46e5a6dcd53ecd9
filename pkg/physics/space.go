package physics

import (
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// SpaceConfig 物理世界参数
type SpaceConfig struct {
	Gravity       float64 // Y 轴重力加速度
	TimeStep      float64 // 固定子步长
	MaxSubSteps   int     // 每次 Step 的子步上限
	MaxFrameDelta float64 // Step 输入 dt 的上限
	Iterations    int     // 接触求解迭代次数，0 时取 8

	// IslandSleepTime 大于 0 时启用整组休眠：接触连通的一组刚体全部静止超过该时长后一起休眠
	IslandSleepTime float64
	// IslandIdleSpeed 整组休眠的静止速度阈值，0 时按重力和子步长估算
	IslandIdleSpeed float64

	Materials *ContactMaterialTable
}

const (
	// 所有形状共用一个碰撞类型，由同一个处理器派发事件
	bodyCollisionType cp.CollisionType = 1
	// 允许的穿透深度
	collisionSlop = 0.01
	// 平面是顶面位于刚体高度的宽大静态长方体
	planeHalfWidth = 1e4
	planeDepth     = 100
)

// Space 基于 Chipmunk2D 的刚体物理世界
//
// 刚体按注册顺序存储，同一对刚体的碰撞事件先派发给先注册的一方。
// 除引擎的整组休眠外，每个动力学刚体还按自己的 SleepSpeedLimit/SleepTimeLimit 单独休眠：
// 单独休眠的刚体冻结在原地，直到被唤醒或被足够快的刚体撞到。
type Space struct {
	cfg         SpaceConfig
	space       *cp.Space
	bodies      []*body
	index       map[BodyID]*body
	seq         uint64
	accumulator float64

	pending []CollisionEvent
}

type body struct {
	id       BodyID
	seq      uint64
	cb       *cp.Body
	cs       *cp.Shape
	shape    Shape
	material string
	mode     BodyMode
	z        float64
	restMass float64 // 切换为运动学模式前的质量

	linDamp      float64
	angDamp      float64
	linFactor    mgl64.Vec3
	lockRotation bool

	allowSleep bool
	sleepSpeed float64
	sleepTime  float64
	held       bool
	idleTime   float64

	onCollide CollisionHandler
}

var _ World = (*Space)(nil)

// NewSpace 创建物理世界
func NewSpace(cfg SpaceConfig) *Space {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 8
	}
	if cfg.MaxSubSteps <= 0 {
		cfg.MaxSubSteps = 1
	}
	s := &Space{cfg: cfg}
	s.reset()
	return s
}

func (s *Space) reset() {
	space := cp.NewSpace()
	space.Iterations = uint(s.cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: s.cfg.Gravity})
	space.SetCollisionSlop(collisionSlop)
	if s.cfg.IslandSleepTime > 0 {
		space.SleepTimeThreshold = s.cfg.IslandSleepTime
		space.IdleSpeedThreshold = s.cfg.IslandIdleSpeed
	}

	handler := space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	handler.PreSolveFunc = s.preSolve

	s.space = space
	s.bodies = nil
	s.index = make(map[BodyID]*body)
	s.accumulator = 0
	s.pending = s.pending[:0]
}

// AddBody 注册刚体
func (s *Space) AddBody(id BodyID, def BodyDef) error {
	if _, exists := s.index[id]; exists {
		return fmt.Errorf("body %d: %w", id, ErrDuplicateBody)
	}

	s.seq++
	b := &body{
		id:         id,
		seq:        s.seq,
		shape:      def.Shape,
		material:   def.Material,
		z:          def.Position.Z(),
		linDamp:    def.LinearDamping,
		angDamp:    def.AngularDamping,
		linFactor:  def.LinearFactor,
		allowSleep: def.AllowSleep,
		sleepSpeed: def.SleepSpeedLimit,
		sleepTime:  def.SleepTimeLimit,
		onCollide:  def.OnCollide,
	}
	if def.LinearFactor == (mgl64.Vec3{}) {
		b.linFactor = mgl64.Vec3{1, 1, 0}
	}
	b.lockRotation = def.AngularFactor != (mgl64.Vec3{}) && def.AngularFactor.Z() == 0

	if def.Mass <= 0 || def.Shape.Kind == ShapePlane {
		b.mode = ModeStatic
		b.cb = cp.NewStaticBody()
	} else {
		b.mode = ModeDynamic
		b.restMass = def.Mass
		b.cb = cp.NewBody(0, 0)
		b.cb.SetVelocityUpdateFunc(b.integrateVelocity)
		b.cb.SetPositionUpdateFunc(b.integratePosition)
	}
	b.cb.UserData = b
	b.cb.SetPosition(toVector(def.Position))
	b.cb.SetAngle(def.Angle)

	b.cs = newShape(b.cb, def.Shape)
	b.cs.UserData = b
	b.cs.SetCollisionType(bodyCollisionType)
	b.cs.SetFilter(cp.NewShapeFilter(uint(def.Group), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	cm := s.cfg.Materials.Lookup(def.Material, def.Material)
	// 引擎对一对形状取系数乘积，取平方根后同种材质的接触恰好得到表中的值
	b.cs.SetFriction(math.Sqrt(cm.Friction))
	b.cs.SetElasticity(math.Sqrt(cm.Restitution))
	if b.mode == ModeDynamic {
		b.cs.SetMass(def.Mass)
	}

	s.space.AddBody(b.cb)
	s.space.AddShape(b.cs)

	if b.mode == ModeDynamic {
		b.applyRotationLock()
		b.cb.SetVelocityVector(toVector(def.Velocity))
		if def.StartAsleep && def.AllowSleep {
			b.hold()
		}
	}

	s.bodies = append(s.bodies, b)
	s.index[id] = b
	return nil
}

func newShape(cb *cp.Body, shape Shape) *cp.Shape {
	switch shape.Kind {
	case ShapeSphere:
		return cp.NewCircle(cb, shape.Radius, cp.Vector{})
	case ShapeBox:
		return cp.NewBox(cb, shape.HalfExtents.X()*2, shape.HalfExtents.Y()*2, 0)
	}
	return cp.NewBox2(cb, cp.BB{L: -planeHalfWidth, B: -planeDepth, R: planeHalfWidth, T: 0}, 0)
}

// RemoveBody 移除刚体
func (s *Space) RemoveBody(id BodyID) {
	b, ok := s.index[id]
	if !ok {
		return
	}
	s.space.RemoveShape(b.cs)
	s.space.RemoveBody(b.cb)
	delete(s.index, id)
	s.bodies = slices.DeleteFunc(s.bodies, func(o *body) bool { return o.id == id })
}

// HasBody 刚体是否已注册
func (s *Space) HasBody(id BodyID) bool {
	_, ok := s.index[id]
	return ok
}

// Body 查询刚体状态
func (s *Space) Body(id BodyID) (BodyState, bool) {
	b, ok := s.index[id]
	if !ok {
		return BodyState{}, false
	}
	st := BodyState{
		Position: fromVector(b.cb.Position(), b.z),
		Angle:    b.cb.Angle(),
		Mode:     b.mode,
		Asleep:   b.asleep(),
		Shape:    b.shape,
		Material: b.material,
	}
	if b.mode != ModeStatic && !b.held {
		st.Velocity = fromVector(b.cb.Velocity(), 0)
		st.AngularVelocity = b.cb.AngularVelocity()
	}
	if b.mode == ModeDynamic {
		st.Mass = b.cb.Mass()
	}
	return st, true
}

// ApplyImpulse 施加冲量（仅对动力学刚体有效，会唤醒刚体）
func (s *Space) ApplyImpulse(id BodyID, impulse mgl64.Vec3, worldPoint *mgl64.Vec3) {
	b, ok := s.index[id]
	if !ok || b.mode != ModeDynamic {
		return
	}
	b.wake()
	point := b.cb.Position()
	if worldPoint != nil {
		point = toVector(*worldPoint)
	}
	b.cb.ApplyImpulseAtWorldPoint(toVector(mulFactor(impulse, b.linFactor)), point)
}

// SetPosition 直接设置位置并清零速度
func (s *Space) SetPosition(id BodyID, pos mgl64.Vec3) {
	b, ok := s.index[id]
	if !ok {
		return
	}
	b.z = pos.Z()
	b.idleTime = 0
	if b.mode == ModeStatic {
		// 静态形状的包围盒只在加入时计算
		s.space.RemoveShape(b.cs)
		b.cb.SetPosition(toVector(pos))
		s.space.AddShape(b.cs)
		return
	}
	b.cb.SetPosition(toVector(pos))
	b.cb.SetVelocity(0, 0)
	b.cb.SetAngularVelocity(0)
}

// SetVelocity 设置线速度，动力学刚体会被唤醒
func (s *Space) SetVelocity(id BodyID, vel mgl64.Vec3) {
	b, ok := s.index[id]
	if !ok || b.mode == ModeStatic {
		return
	}
	if b.mode == ModeDynamic {
		b.wake()
	}
	b.cb.SetVelocityVector(toVector(vel))
}

// SetMass 修改刚体质量，运动学刚体在切回动力学模式时生效
func (s *Space) SetMass(id BodyID, mass float64) {
	b, ok := s.index[id]
	if !ok || mass <= 0 {
		return
	}
	b.restMass = mass
	if b.mode == ModeStatic {
		return
	}
	b.cs.SetMass(mass)
	b.applyRotationLock()
}

// MakeKinematic 切换为运动学模式
func (s *Space) MakeKinematic(id BodyID) {
	b, ok := s.index[id]
	if !ok || b.mode == ModeStatic {
		return
	}
	if b.mode == ModeDynamic {
		b.restMass = b.cb.Mass()
	}
	b.mode = ModeKinematic
	b.held = false
	b.idleTime = 0
	b.cb.SetType(cp.BODY_KINEMATIC)
}

// MakeDynamic 切换回动力学模式，mass <= 0 时恢复切换前的质量
func (s *Space) MakeDynamic(id BodyID, mass float64) {
	b, ok := s.index[id]
	if !ok || b.mode == ModeStatic {
		return
	}
	if mass <= 0 {
		mass = b.restMass
	}
	if mass <= 0 {
		log.Printf("[Physics] body %d has no mass to restore, keeping it kinematic", id)
		return
	}
	b.mode = ModeDynamic
	b.restMass = mass
	b.cs.SetMass(mass)
	b.cb.SetType(cp.BODY_DYNAMIC)
	b.applyRotationLock()
	b.wake()
}

// WakeUp 唤醒刚体
func (s *Space) WakeUp(id BodyID) {
	if b, ok := s.index[id]; ok && b.mode == ModeDynamic {
		b.wake()
	}
}

// Sleep 强制刚体休眠
func (s *Space) Sleep(id BodyID) {
	if b, ok := s.index[id]; ok && b.mode == ModeDynamic {
		b.hold()
	}
}

// Clear 移除全部刚体并清空累积时间
func (s *Space) Clear() {
	s.reset()
}

// BodyCount 已注册刚体数量
func (s *Space) BodyCount() int {
	return len(s.bodies)
}

func (b *body) asleep() bool {
	return b.mode == ModeDynamic && (b.held || b.cb.IsSleeping())
}

func (b *body) awakeDynamic() bool {
	return b.mode == ModeDynamic && !b.asleep()
}

func (b *body) wake() {
	b.held = false
	b.idleTime = 0
	b.cb.Activate()
}

func (b *body) hold() {
	b.held = true
	b.idleTime = 0
	b.cb.SetVelocity(0, 0)
	b.cb.SetAngularVelocity(0)
}

// applyRotationLock 锁定旋转的刚体使用无限转动惯量，每次重新累积质量后都要再设置一次
func (b *body) applyRotationLock() {
	if b.lockRotation && b.mode == ModeDynamic {
		b.cb.SetMoment(math.Inf(1))
	}
}

// integrateVelocity 在引擎的速度积分上叠加逐刚体阻尼和轴向锁定
//
// 只通过 UpdateVelocity 写回速度：其它 setter 会重置引擎的静止计时，使整组休眠永远无法触发。
// UpdateVelocity 对线速度和角速度使用同一个阻尼系数，这里取角阻尼，
// 再反推出一个等效重力让线速度落在期望值上。
func (b *body) integrateVelocity(cb *cp.Body, gravity cp.Vector, damping, dt float64) {
	if cb.GetType() != cp.BODY_DYNAMIC {
		return
	}
	if b.held {
		cb.UpdateVelocity(cp.Vector{}, 0, dt)
		return
	}
	if dt <= 0 {
		return
	}
	v := cb.Velocity()
	accel := gravity.Add(cb.Force().Mult(1 / cb.Mass()))
	lin := damping * math.Pow(1-b.linDamp, dt)
	ang := damping * math.Pow(1-b.angDamp, dt)
	want := v.Mult(lin).Add(accel.Mult(dt))
	want = cp.Vector{X: want.X * b.linFactor.X(), Y: want.Y * b.linFactor.Y()}
	g := want.Sub(v.Mult(ang)).Mult(1 / dt).Sub(cb.Force().Mult(1 / cb.Mass()))
	cb.UpdateVelocity(g, ang, dt)
}

// integratePosition 单独休眠的刚体不移动，只清掉求解器留下的偏置速度
func (b *body) integratePosition(cb *cp.Body, dt float64) {
	if b.held {
		cp.BodyUpdatePosition(cb, 0)
		return
	}
	cp.BodyUpdatePosition(cb, dt)
}

func toVector(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Y()}
}

func fromVector(v cp.Vector, z float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, z}
}

func mulFactor(v, factor mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0] * factor[0], v[1] * factor[1], v[2] * factor[2]}
}

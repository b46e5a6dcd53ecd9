package systems

import (
	"log"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// SlingshotSystem 弹弓发射控制
//
// 状态：空 → 已装填 → 拖拽中 → 释放后回到空。
// 装填时小鸟切换为运动学刚体，直接跟随指针；释放时切回动力学刚体并返回发射速度，
// 发射本身（计数、锁定、状态切换）由 LevelSystem 负责。
type SlingshotSystem struct {
	ctx       *Context
	slingshot ecs.EntityID
}

// NewSlingshotSystem 创建弹弓系统
func NewSlingshotSystem(ctx *Context) *SlingshotSystem {
	return &SlingshotSystem{ctx: ctx}
}

// Attach 绑定当前关卡的弹弓实体
func (s *SlingshotSystem) Attach(slingshot ecs.EntityID) {
	s.slingshot = slingshot
}

// Detach 解除绑定（关卡卸载）
func (s *SlingshotSystem) Detach() {
	s.slingshot = 0
}

func (s *SlingshotSystem) component() (*components.SlingshotComponent, bool) {
	if s.slingshot == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.SlingshotComponent](s.ctx.EntityManager, s.slingshot)
}

// LoadedBird 当前装填的小鸟，0 表示空
func (s *SlingshotSystem) LoadedBird() ecs.EntityID {
	sc, ok := s.component()
	if !ok {
		return 0
	}
	return sc.LoadedBird
}

// IsDragging 是否正在拖拽
func (s *SlingshotSystem) IsDragging() bool {
	sc, ok := s.component()
	return ok && sc.State == components.DragDragging
}

// RestPoint 小鸟静止位置
func (s *SlingshotSystem) RestPoint() mgl64.Vec3 {
	sc, ok := s.component()
	if !ok {
		return mgl64.Vec3{}
	}
	return sc.RestPoint
}

// LoadBird 装填小鸟
// 已装填其他小鸟时拒绝；装填同一只小鸟视为重新放回静止点
func (s *SlingshotSystem) LoadBird(bird ecs.EntityID) bool {
	sc, ok := s.component()
	if !ok {
		return false
	}
	if sc.LoadedBird != 0 && sc.LoadedBird != bird {
		log.Printf("[SlingshotSystem] Bird %d already loaded, rejecting %d", sc.LoadedBird, bird)
		return false
	}
	em := s.ctx.EntityManager
	body, ok := ecs.GetComponent[*components.BodyComponent](em, bird)
	if !ok {
		return false
	}

	sc.LoadedBird = bird
	sc.State = components.DragIdle
	sc.DragOffset = mgl64.Vec3{}

	s.ctx.World.SetPosition(body.Body, sc.RestPoint)
	s.ctx.World.MakeKinematic(body.Body)

	if b, ok := ecs.GetComponent[*components.BirdComponent](em, bird); ok {
		b.Status = components.BirdLoaded
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, bird); ok {
		vis.Visible = true
		vis.Opacity = 1
		vis.Scale = 1
	}
	if transform, ok := s.ctx.transformOf(bird); ok {
		transform.Position = sc.RestPoint
		transform.Velocity = mgl64.Vec3{}
		transform.Angle = 0
		transform.Asleep = false
	}
	return true
}

// CanGrab 指针是否可以抓取已装填的小鸟
func (s *SlingshotSystem) CanGrab(pointer mgl64.Vec3) bool {
	sc, ok := s.component()
	if !ok || sc.LoadedBird == 0 || sc.State != components.DragIdle {
		return false
	}
	return pointer.Sub(sc.RestPoint).Len() <= s.ctx.Config.Slingshot.GrabRadius
}

// StartDrag 开始拖拽，仅在已装填且小鸟未发射时生效
func (s *SlingshotSystem) StartDrag() bool {
	sc, ok := s.component()
	if !ok || sc.LoadedBird == 0 || sc.State == components.DragDragging {
		return false
	}
	if b, ok := ecs.GetComponent[*components.BirdComponent](s.ctx.EntityManager, sc.LoadedBird); ok && b.IsLaunched() {
		return false
	}
	sc.State = components.DragDragging
	sc.DragOffset = mgl64.Vec3{}
	return true
}

// UpdateDrag 更新拖拽点
// 偏移长度不超过最大拉距且不能向前推，结果直接写入运动学刚体
func (s *SlingshotSystem) UpdateDrag(pointer mgl64.Vec3) (mgl64.Vec3, bool) {
	sc, ok := s.component()
	if !ok || sc.LoadedBird == 0 || sc.State != components.DragDragging {
		return mgl64.Vec3{}, false
	}
	sc.DragOffset = ClampDrag(pointer.Sub(sc.RestPoint), s.ctx.Config.Slingshot.MaxPull)
	dragPoint := sc.DragPoint()

	if body, ok := ecs.GetComponent[*components.BodyComponent](s.ctx.EntityManager, sc.LoadedBird); ok {
		s.ctx.World.SetPosition(body.Body, dragPoint)
	}
	if transform, ok := s.ctx.transformOf(sc.LoadedBird); ok {
		transform.Position = dragPoint
	}
	return dragPoint, true
}

// CancelDrag 放弃拖拽，小鸟回到静止点，仍保持装填
func (s *SlingshotSystem) CancelDrag() bool {
	sc, ok := s.component()
	if !ok || sc.State != components.DragDragging {
		return false
	}
	sc.State = components.DragIdle
	sc.DragOffset = mgl64.Vec3{}
	if sc.LoadedBird == 0 {
		return true
	}
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.ctx.EntityManager, sc.LoadedBird); ok {
		s.ctx.World.SetPosition(body.Body, sc.RestPoint)
	}
	if transform, ok := s.ctx.transformOf(sc.LoadedBird); ok {
		transform.Position = sc.RestPoint
	}
	return true
}

// EndDrag 释放小鸟
// 小鸟切回动力学刚体，返回小鸟和发射速度；调用方负责发射
func (s *SlingshotSystem) EndDrag() (ecs.EntityID, mgl64.Vec3, bool) {
	sc, ok := s.component()
	if !ok || sc.LoadedBird == 0 || sc.State != components.DragDragging {
		return 0, mgl64.Vec3{}, false
	}
	bird := sc.LoadedBird
	velocity := LaunchVelocity(sc.RestPoint, sc.DragPoint(), s.ctx.Config.Slingshot.Force)

	if body, ok := ecs.GetComponent[*components.BodyComponent](s.ctx.EntityManager, bird); ok {
		s.ctx.World.MakeDynamic(body.Body, body.Mass)
	}

	sc.LoadedBird = 0
	sc.State = components.DragIdle
	sc.DragOffset = mgl64.Vec3{}
	return bird, velocity, true
}

// CalculateTrajectory 预测当前拖拽点的弹道，仅供显示
func (s *SlingshotSystem) CalculateTrajectory() []mgl64.Vec3 {
	sc, ok := s.component()
	if !ok || sc.State != components.DragDragging {
		return nil
	}
	cfg := s.ctx.Config
	start := sc.DragPoint()
	velocity := LaunchVelocity(sc.RestPoint, start, cfg.Slingshot.Force)
	return PredictTrajectory(start, velocity, cfg.Physics.Gravity, cfg.Slingshot.TrajectoryTimeStep, cfg.Slingshot.TrajectorySteps)
}

// Reset 清空弹弓状态（不改变小鸟刚体）
func (s *SlingshotSystem) Reset() {
	sc, ok := s.component()
	if !ok {
		return
	}
	sc.LoadedBird = 0
	sc.State = components.DragIdle
	sc.DragOffset = mgl64.Vec3{}
}

// ClampDrag 限制拖拽偏移：长度不超过 maxPull，X 分量不为正
func ClampDrag(offset mgl64.Vec3, maxPull float64) mgl64.Vec3 {
	if l := offset.Len(); l > maxPull {
		offset = offset.Mul(maxPull / l)
	}
	if offset[0] > 0 {
		offset[0] = 0
	}
	return offset
}

// LaunchVelocity 发射速度 = (静止点 - 拖拽点) × 力度系数
func LaunchVelocity(rest, drag mgl64.Vec3, force float64) mgl64.Vec3 {
	return rest.Sub(drag).Mul(force)
}

// PredictTrajectory 以固定步长预测弹道
// 先记录当前点再积分，落到地面以下时提前结束
func PredictTrajectory(start, velocity mgl64.Vec3, gravity, dt float64, steps int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, 0, steps)
	pos, vel := start, velocity
	for i := 0; i < steps; i++ {
		points = append(points, pos)
		vel[1] += gravity * dt
		pos = pos.Add(vel.Mul(dt))
		if pos.Y() < 0 {
			break
		}
	}
	return points
}

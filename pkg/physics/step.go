package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Step 推进模拟
//
// dt 先被限制在 MaxFrameDelta 以内，再按固定子步长消耗累积时间，
// 每次最多执行 MaxSubSteps 个子步；达到上限时丢弃多余的整步，只保留不足一步的余数。
// 碰撞回调在所有子步完成后按发生顺序派发，已被移除的刚体不再收到回调。
func (s *Space) Step(dt float64) int {
	if dt <= 0 {
		return 0
	}
	if s.cfg.MaxFrameDelta > 0 && dt > s.cfg.MaxFrameDelta {
		dt = s.cfg.MaxFrameDelta
	}

	h := s.cfg.TimeStep
	s.accumulator += dt
	steps := 0
	for s.accumulator >= h && steps < s.cfg.MaxSubSteps {
		s.space.Step(h)
		s.updateSleep(h)
		s.accumulator -= h
		steps++
	}
	if s.accumulator >= h {
		s.accumulator = math.Mod(s.accumulator, h)
	}

	s.dispatchEvents()
	return steps
}

// updateSleep 逐刚体休眠判定
func (s *Space) updateSleep(h float64) {
	for _, b := range s.bodies {
		if !b.awakeDynamic() {
			continue
		}
		if !b.allowSleep {
			// 同时阻止引擎把它所在的一组刚体休眠
			b.cb.Activate()
			continue
		}
		v := b.cb.Velocity()
		w := b.cb.AngularVelocity()
		if v.LengthSq()+w*w < b.sleepSpeed*b.sleepSpeed {
			b.idleTime += h
			if b.idleTime > b.sleepTime {
				b.hold()
			}
		} else {
			b.idleTime = 0
		}
	}
}

// preSolve 每个子步对每对接触的形状调用一次
// 先唤醒被快速刚体碰到的单独休眠刚体，再记录碰撞事件
func (s *Space) preSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	ba, bb := arb.Bodies()
	a, okA := ba.UserData.(*body)
	b, okB := bb.UserData.(*body)
	if !okA || !okB {
		return true
	}

	wakeOnImpact(a, b)
	wakeOnImpact(b, a)

	if !a.awakeDynamic() && !b.awakeDynamic() {
		return true
	}
	if a.onCollide == nil && b.onCollide == nil {
		return true
	}

	n := arb.Normal()
	set := arb.ContactPointSet()
	point := ba.Position()
	if set.Count > 0 {
		point = set.Points[0].PointA
	}
	vn := bb.VelocityAtWorldPoint(point).Sub(ba.VelocityAtWorldPoint(point)).Dot(n)

	first, second := a, b
	if b.seq < a.seq {
		first, second = b, a
		n = n.Neg()
	}
	if first.onCollide != nil {
		s.pending = append(s.pending, CollisionEvent{
			Self:           first.id,
			Other:          second.id,
			ImpactVelocity: vn,
			Normal:         fromVector(n, 0),
			Point:          fromVector(point, first.z),
		})
	}
	if second.onCollide != nil {
		s.pending = append(s.pending, CollisionEvent{
			Self:           second.id,
			Other:          first.id,
			ImpactVelocity: vn,
			Normal:         fromVector(n.Neg(), 0),
			Point:          fromVector(point, second.z),
		})
	}
	return true
}

// wakeOnImpact 单独休眠的刚体被速度足够大的非静态刚体碰到时解除冻结
func wakeOnImpact(sleeper, other *body) {
	if sleeper.mode != ModeDynamic || !sleeper.held || !sleeper.allowSleep {
		return
	}
	if other.mode == ModeStatic || other.asleep() {
		return
	}
	v := other.cb.Velocity()
	w := other.cb.AngularVelocity()
	if v.LengthSq()+w*w >= other.sleepSpeed*other.sleepSpeed*2 {
		// 引擎正在求解，不能调用会改动休眠图的 setter
		sleeper.held = false
		sleeper.idleTime = 0
	}
}

func (s *Space) dispatchEvents() {
	if len(s.pending) == 0 {
		return
	}
	events := s.pending
	s.pending = nil
	for _, e := range events {
		b, ok := s.index[e.Self]
		if !ok || b.onCollide == nil {
			continue
		}
		b.onCollide(e)
	}
	s.pending = events[:0]
}

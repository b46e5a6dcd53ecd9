package systems

import (
	"math"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
)

// DamageSystem 根据物理结果对猪和方块造成伤害
//
// 伤害来源：
//   - 碰撞事件：按法向冲击速度线性计算，单次有上限（猪默认开启，方块可配置）
//   - 自身速度：两档固定伤害，近似没有碰撞监听时的撞击
//   - 掉出世界：低于地板高度直接击败
//
// 碰撞事件在物理步进期间由回调收集，Update 时统一结算。
type DamageSystem struct {
	ctx     *Context
	pending []physics.CollisionEvent
}

// NewDamageSystem 创建伤害系统
func NewDamageSystem(ctx *Context) *DamageSystem {
	return &DamageSystem{ctx: ctx}
}

// OnCollision 物理碰撞回调，注册到猪和方块的刚体上
func (s *DamageSystem) OnCollision(ev physics.CollisionEvent) {
	s.pending = append(s.pending, ev)
}

// Reset 丢弃尚未结算的碰撞事件（关卡卸载时调用）
func (s *DamageSystem) Reset() {
	s.pending = s.pending[:0]
}

// Update 结算本帧伤害
func (s *DamageSystem) Update(deltaTime float64) {
	em := s.ctx.EntityManager

	for _, ev := range s.pending {
		id := ecs.EntityID(ev.Self)
		d, ok := ecs.GetComponent[*components.DestructibleComponent](em, id)
		if !ok {
			continue
		}
		rules := s.rulesFor(id)
		if !rules.CollisionEnabled {
			continue
		}
		if dmg := ImpactDamage(ev.ImpactVelocity, rules); dmg > 0 {
			d.TakeDamage(dmg)
		}
	}
	s.pending = s.pending[:0]

	floorY := s.ctx.Config.Bounds.FloorY
	for _, id := range ecs.GetEntitiesWith2[*components.DestructibleComponent, *components.TransformComponent](em) {
		d, _ := ecs.GetComponent[*components.DestructibleComponent](em, id)
		if d.Defeated {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		if transform.Position.Y() < floorY {
			d.Defeat()
			continue
		}
		if dmg := VelocityDamage(transform.Velocity.Len(), s.rulesFor(id)); dmg > 0 {
			d.TakeDamage(dmg)
		}
	}
}

func (s *DamageSystem) rulesFor(id ecs.EntityID) config.DestructibleDamageConfig {
	if ecs.HasComponent[*components.PigComponent](s.ctx.EntityManager, id) {
		return s.ctx.Config.Damage.Pig
	}
	return s.ctx.Config.Damage.Block
}

// ImpactDamage 碰撞伤害：(|冲击速度| - 阈值) × 倍率，不超过单次上限
func ImpactDamage(impactVelocity float64, rules config.DestructibleDamageConfig) float64 {
	speed := math.Abs(impactVelocity)
	if speed <= rules.ImpactThreshold {
		return 0
	}
	return math.Min((speed-rules.ImpactThreshold)*rules.ImpactMultiplier, rules.MaxImpactDamage)
}

// VelocityDamage 速度伤害：超过高档阈值取高档伤害，否则超过低档阈值取低档伤害
// HighSpeed 为 0 表示没有高档
func VelocityDamage(speed float64, rules config.DestructibleDamageConfig) float64 {
	if rules.HighSpeed > 0 && speed > rules.HighSpeed {
		return rules.HighDamage
	}
	if speed > rules.LowSpeed {
		return rules.LowDamage
	}
	return 0
}

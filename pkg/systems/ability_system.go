package systems

import (
	"log"
	"math"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/entities"
	"github.com/go-gl/mathgl/mgl64"
)

// AbilityResult 技能触发结果
type AbilityResult struct {
	Kind     config.AbilityKind
	Bird     ecs.EntityID
	Position mgl64.Vec3
	// Spawned 分裂产生的小鸟，按角度从小到大
	Spawned []ecs.EntityID
	// Affected 爆炸范围内受到冲量的实体
	Affected []ecs.EntityID
	// Velocity 加速后的速度
	Velocity mgl64.Vec3
}

// AbilitySystem 小鸟技能
//
// 每只小鸟的技能最多触发一次，只有飞行中的小鸟可以触发。
type AbilitySystem struct {
	ctx *Context
}

// NewAbilitySystem 创建技能系统
func NewAbilitySystem(ctx *Context) *AbilitySystem {
	return &AbilitySystem{ctx: ctx}
}

// Activate 触发小鸟技能
// 技能已用过、小鸟不在飞行中或没有技能时返回 nil
func (s *AbilitySystem) Activate(bird ecs.EntityID) *AbilityResult {
	em := s.ctx.EntityManager
	b, ok := ecs.GetComponent[*components.BirdComponent](em, bird)
	if !ok || !b.ConsumeAbility() {
		return nil
	}
	transform, ok := s.ctx.transformOf(bird)
	if !ok {
		return nil
	}

	result := &AbilityResult{Kind: b.Ability, Bird: bird, Position: transform.Position}
	switch b.Ability {
	case config.AbilitySplit:
		s.split(bird, transform.Velocity, result)
	case config.AbilityExplode:
		s.explode(bird, transform.Position, result)
	case config.AbilityBoost:
		s.boost(bird, transform, result)
	}
	return result
}

// split 分裂：原始小鸟退场并隐藏，刚体保留
func (s *AbilitySystem) split(bird ecs.EntityID, velocity mgl64.Vec3, result *AbilityResult) {
	cfg := s.ctx.Config
	for _, v := range SplitVelocities(velocity, cfg.Abilities.Split.Count, cfg.Abilities.Split.SpreadDegrees) {
		id, err := entities.NewDerivedBird(s.ctx.EntityManager, s.ctx.World, cfg, bird, v)
		if err != nil {
			log.Printf("[AbilitySystem] Failed to spawn split bird: %v", err)
			continue
		}
		result.Spawned = append(result.Spawned, id)
	}
	s.retire(bird)
}

// explode 对爆炸半径内的方块和猪施加径向冲量和固定伤害
func (s *AbilitySystem) explode(bird ecs.EntityID, center mgl64.Vec3, result *AbilityResult) {
	em := s.ctx.EntityManager
	cfg := s.ctx.Config.Abilities.Explode

	for _, id := range ecs.GetEntitiesWith2[*components.DestructibleComponent, *components.BodyComponent](em) {
		transform, ok := s.ctx.transformOf(id)
		if !ok {
			continue
		}
		impulse, inside := ExplosionImpulse(center, transform.Position, cfg.Radius, cfg.Force)
		if !inside {
			continue
		}
		body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
		s.ctx.World.ApplyImpulse(body.Body, impulse, nil)

		damage := cfg.BlockDamage
		if ecs.HasComponent[*components.PigComponent](em, id) {
			damage = cfg.PigDamage
		}
		d, _ := ecs.GetComponent[*components.DestructibleComponent](em, id)
		d.TakeDamage(damage)
		result.Affected = append(result.Affected, id)
	}
	s.retire(bird)
}

// boost 保持方向，把速度调整到固定值
func (s *AbilitySystem) boost(bird ecs.EntityID, transform *components.TransformComponent, result *AbilityResult) {
	v := transform.Velocity
	if v.Len() == 0 {
		result.Velocity = v
		return
	}
	v = v.Normalize().Mul(s.ctx.Config.Abilities.Boost.Speed)
	if body, ok := ecs.GetComponent[*components.BodyComponent](s.ctx.EntityManager, bird); ok {
		s.ctx.World.SetVelocity(body.Body, v)
	}
	transform.Velocity = v
	result.Velocity = v
}

func (s *AbilitySystem) retire(bird ecs.EntityID) {
	em := s.ctx.EntityManager
	if b, ok := ecs.GetComponent[*components.BirdComponent](em, bird); ok {
		b.Deactivate()
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, bird); ok {
		vis.Hide()
	}
}

// SplitAngles 分裂角度（弧度），以 0 为中心等距排列
// 第 i 只的偏移为 (i - (n-1)/2) × spread
func SplitAngles(count int, spreadDegrees float64) []float64 {
	angles := make([]float64, count)
	center := float64(count-1) / 2
	for i := range angles {
		angles[i] = (float64(i) - center) * spreadDegrees * math.Pi / 180
	}
	return angles
}

// SplitVelocities 把速度在游戏平面内按分裂角度旋转
func SplitVelocities(velocity mgl64.Vec3, count int, spreadDegrees float64) []mgl64.Vec3 {
	angles := SplitAngles(count, spreadDegrees)
	out := make([]mgl64.Vec3, len(angles))
	planar := velocity.Vec2()
	for i, a := range angles {
		r := mgl64.Rotate2D(a).Mul2x1(planar)
		out[i] = mgl64.Vec3{r.X(), r.Y(), velocity.Z()}
	}
	return out
}

// ExplosionImpulse 计算爆炸冲量
// 距离小于半径时返回背离爆心、大小为 force × (1 - d/r) 的冲量
func ExplosionImpulse(center, target mgl64.Vec3, radius, force float64) (mgl64.Vec3, bool) {
	offset := target.Sub(center)
	d := offset.Len()
	if d >= radius {
		return mgl64.Vec3{}, false
	}
	dir := mgl64.Vec3{0, 1, 0}
	if d > 1e-9 {
		dir = offset.Mul(1 / d)
	}
	return dir.Mul(force * (1 - d/radius)), true
}

package entities

import (
	"fmt"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// NewBird 创建等待装填的小鸟
//
// 小鸟在等待区处于休眠且不可见，装填时由弹弓切换为运动学模式。
// 同一次发射（含分裂产物）共享碰撞组，互不碰撞。
//
// 参数:
//   - em: 实体管理器
//   - world: 物理世界
//   - gp: 玩法配置（小鸟类型和刚体参数）
//   - spawn: 关卡中的小鸟描述
func NewBird(em *ecs.EntityManager, world physics.World, gp *config.GameplayConfig, spawn config.BirdSpawn) (ecs.EntityID, error) {
	if err := checkDeps(em, world); err != nil {
		return 0, err
	}
	birdType, ok := gp.Birds[spawn.Type]
	if !ok {
		return 0, fmt.Errorf("unknown bird type %q", spawn.Type)
	}

	id := em.CreateEntity()
	def := birdBodyDef(gp, birdType.Radius, gp.BirdBody.Mass, uint32(id))
	def.Position = spawn.Position.ToVec()
	def.StartAsleep = true
	if err := attachBody(em, world, id, def); err != nil {
		return 0, err
	}

	ecs.AddComponent(em, id, &components.BirdComponent{
		Type:    spawn.Type,
		Ability: birdType.Ability,
		Radius:  birdType.Radius,
		Status:  components.BirdWaiting,
		Flight:  id,
	})
	ecs.AddComponent(em, id, components.NewVisibility(false))
	return id, nil
}

// NewDerivedBird 创建分裂产生的小鸟
// 出生在原始小鸟的位置，立即处于已发射、技能已用的飞行状态
func NewDerivedBird(em *ecs.EntityManager, world physics.World, gp *config.GameplayConfig, parent ecs.EntityID, velocity mgl64.Vec3) (ecs.EntityID, error) {
	if err := checkDeps(em, world); err != nil {
		return 0, err
	}
	parentBird, ok := ecs.GetComponent[*components.BirdComponent](em, parent)
	if !ok {
		return 0, fmt.Errorf("entity %d is not a bird", parent)
	}
	parentBody, ok := ecs.GetComponent[*components.BodyComponent](em, parent)
	if !ok {
		return 0, fmt.Errorf("bird %d has no body", parent)
	}
	state, ok := world.Body(parentBody.Body)
	if !ok {
		return 0, fmt.Errorf("bird %d body is not registered", parent)
	}

	split := gp.Abilities.Split
	radius := parentBird.Radius * split.Scale

	id := em.CreateEntity()
	def := birdBodyDef(gp, radius, split.Mass, uint32(parentBird.Flight))
	def.Position = state.Position
	def.Velocity = velocity
	if err := attachBody(em, world, id, def); err != nil {
		return 0, err
	}

	ecs.AddComponent(em, id, &components.BirdComponent{
		Type:        parentBird.Type,
		Ability:     parentBird.Ability,
		Radius:      radius,
		Status:      components.BirdLaunchedActive,
		AbilityUsed: true,
		Flight:      parentBird.Flight,
		Derived:     true,
	})
	vis := components.NewVisibility(true)
	vis.Scale = split.Scale
	ecs.AddComponent(em, id, vis)
	return id, nil
}

func birdBodyDef(gp *config.GameplayConfig, radius, mass float64, group uint32) physics.BodyDef {
	return physics.BodyDef{
		Shape:           physics.Sphere(radius),
		Material:        gp.BirdBody.Material,
		Mass:            mass,
		LinearDamping:   gp.BirdBody.LinearDamping,
		AngularDamping:  gp.BirdBody.AngularDamping,
		AllowSleep:      true,
		SleepSpeedLimit: gp.BirdBody.SleepSpeed,
		SleepTimeLimit:  gp.BirdBody.SleepTime,
		Group:           group,
	}
}

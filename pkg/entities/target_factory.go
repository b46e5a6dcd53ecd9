package entities

import (
	"fmt"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
)

// NewPig 创建猪
// onCollide 接收该刚体的碰撞事件，可为 nil
func NewPig(em *ecs.EntityManager, world physics.World, gp *config.GameplayConfig, spawn config.PigSpawn, onCollide physics.CollisionHandler) (ecs.EntityID, error) {
	if err := checkDeps(em, world); err != nil {
		return 0, err
	}
	size := spawn.Size
	if size <= 0 {
		size = gp.Pig.DefaultSize
	}

	id := em.CreateEntity()
	err := attachBody(em, world, id, physics.BodyDef{
		Shape:           physics.Sphere(size),
		Material:        gp.Pig.Material,
		Mass:            gp.Pig.Mass,
		Position:        spawn.Position.ToVec(),
		LinearDamping:   gp.Pig.LinearDamping,
		AngularDamping:  gp.Pig.AngularDamping,
		AllowSleep:      true,
		SleepSpeedLimit: defaultSleepSpeed,
		SleepTimeLimit:  defaultSleepTime,
		OnCollide:       onCollide,
	})
	if err != nil {
		return 0, err
	}

	ecs.AddComponent(em, id, &components.PigComponent{Size: size})
	ecs.AddComponent(em, id, components.NewDestructible(gp.Pig.Health))
	ecs.AddComponent(em, id, components.NewVisibility(true))
	return id, nil
}

// NewBlock 创建建筑方块
//
// 质量 = 体积 × 材质系数。方块默认以休眠状态出生，
// 避免关卡开始时堆叠结构在求解器里抖动。
func NewBlock(em *ecs.EntityManager, world physics.World, gp *config.GameplayConfig, spawn config.StructureSpawn, onCollide physics.CollisionHandler) (ecs.EntityID, error) {
	if err := checkDeps(em, world); err != nil {
		return 0, err
	}
	blockType, ok := gp.Blocks[spawn.Type]
	if !ok {
		return 0, fmt.Errorf("unknown block type %q", spawn.Type)
	}
	material, ok := gp.Materials[blockType.Material]
	if !ok {
		return 0, fmt.Errorf("block type %q: unknown material %q", spawn.Type, blockType.Material)
	}

	id := em.CreateEntity()
	err := attachBody(em, world, id, physics.BodyDef{
		Shape:           physics.Box(blockType.Width, blockType.Height, blockType.Depth),
		Material:        blockType.Material,
		Mass:            blockType.Volume() * material.MassFactor,
		Position:        spawn.Position.ToVec(),
		Angle:           spawn.Rotation,
		LinearDamping:   gp.BlockBody.LinearDamping,
		AngularDamping:  gp.BlockBody.AngularDamping,
		AllowSleep:      true,
		SleepSpeedLimit: gp.BlockBody.SleepSpeed,
		SleepTimeLimit:  gp.BlockBody.SleepTime,
		StartAsleep:     gp.BlockBody.StartAsleep,
		OnCollide:       onCollide,
	})
	if err != nil {
		return 0, err
	}

	ecs.AddComponent(em, id, &components.BlockComponent{
		Type:     spawn.Type,
		Material: blockType.Material,
		Width:    blockType.Width,
		Height:   blockType.Height,
		Depth:    blockType.Depth,
	})
	ecs.AddComponent(em, id, components.NewDestructible(blockType.Health))
	ecs.AddComponent(em, id, components.NewVisibility(true))
	return id, nil
}

package entities

import (
	"fmt"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
)

// cannon.js 默认的休眠阈值，用于没有单独配置的刚体
const (
	defaultSleepSpeed = 0.1
	defaultSleepTime  = 1.0
)

func checkDeps(em *ecs.EntityManager, world physics.World) error {
	if em == nil {
		return fmt.Errorf("entity manager cannot be nil")
	}
	if world == nil {
		return fmt.Errorf("physics world cannot be nil")
	}
	return nil
}

// attachBody 以实体ID注册刚体并挂上 Body/Transform 组件
// 注册失败时销毁实体
func attachBody(em *ecs.EntityManager, world physics.World, id ecs.EntityID, def physics.BodyDef) error {
	if err := world.AddBody(physics.BodyID(id), def); err != nil {
		em.DestroyEntity(id)
		return fmt.Errorf("failed to add body for entity %d: %w", id, err)
	}
	ecs.AddComponent(em, id, &components.BodyComponent{
		Body:     physics.BodyID(id),
		Shape:    def.Shape,
		Material: def.Material,
		Mass:     def.Mass,
	})
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: def.Position,
		Angle:    def.Angle,
		Velocity: def.Velocity,
		Asleep:   def.StartAsleep && def.AllowSleep,
	})
	return nil
}

package entities

import (
	"fmt"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// NewGround 创建 y=0 处的静态地面
func NewGround(em *ecs.EntityManager, world physics.World) (ecs.EntityID, error) {
	if err := checkDeps(em, world); err != nil {
		return 0, err
	}
	id := em.CreateEntity()
	if err := attachBody(em, world, id, physics.BodyDef{
		Shape:    physics.Plane(),
		Material: config.MaterialGround,
	}); err != nil {
		return 0, err
	}
	ecs.AddComponent(em, id, &components.GroundComponent{})
	return id, nil
}

// NewSlingshot 创建弹弓，弹弓本身没有刚体
func NewSlingshot(em *ecs.EntityManager, cfg config.SlingshotConfig, base mgl64.Vec3) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SlingshotComponent{
		Base:      base,
		RestPoint: base.Add(cfg.RestOffset.ToVec()),
	})
	ecs.AddComponent(em, id, &components.TransformComponent{Position: base})
	ecs.AddComponent(em, id, components.NewVisibility(true))
	return id, nil
}

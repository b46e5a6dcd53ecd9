package systems

import (
	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/ecs"
)

// BodySyncSystem 把物理引擎中的刚体状态复制到 TransformComponent
// 在物理步进之后、玩法系统之前运行
type BodySyncSystem struct {
	ctx *Context
}

// NewBodySyncSystem 创建同步系统
func NewBodySyncSystem(ctx *Context) *BodySyncSystem {
	return &BodySyncSystem{ctx: ctx}
}

// Update 同步所有带刚体的实体
func (s *BodySyncSystem) Update(deltaTime float64) {
	em := s.ctx.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.BodyComponent, *components.TransformComponent](em) {
		body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		state, ok := s.ctx.World.Body(body.Body)
		if !ok {
			// 刚体已移除，保留最后一次的镜像
			continue
		}
		transform.Position = state.Position
		transform.Angle = state.Angle
		transform.Velocity = state.Velocity
		transform.Asleep = state.Asleep
	}
}

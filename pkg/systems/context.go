package systems

import (
	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/decker502/slingshot/pkg/schedule"
)

// Context 关卡内各系统共享的依赖
//
// State 在每次加载关卡时由 Session 替换，系统总是通过 Context 读取当前值。
type Context struct {
	EntityManager *ecs.EntityManager
	World         physics.World
	Config        *config.GameplayConfig
	Scheduler     *schedule.Scheduler
	State         *game.LevelState
	Events        *game.EventQueue
}

// Emit 为事件盖上当前关卡的 RunID 后入队
func (c *Context) Emit(e game.Event) {
	if c.State != nil {
		e.RunID = c.State.RunID
		e.LevelNumber = c.State.LevelNumber
	}
	c.Events.Push(e)
}

// transformOf 读取实体的物理镜像
func (c *Context) transformOf(id ecs.EntityID) (*components.TransformComponent, bool) {
	return ecs.GetComponent[*components.TransformComponent](c.EntityManager, id)
}

func owner(id ecs.EntityID) schedule.Owner {
	return schedule.Owner(id)
}

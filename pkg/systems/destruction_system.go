package systems

import (
	"log"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// DestructionSystem 处理被击败的猪和被摧毁的方块
//
// 每个实体只处理一次（DestructibleComponent.MarkProcessed 守卫）：
// 加分、发出爆炸效果，并在短暂延迟后移除刚体和实体。
type DestructionSystem struct {
	ctx *Context
}

// NewDestructionSystem 创建摧毁处理系统
func NewDestructionSystem(ctx *Context) *DestructionSystem {
	return &DestructionSystem{ctx: ctx}
}

// Update 处理本帧新被击败的实体
func (s *DestructionSystem) Update(deltaTime float64) {
	em := s.ctx.EntityManager
	scoring := s.ctx.Config.Scoring

	for _, id := range ecs.GetEntitiesWith1[*components.DestructibleComponent](em) {
		d, _ := ecs.GetComponent[*components.DestructibleComponent](em, id)
		if !d.MarkProcessed() {
			continue
		}

		points := scoring.BlockDestroyed
		if ecs.HasComponent[*components.PigComponent](em, id) {
			points = scoring.PigDefeated
		}
		score := s.ctx.State.AddScore(points)
		s.ctx.Emit(game.Event{Type: game.EventScoreChanged, Entity: id, Score: score})

		pos := s.position(id)
		s.ctx.Emit(game.Event{Type: game.EventEffect, Effect: game.EffectExplosion, Entity: id, Position: pos})

		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, id); ok {
			vis.Removed = true
		}
		s.scheduleRemoval(id)
	}
}

func (s *DestructionSystem) position(id ecs.EntityID) mgl64.Vec3 {
	if transform, ok := s.ctx.transformOf(id); ok {
		return transform.Position
	}
	return mgl64.Vec3{}
}

// scheduleRemoval 延迟移除刚体和实体，关卡卸载时任务随调度器一起失效
func (s *DestructionSystem) scheduleRemoval(id ecs.EntityID) {
	delay := s.ctx.Config.Sequencing.RemovalDelay
	s.ctx.Scheduler.AfterUnique(delay, owner(id), "remove", func() {
		em := s.ctx.EntityManager
		if body, ok := ecs.GetComponent[*components.BodyComponent](em, id); ok {
			s.ctx.World.RemoveBody(body.Body)
		}
		if vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, id); ok {
			vis.Hide()
		}
		em.DestroyEntity(id)
		s.ctx.Emit(game.Event{Type: game.EventEntityRemoved, Entity: id})
		log.Printf("[DestructionSystem] Removed entity %d", id)
	})
}

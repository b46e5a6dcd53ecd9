package systems

import (
	"testing"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/entities"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/decker502/slingshot/pkg/schedule"
	"github.com/go-gl/mathgl/mgl64"
)

// newTestContext 创建使用真实物理世界、处于 Playing 阶段的上下文
func newTestContext(t *testing.T) *Context {
	t.Helper()
	gp := config.DefaultGameplayConfig()
	ctx := &Context{
		EntityManager: ecs.NewEntityManager(),
		World: physics.NewSpace(physics.SpaceConfig{
			Gravity:       gp.Physics.Gravity,
			TimeStep:      gp.Physics.TimeStep,
			MaxSubSteps:   gp.Physics.MaxSubSteps,
			MaxFrameDelta: gp.Physics.MaxFrameDelta,
		}),
		Config:    gp,
		Scheduler: schedule.NewScheduler(),
		State:     game.NewLevelState(&config.LevelConfig{LevelNumber: 1, Name: "test"}),
		Events:    game.NewEventQueue(),
	}
	ctx.State.Phase = game.PhasePlaying
	return ctx
}

func mustBird(t *testing.T, ctx *Context, birdType string, pos mgl64.Vec3) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBird(ctx.EntityManager, ctx.World, ctx.Config, config.BirdSpawn{Type: birdType, Position: config.Vec3Of(pos)})
	if err != nil {
		t.Fatalf("NewBird failed: %v", err)
	}
	return id
}

func mustPig(t *testing.T, ctx *Context, pos mgl64.Vec3) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPig(ctx.EntityManager, ctx.World, ctx.Config, config.PigSpawn{Position: config.Vec3Of(pos), Size: 0.4}, nil)
	if err != nil {
		t.Fatalf("NewPig failed: %v", err)
	}
	return id
}

func mustBlock(t *testing.T, ctx *Context, blockType string, pos mgl64.Vec3) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBlock(ctx.EntityManager, ctx.World, ctx.Config, config.StructureSpawn{Type: blockType, Position: config.Vec3Of(pos)}, nil)
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}
	return id
}

func mustSlingshot(t *testing.T, ctx *Context) *SlingshotSystem {
	t.Helper()
	id, err := entities.NewSlingshot(ctx.EntityManager, ctx.Config.Slingshot, mgl64.Vec3{-8, 0, 0})
	if err != nil {
		t.Fatalf("NewSlingshot failed: %v", err)
	}
	s := NewSlingshotSystem(ctx)
	s.Attach(id)
	return s
}

// flyBird 把小鸟直接置为飞行状态
func flyBird(t *testing.T, ctx *Context, id ecs.EntityID, velocity mgl64.Vec3) {
	t.Helper()
	b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, id)
	b.Launch()
	ctx.World.SetVelocity(physics.BodyID(id), velocity)
	ctx.World.WakeUp(physics.BodyID(id))
	transform, _ := ctx.transformOf(id)
	transform.Velocity = velocity
	transform.Asleep = false
}

func countEvents(events []game.Event, typ game.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

package systems

import (
	"testing"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/decker502/slingshot/pkg/physics/mocks"
	"github.com/decker502/slingshot/pkg/schedule"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/mock/gomock"
)

func newTestLevelSystem(t *testing.T, ctx *Context) *LevelSystem {
	t.Helper()
	return NewLevelSystem(ctx, mustSlingshot(t, ctx), NewAbilitySystem(ctx))
}

func TestIsOutOfBounds(t *testing.T) {
	bounds := config.DefaultGameplayConfig().Bounds

	tests := []struct {
		name string
		pos  mgl64.Vec3
		want bool
	}{
		{"低于最低高度", mgl64.Vec3{0, -6, 0}, true},
		{"高于最低高度", mgl64.Vec3{0, -4, 0}, false},
		{"右侧越界", mgl64.Vec3{31, 2, 0}, true},
		{"左侧越界", mgl64.Vec3{-31, 2, 0}, true},
		{"过高", mgl64.Vec3{0, 21, 0}, true},
		{"场内", mgl64.Vec3{10, 10, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOutOfBounds(tt.pos, bounds); got != tt.want {
				t.Errorf("IsOutOfBounds(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIsStopped(t *testing.T) {
	bounds := config.DefaultGameplayConfig().Bounds

	tests := []struct {
		name      string
		transform components.TransformComponent
		want      bool
	}{
		{"休眠", components.TransformComponent{Position: mgl64.Vec3{0, 5, 0}, Asleep: true}, true},
		{"地面低速", components.TransformComponent{Position: mgl64.Vec3{0, 0.3, 0}, Velocity: mgl64.Vec3{0.2, 0, 0}}, true},
		{"高处低速", components.TransformComponent{Position: mgl64.Vec3{0, 3, 0}, Velocity: mgl64.Vec3{0.2, 0, 0}}, false},
		{"地面滚动", components.TransformComponent{Position: mgl64.Vec3{0, 0.3, 0}, Velocity: mgl64.Vec3{3, 0, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStopped(&tt.transform, bounds); got != tt.want {
				t.Errorf("IsStopped = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinCompletesOnce(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	pig := mustPig(t, ctx, mgl64.Vec3{5, 0.4, 0})

	d, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, pig)
	d.TakeDamage(999)
	ls.Evaluate()
	d.TakeDamage(999)
	ls.Evaluate()

	if ctx.State.Phase != game.PhaseCompleting || ctx.State.Outcome != game.PhaseWon {
		t.Fatalf("phase = %v outcome = %v", ctx.State.Phase, ctx.State.Outcome)
	}
	if n := countEvents(ctx.Events.Drain(), game.EventLevelCompleting); n != 1 {
		t.Errorf("Expected exactly 1 LevelCompleting event, got %d", n)
	}

	ctx.Scheduler.Advance(0.9)
	if ctx.State.Phase != game.PhaseCompleting {
		t.Error("win resolves only after the grace delay")
	}
	ctx.Scheduler.Advance(0.2)
	if ctx.State.Phase != game.PhaseWon {
		t.Errorf("phase = %v, want won", ctx.State.Phase)
	}
}

func TestWinScoring(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	ls.HasNextLevel = func() bool { return true }

	ctx.State.TotalBirds = 3
	ctx.State.BirdsUsed = 1
	ctx.State.Elapsed = 19
	ctx.State.AddScore(25000)

	ls.Evaluate() // 没有猪，直接判胜
	ctx.Scheduler.Advance(1)

	// Elapsed 由 Session 推进，这里保持 19 秒
	st := ctx.State
	if st.TimeBonus != 4100 || st.BirdBonus != 20000 {
		t.Errorf("bonuses = %d/%d, want 4100/20000", st.TimeBonus, st.BirdBonus)
	}
	if st.Score != 49100 || st.Stars != 2 {
		t.Errorf("score = %d stars = %d, want 49100 / 2", st.Score, st.Stars)
	}

	events := ctx.Events.Drain()
	var won *game.Event
	for i := range events {
		if events[i].Type == game.EventLevelWon {
			won = &events[i]
		}
	}
	if won == nil || !won.HasNextLevel || won.Stars != 2 || won.RunID != st.RunID {
		t.Fatalf("LevelWon event = %+v", won)
	}

	// 第一颗星在结算当帧发出
	ctx.Scheduler.Advance(1)
	events = append(events, ctx.Events.Drain()...)
	bursts := 0
	for _, e := range events {
		if e.Type == game.EventEffect && e.Effect == game.EffectStarBurst {
			bursts++
		}
	}
	if bursts != 2 {
		t.Errorf("Expected one star burst per star, got %d", bursts)
	}
}

// 第一只鸟停止后装填第二只，且不会重新装填第一只
func TestBirdSequencingAfterStop(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	mustPig(t, ctx, mgl64.Vec3{10, 0.4, 0})
	first := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-10, 0.3, 0})
	second := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-11, 0.3, 0})
	ctx.State.BirdQueue = []ecs.EntityID{first, second}
	ctx.State.TotalBirds = 2

	if !ls.LoadNextBird() || ctx.State.CurrentBird != first {
		t.Fatalf("first bird should be loaded, current %d", ctx.State.CurrentBird)
	}

	ls.slingshot.StartDrag()
	ls.slingshot.UpdateDrag(mgl64.Vec3{-9, 1, 0})
	bird, velocity, ok := ls.slingshot.EndDrag()
	if !ok || bird != first {
		t.Fatalf("EndDrag = %d, %v", bird, ok)
	}
	ls.LaunchBird(bird, velocity)

	if !ctx.State.LaunchLockout || ctx.State.ActiveBird != first || ctx.State.BirdsUsed != 1 {
		t.Fatalf("unexpected state after launch: %+v", ctx.State)
	}
	ctx.Scheduler.Advance(0.31)
	if ctx.State.LaunchLockout {
		t.Fatal("launch lockout should clear after 0.3s")
	}

	// 模拟物理引擎报告休眠
	transform, _ := ctx.transformOf(first)
	transform.Asleep = true
	ls.Evaluate()

	b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, first)
	if b.IsActive() || !ctx.State.LoadingNextBird || ctx.State.ActiveBird != 0 {
		t.Fatalf("first bird should be retired: status %v state %+v", b.Status, ctx.State)
	}

	ctx.Scheduler.Advance(1.4)
	if ctx.State.CurrentBird != 0 {
		t.Fatal("stopped bird uses the longer 1.5s delay")
	}
	ctx.Scheduler.Advance(0.2)
	if ctx.State.CurrentBird != second {
		t.Fatalf("CurrentBird = %d, want second bird %d", ctx.State.CurrentBird, second)
	}
	if b.Status != components.BirdLaunchedInactive {
		t.Errorf("first bird must not be reloaded, status %v", b.Status)
	}
	if ctx.State.LoadingNextBird {
		t.Error("LoadingNextBird should be cleared once the next bird is loaded")
	}
}

func TestOutOfBoundsUsesShortDelayAndFades(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	mustPig(t, ctx, mgl64.Vec3{10, 0.4, 0})
	first := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-10, 0.3, 0})
	second := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-11, 0.3, 0})
	ctx.State.BirdQueue = []ecs.EntityID{second}
	ctx.State.TotalBirds = 2
	ctx.State.BirdsUsed = 1
	ctx.State.ActiveBird = first
	flyBird(t, ctx, first, mgl64.Vec3{5, -5, 0})

	transform, _ := ctx.transformOf(first)
	transform.Position = mgl64.Vec3{3, -6, 0}
	ls.Evaluate()

	ctx.Scheduler.Advance(0.51)
	if ctx.State.CurrentBird != second {
		t.Fatalf("out-of-bounds bird should recycle after 0.5s, current %d", ctx.State.CurrentBird)
	}

	ctx.Scheduler.Advance(1)
	ctx.EntityManager.RemoveMarkedEntities()
	if ctx.EntityManager.Exists(first) || ctx.World.HasBody(physics.BodyID(first)) {
		t.Error("faded bird should be removed")
	}
	if n := countEvents(ctx.Events.Drain(), game.EventEffect); n < ctx.Config.Sequencing.FadeSteps {
		t.Errorf("Expected %d fade steps, got %d effects", ctx.Config.Sequencing.FadeSteps, n)
	}
}

func TestLoseWhenBirdsExhausted(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	mustPig(t, ctx, mgl64.Vec3{10, 0.4, 0})
	only := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-10, 0.3, 0})
	ctx.State.TotalBirds = 1
	ctx.State.BirdsUsed = 1
	ctx.State.ActiveBird = only
	flyBird(t, ctx, only, mgl64.Vec3{1, 0, 0})

	transform, _ := ctx.transformOf(only)
	transform.Asleep = true
	ls.Evaluate()

	if ctx.State.Phase != game.PhaseCompleting || ctx.State.Outcome != game.PhaseLost {
		t.Fatalf("phase = %v outcome = %v", ctx.State.Phase, ctx.State.Outcome)
	}
	ctx.Scheduler.Advance(1.01)
	if ctx.State.Phase != game.PhaseLost {
		t.Errorf("phase = %v, want lost", ctx.State.Phase)
	}
	if n := countEvents(ctx.Events.Drain(), game.EventLevelLost); n != 1 {
		t.Errorf("Expected 1 LevelLost event, got %d", n)
	}
}

// 分裂后批次跟随分裂出的小鸟，全部退场后才换鸟
func TestSplitFlightRetiresWithDerivedBirds(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	mustPig(t, ctx, mgl64.Vec3{10, 0.4, 0})
	blue := mustBird(t, ctx, config.BirdBlue, mgl64.Vec3{0, 5, 0})
	next := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-11, 0.3, 0})
	ctx.State.BirdQueue = []ecs.EntityID{next}
	ctx.State.TotalBirds = 2
	ctx.State.BirdsUsed = 1
	ctx.State.ActiveBird = blue
	flyBird(t, ctx, blue, mgl64.Vec3{10, 0, 0})

	result := ls.ActivateAbility()
	if result == nil || len(result.Spawned) != 3 {
		t.Fatalf("split result = %+v", result)
	}
	if ls.ActivateAbility() != nil {
		t.Error("ability fires once per flight")
	}

	ls.Evaluate()
	if ctx.State.LoadingNextBird {
		t.Fatal("derived birds are still in flight")
	}

	for i, id := range result.Spawned {
		transform, _ := ctx.transformOf(id)
		transform.Asleep = true
		ls.Evaluate()
		if last := i == len(result.Spawned)-1; ctx.State.LoadingNextBird != last {
			t.Fatalf("after retiring %d derived birds LoadingNextBird = %v", i+1, ctx.State.LoadingNextBird)
		}
	}
}

func TestSequencingPendingDefersChecks(t *testing.T) {
	ctx := newTestContext(t)
	ls := newTestLevelSystem(t, ctx)
	mustPig(t, ctx, mgl64.Vec3{10, 0.4, 0})
	bird := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{-10, 0.3, 0})
	ctx.State.TotalBirds = 1
	ctx.State.ActiveBird = bird
	ctx.State.LaunchLockout = true
	flyBird(t, ctx, bird, mgl64.Vec3{})

	transform, _ := ctx.transformOf(bird)
	transform.Position = mgl64.Vec3{0, -6, 0}
	ls.Evaluate()

	b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, bird)
	if !b.IsActive() {
		t.Error("checks are deferred while the launch lockout is active")
	}
}

func TestLaunchBirdUsesWorld(t *testing.T) {
	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)

	gp := config.DefaultGameplayConfig()
	em := ecs.NewEntityManager()
	ctx := &Context{
		EntityManager: em,
		World:         world,
		Config:        gp,
		Scheduler:     schedule.NewScheduler(),
		State:         game.NewLevelState(&config.LevelConfig{LevelNumber: 1}),
		Events:        game.NewEventQueue(),
	}
	ctx.State.Phase = game.PhasePlaying

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BirdComponent{Type: config.BirdRed, Status: components.BirdLoaded, Flight: id})
	ecs.AddComponent(em, id, &components.BodyComponent{Body: physics.BodyID(id), Mass: 1})
	ecs.AddComponent(em, id, &components.TransformComponent{Position: mgl64.Vec3{-8, 1, 0}})

	velocity := mgl64.Vec3{30, -15, 0}
	gomock.InOrder(
		world.EXPECT().SetVelocity(physics.BodyID(id), velocity),
		world.EXPECT().WakeUp(physics.BodyID(id)),
	)

	ls := NewLevelSystem(ctx, NewSlingshotSystem(ctx), NewAbilitySystem(ctx))
	ls.LaunchBird(id, velocity)

	if ctx.State.ActiveBird != id || ctx.State.BirdsUsed != 1 {
		t.Errorf("state after launch: %+v", ctx.State)
	}
	events := ctx.Events.Drain()
	if countEvents(events, game.EventBirdLaunched) != 1 {
		t.Error("BirdLaunched event missing")
	}
}

package systems

import (
	"math"
	"testing"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

func TestSplitAnglesSymmetric(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		angles := SplitAngles(n, 1.5)
		if len(angles) != n {
			t.Fatalf("count %d: got %d angles", n, len(angles))
		}
		sum := 0.0
		for i, a := range angles {
			sum += a
			if mirror := angles[n-1-i]; math.Abs(a+mirror) > 1e-12 {
				t.Errorf("count %d: angle %d (%v) not mirrored by %v", n, i, a, mirror)
			}
		}
		if math.Abs(sum) > 1e-12 {
			t.Errorf("count %d: sum of angles = %v, want 0", n, sum)
		}
	}

	angles := SplitAngles(3, 1.5)
	if want := 1.5 * math.Pi / 180; math.Abs(angles[2]-want) > 1e-12 || angles[1] != 0 {
		t.Errorf("angles = %v", angles)
	}
}

func TestSplitVelocitiesKeepSpeed(t *testing.T) {
	v := mgl64.Vec3{12, 5, 0}
	for _, out := range SplitVelocities(v, 3, 1.5) {
		if math.Abs(out.Len()-v.Len()) > 1e-9 {
			t.Errorf("rotated velocity %v changed speed", out)
		}
	}
}

func TestSplitAbility(t *testing.T) {
	ctx := newTestContext(t)
	abilities := NewAbilitySystem(ctx)
	id := mustBird(t, ctx, config.BirdBlue, mgl64.Vec3{0, 5, 0})
	flyBird(t, ctx, id, mgl64.Vec3{10, 0, 0})

	result := abilities.Activate(id)
	if result == nil || result.Kind != config.AbilitySplit {
		t.Fatalf("Activate = %+v", result)
	}
	if len(result.Spawned) != ctx.Config.Abilities.Split.Count {
		t.Errorf("spawned %d birds, want %d", len(result.Spawned), ctx.Config.Abilities.Split.Count)
	}
	for _, child := range result.Spawned {
		b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, child)
		if !b.IsActive() || !b.AbilityUsed || b.Flight != id {
			t.Errorf("derived bird %d: %+v", child, b)
		}
		if abilities.Activate(child) != nil {
			t.Error("derived birds cannot split again")
		}
	}

	original, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, id)
	vis, _ := ecs.GetComponent[*components.VisibilityComponent](ctx.EntityManager, id)
	if original.IsActive() || vis.Visible {
		t.Error("original bird should be inactive and hidden")
	}
	if !ctx.World.HasBody(physics.BodyID(id)) {
		t.Error("original body is kept")
	}

	if abilities.Activate(id) != nil {
		t.Error("second activation must be a no-op")
	}
	if n := len(ecs.GetEntitiesWith1[*components.BirdComponent](ctx.EntityManager)); n != 4 {
		t.Errorf("Expected 4 birds after one split, got %d", n)
	}
}

func TestExplodeAbility(t *testing.T) {
	ctx := newTestContext(t)
	abilities := NewAbilitySystem(ctx)
	bird := mustBird(t, ctx, config.BirdBomb, mgl64.Vec3{0, 1, 0})
	near := mustPig(t, ctx, mgl64.Vec3{1, 1, 0})
	block := mustBlock(t, ctx, config.BlockWoodSmall, mgl64.Vec3{-2, 1, 0})
	far := mustPig(t, ctx, mgl64.Vec3{10, 1, 0})
	flyBird(t, ctx, bird, mgl64.Vec3{5, 0, 0})

	result := abilities.Activate(bird)
	if result == nil || len(result.Affected) != 2 {
		t.Fatalf("Affected = %+v", result)
	}

	health := func(id ecs.EntityID) float64 {
		d, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, id)
		return d.Health
	}
	if health(near) != 50 {
		t.Errorf("near pig health = %v, want 50", health(near))
	}
	if d, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, block); !d.Defeated {
		t.Errorf("small wood block should be destroyed by the blast, health %v", d.Health)
	}
	if health(far) != 100 {
		t.Error("pig outside the radius must not be damaged")
	}

	state, _ := ctx.World.Body(physics.BodyID(near))
	if state.Velocity.X() <= 0 {
		t.Errorf("near pig should be pushed away from the blast, velocity %v", state.Velocity)
	}
	b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, bird)
	if b.IsActive() {
		t.Error("exploded bird should be inactive")
	}
}

func TestExplosionImpulseFalloff(t *testing.T) {
	tests := []struct {
		name       string
		target     mgl64.Vec3
		wantMag    float64
		wantInside bool
	}{
		{"爆心", mgl64.Vec3{0, 0, 0}, 15, true},
		{"一半距离", mgl64.Vec3{1.5, 0, 0}, 7.5, true},
		{"边界上", mgl64.Vec3{0, 3, 0}, 0, false},
		{"范围外", mgl64.Vec3{4, 0, 0}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impulse, inside := ExplosionImpulse(mgl64.Vec3{}, tt.target, 3, 15)
			if inside != tt.wantInside {
				t.Fatalf("inside = %v, want %v", inside, tt.wantInside)
			}
			if math.Abs(impulse.Len()-tt.wantMag) > 1e-9 {
				t.Errorf("|impulse| = %v, want %v", impulse.Len(), tt.wantMag)
			}
		})
	}
}

func TestBoostAbility(t *testing.T) {
	ctx := newTestContext(t)
	abilities := NewAbilitySystem(ctx)
	id := mustBird(t, ctx, config.BirdYellow, mgl64.Vec3{0, 5, 0})
	flyBird(t, ctx, id, mgl64.Vec3{3, 4, 0})

	result := abilities.Activate(id)
	if result == nil {
		t.Fatal("boost should activate")
	}
	want := mgl64.Vec3{12, 16, 0}
	if !result.Velocity.ApproxEqual(want) {
		t.Errorf("boosted velocity = %v, want %v", result.Velocity, want)
	}
	state, _ := ctx.World.Body(physics.BodyID(id))
	if !state.Velocity.ApproxEqual(want) {
		t.Errorf("body velocity = %v, want %v", state.Velocity, want)
	}
	b, _ := ecs.GetComponent[*components.BirdComponent](ctx.EntityManager, id)
	if !b.IsActive() {
		t.Error("boosted bird stays active")
	}
}

func TestAbilityRequiresActiveBird(t *testing.T) {
	ctx := newTestContext(t)
	abilities := NewAbilitySystem(ctx)
	waiting := mustBird(t, ctx, config.BirdBlue, mgl64.Vec3{0, 5, 0})
	red := mustBird(t, ctx, config.BirdRed, mgl64.Vec3{0, 5, 0})
	flyBird(t, ctx, red, mgl64.Vec3{1, 0, 0})

	if abilities.Activate(waiting) != nil {
		t.Error("waiting bird cannot activate")
	}
	if abilities.Activate(red) != nil {
		t.Error("bird without ability returns nil")
	}
	if abilities.Activate(999) != nil {
		t.Error("unknown entity returns nil")
	}
}

package systems

import (
	"testing"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

func TestImpactDamage(t *testing.T) {
	rules := config.DefaultGameplayConfig().Damage.Pig

	tests := []struct {
		name   string
		impact float64
		want   float64
	}{
		{"低于阈值", -1.5, 0},
		{"恰好阈值", 2, 0},
		{"线性", -4, 30},
		{"正负号无关", 4, 30},
		{"封顶", -50, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImpactDamage(tt.impact, rules); got != tt.want {
				t.Errorf("ImpactDamage(%v) = %v, want %v", tt.impact, got, tt.want)
			}
		})
	}
}

func TestVelocityDamage(t *testing.T) {
	damage := config.DefaultGameplayConfig().Damage

	tests := []struct {
		name  string
		rules config.DestructibleDamageConfig
		speed float64
		want  float64
	}{
		{"猪静止", damage.Pig, 0, 0},
		{"猪低速", damage.Pig, 5, 0},
		{"猪超过低档", damage.Pig, 6, 10},
		{"猪没有高档", damage.Pig, 20, 10},
		{"方块低档", damage.Block, 6, 5},
		{"方块高档", damage.Block, 9, 20},
		{"方块高档边界", damage.Block, 8, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VelocityDamage(tt.speed, tt.rules); got != tt.want {
				t.Errorf("VelocityDamage(%v) = %v, want %v", tt.speed, got, tt.want)
			}
		})
	}
}

func TestDamageSystemCollisionEvents(t *testing.T) {
	ctx := newTestContext(t)
	ds := NewDamageSystem(ctx)
	pig := mustPig(t, ctx, mgl64.Vec3{0, 5, 0})
	block := mustBlock(t, ctx, config.BlockStoneLarge, mgl64.Vec3{3, 5, 0})

	ds.OnCollision(physics.CollisionEvent{Self: physics.BodyID(pig), ImpactVelocity: -4})
	ds.OnCollision(physics.CollisionEvent{Self: physics.BodyID(block), ImpactVelocity: -10})
	ds.OnCollision(physics.CollisionEvent{Self: 999, ImpactVelocity: -10})
	ds.Update(1.0 / 60)

	pd, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, pig)
	if pd.Health != 70 {
		t.Errorf("pig health = %v, want 70", pd.Health)
	}
	bd, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, block)
	if bd.Health != bd.MaxHealth {
		t.Errorf("block collision damage is disabled by default, health %v", bd.Health)
	}

	// 已结算的事件不会重复计算
	ds.Update(1.0 / 60)
	if pd.Health != 70 {
		t.Errorf("events applied twice, pig health %v", pd.Health)
	}
}

func TestDamageSystemVelocityAndFloor(t *testing.T) {
	ctx := newTestContext(t)
	ds := NewDamageSystem(ctx)
	fast := mustPig(t, ctx, mgl64.Vec3{0, 5, 0})
	fallen := mustPig(t, ctx, mgl64.Vec3{5, 5, 0})

	ft, _ := ctx.transformOf(fast)
	ft.Velocity = mgl64.Vec3{6, 0, 0}
	lt, _ := ctx.transformOf(fallen)
	lt.Position = mgl64.Vec3{5, -11, 0}

	ds.Update(1.0 / 60)

	fd, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, fast)
	if fd.Health != 90 {
		t.Errorf("fast pig health = %v, want 90", fd.Health)
	}
	ld, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, fallen)
	if !ld.Defeated {
		t.Error("pig below the floor should be defeated")
	}
}

func TestDamageSystemReset(t *testing.T) {
	ctx := newTestContext(t)
	ds := NewDamageSystem(ctx)
	pig := mustPig(t, ctx, mgl64.Vec3{0, 5, 0})

	ds.OnCollision(physics.CollisionEvent{Self: physics.BodyID(pig), ImpactVelocity: -20})
	ds.Reset()
	ds.Update(1.0 / 60)

	d, _ := ecs.GetComponent[*components.DestructibleComponent](ctx.EntityManager, pig)
	if d.Health != 100 {
		t.Errorf("Reset should drop pending events, health %v", d.Health)
	}
}

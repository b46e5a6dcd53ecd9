package scenes

import (
	"image/color"

	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 特效持续时间（秒）
const (
	explosionLife = 0.5
	trailLife     = 3.0
	flashLife     = 0.3
)

// effect 一个纯表现的短暂特效
type effect struct {
	kind  game.EffectKind
	pos   mgl64.Vec3
	age   float64
	life  float64
	stars int
}

// addEffect 登记特效事件，淡出由快照的不透明度体现
func (g *GameScene) addEffect(e game.Event) {
	fx := effect{kind: e.Effect, pos: e.Position, stars: e.Stars}
	switch e.Effect {
	case game.EffectExplosion:
		fx.life = explosionLife
	case game.EffectTrail:
		fx.life = trailLife
	case game.EffectSplit, game.EffectBoost:
		fx.life = flashLife
	case game.EffectStarBurst:
		fx.life = explosionLife
	default:
		return
	}
	g.effects = append(g.effects, fx)
}

func (g *GameScene) updateEffects(deltaTime float64) {
	alive := g.effects[:0]
	for _, fx := range g.effects {
		fx.age += deltaTime
		if fx.age < fx.life {
			alive = append(alive, fx)
		}
	}
	g.effects = alive
}

// shownStars 已播放过星级特效的星数
func (g *GameScene) shownStars() int {
	n := 0
	for _, fx := range g.effects {
		if fx.kind == game.EffectStarBurst && fx.stars > n {
			n = fx.stars
		}
	}
	if g.result != nil && n == 0 {
		return g.result.Stars
	}
	return n
}

func (g *GameScene) drawEffects(screen *ebiten.Image) {
	for _, fx := range g.effects {
		t := fx.age / fx.life
		switch fx.kind {
		case game.EffectExplosion:
			x, y := g.camera.WorldToScreen(fx.pos)
			r := (0.3 + 1.2*t) * g.camera.PixelsPerUnit(fx.pos)
			c := utils.WithAlpha(color.RGBA{0xff, 0xa0, 0x20, 0xff}, 1-t)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 3, c, true)
		case game.EffectTrail:
			x, y := g.camera.WorldToScreen(fx.pos)
			c := utils.WithAlpha(color.RGBA{0xff, 0xff, 0xff, 0xff}, 0.8*(1-t))
			vector.DrawFilledCircle(screen, float32(x), float32(y), 3, c, true)
		case game.EffectSplit, game.EffectBoost:
			x, y := g.camera.WorldToScreen(fx.pos)
			c := utils.WithAlpha(color.RGBA{0xff, 0xff, 0x80, 0xff}, 1-t)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(10+20*t), c, true)
		case game.EffectStarBurst:
			b := screen.Bounds()
			x := float32(b.Dx()/2 - 60 + (fx.stars-1)*60)
			y := float32(b.Dy()/2 - 90)
			c := utils.WithAlpha(color.RGBA{0xff, 0xd7, 0x00, 0xff}, 1-t)
			vector.DrawFilledCircle(screen, x, y, float32(12+18*t), c, true)
		}
	}
}

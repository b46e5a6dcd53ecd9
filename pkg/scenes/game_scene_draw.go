package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/decker502/slingshot/pkg/session"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor       = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	groundColor    = color.RGBA{0x5a, 0x9e, 0x3c, 0xff}
	pigColor       = color.RGBA{0x7c, 0xd9, 0x4a, 0xff}
	slingshotColor = color.RGBA{0x6b, 0x3e, 0x1e, 0xff}
	bandColor      = color.RGBA{0x3a, 0x1f, 0x0e, 0xff}
	trajectoryDot  = color.RGBA{0xff, 0xff, 0xff, 0xc0}

	materialColors = map[string]color.RGBA{
		config.MaterialWood:  {0xb5, 0x7a, 0x3c, 0xff},
		config.MaterialStone: {0x8a, 0x8a, 0x8a, 0xff},
		config.MaterialGlass: {0xa8, 0xe0, 0xf0, 0xc0},
	}
)

func drawBackground(screen *ebiten.Image, cam *utils.Camera) {
	screen.Fill(skyColor)
	b := screen.Bounds()
	_, groundY := cam.WorldToScreen(mgl64.Vec3{0, 0, 0})
	if groundY < float64(b.Dy()) {
		vector.DrawFilledRect(screen, 0, float32(groundY), float32(b.Dx()), float32(float64(b.Dy())-groundY), groundColor, false)
	}
}

func (g *GameScene) drawEntities(screen *ebiten.Image, snap *session.Snapshot) {
	for _, e := range snap.Entities {
		if !e.Visible || e.Kind == session.KindGround {
			continue
		}
		switch e.Shape.Kind {
		case physics.ShapeSphere:
			g.drawSphere(screen, e)
		case physics.ShapeBox:
			g.drawBox(screen, e)
		}
	}
}

func (g *GameScene) entityColor(e session.EntityView) color.RGBA {
	switch e.Kind {
	case session.KindBird:
		if bt, ok := g.session.Config().Birds[e.Type]; ok {
			if c, err := utils.ParseHexColor(bt.Color); err == nil {
				return c
			}
		}
		return color.RGBA{0xff, 0, 0, 0xff}
	case session.KindPig:
		return pigColor
	}
	if c, ok := materialColors[e.Material]; ok {
		return c
	}
	return color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
}

func (g *GameScene) drawSphere(screen *ebiten.Image, e session.EntityView) {
	x, y := g.camera.WorldToScreen(e.Position)
	r := e.Shape.Radius * g.camera.PixelsPerUnit(e.Position)
	c := utils.WithAlpha(g.entityColor(e), e.Opacity)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), c, true)

	if e.Kind == session.KindPig && e.MaxHealth > 0 && e.Health < e.MaxHealth {
		drawHealthBar(screen, x, y-r-6, r*2, e.Health/e.MaxHealth)
	}
	if e.Kind == session.KindBird && e.Status == components.BirdLaunchedActive {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, color.White, true)
	}
}

// drawBox 旋转方块用四条边绘制
func (g *GameScene) drawBox(screen *ebiten.Image, e session.EntityView) {
	h := e.Shape.HalfExtents
	cos, sin := math.Cos(e.Angle), math.Sin(e.Angle)
	corners := [4]mgl64.Vec2{{-h.X(), -h.Y()}, {h.X(), -h.Y()}, {h.X(), h.Y()}, {-h.X(), h.Y()}}

	var pts [4][2]float32
	for i, c := range corners {
		world := mgl64.Vec3{
			e.Position.X() + c.X()*cos - c.Y()*sin,
			e.Position.Y() + c.X()*sin + c.Y()*cos,
			e.Position.Z(),
		}
		x, y := g.camera.WorldToScreen(world)
		pts[i] = [2]float32{float32(x), float32(y)}
	}

	c := utils.WithAlpha(g.entityColor(e), e.Opacity)
	for i := range pts {
		j := (i + 1) % len(pts)
		vector.StrokeLine(screen, pts[i][0], pts[i][1], pts[j][0], pts[j][1], 3, c, true)
	}
	vector.StrokeLine(screen, pts[0][0], pts[0][1], pts[2][0], pts[2][1], 1, c, true)
	vector.StrokeLine(screen, pts[1][0], pts[1][1], pts[3][0], pts[3][1], 1, c, true)
}

func drawHealthBar(screen *ebiten.Image, cx, y, width, ratio float64) {
	if width < 20 {
		width = 20
	}
	x := cx - width/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), 4, color.RGBA{0x40, 0, 0, 0xff}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*ratio), 4, color.RGBA{0xe0, 0x30, 0x30, 0xff}, false)
}

func (g *GameScene) drawSlingshot(screen *ebiten.Image, snap *session.Snapshot) {
	sl := snap.Slingshot
	bx, by := g.camera.WorldToScreen(sl.Base)
	rx, ry := g.camera.WorldToScreen(sl.RestPoint)
	vector.StrokeLine(screen, float32(bx), float32(by), float32(rx), float32(ry), 6, slingshotColor, true)

	if sl.Dragging {
		dx, dy := g.camera.WorldToScreen(sl.DragPoint)
		vector.StrokeLine(screen, float32(rx), float32(ry), float32(dx), float32(dy), 2, bandColor, true)
	}
}

func (g *GameScene) drawTrajectory(screen *ebiten.Image) {
	for i, p := range g.trajectory {
		if i%2 == 1 {
			continue
		}
		x, y := g.camera.WorldToScreen(p)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2, trajectoryDot, true)
	}
}

func (g *GameScene) drawHUD(screen *ebiten.Image, snap *session.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d: %s", snap.LevelNumber, snap.LevelName), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 10, 26)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Birds: %d", snap.BirdsRemaining), 10, 42)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.1fs", snap.Elapsed), 10, 58)

	b := screen.Bounds()
	cx := b.Dx()/2 - 80
	switch {
	case snap.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED  (P resume, R restart, Esc menu)", cx-40, b.Dy()/2)
	case g.result != nil && g.result.Type == game.EventLevelWon:
		lines := []string{
			fmt.Sprintf("LEVEL COMPLETE  %s", starString(g.shownStars())),
			fmt.Sprintf("Score %d  (time +%d, birds +%d)", g.result.Score, g.result.TimeBonus, g.result.BirdBonus),
		}
		if g.newBest {
			lines = append(lines, "New best!")
		}
		if g.result.HasNextLevel {
			lines = append(lines, "N next level, R replay, Esc menu")
		} else {
			lines = append(lines, "All levels complete! R replay, Esc menu")
		}
		for i, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, cx, b.Dy()/2-40+i*16)
		}
	case g.result != nil && g.result.Type == game.EventLevelLost:
		ebitenutil.DebugPrintAt(screen, "LEVEL FAILED  (R retry, Esc menu)", cx, b.Dy()/2)
	}
}

func starString(n int) string {
	s := ""
	for i := 0; i < 3; i++ {
		if i < n {
			s += "*"
		} else {
			s += "-"
		}
	}
	return s
}

package scenes

import (
	"fmt"
	"image"
	"image/color"

	"github.com/decker502/slingshot/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 关卡按钮布局
const (
	tileSize    = 80
	tileGap     = 20
	tileColumns = 5
	tileTop     = 180
)

var (
	menuBackground = color.RGBA{0x20, 0x30, 0x48, 0xff}
	tileUnlocked   = color.RGBA{0xe0, 0x8a, 0x2c, 0xff}
	tileLocked     = color.RGBA{0x55, 0x55, 0x55, 0xff}
	tileHover      = color.RGBA{0xff, 0xff, 0xff, 0xff}

	levelKeys = []ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
		ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
)

// MenuScene 关卡选择界面
// 未解锁的关卡不可进入；数字键 1-9 或点击按钮开始关卡
type MenuScene struct {
	sceneManager *SceneManager
	progress     *game.ProgressManager
	total        int
	hovered      int
}

// NewMenuScene 创建关卡选择界面
func NewMenuScene(sm *SceneManager, progress *game.ProgressManager, totalLevels int) *MenuScene {
	if progress == nil {
		progress = game.NewProgressManager(nil)
	}
	return &MenuScene{sceneManager: sm, progress: progress, total: totalLevels}
}

// levelTileRect 第 level 关按钮的屏幕区域
func levelTileRect(level int) image.Rectangle {
	i := level - 1
	rowWidth := tileColumns*tileSize + (tileColumns-1)*tileGap
	x := (ScreenWidth-rowWidth)/2 + (i%tileColumns)*(tileSize+tileGap)
	y := tileTop + (i/tileColumns)*(tileSize+tileGap)
	return image.Rect(x, y, x+tileSize, y+tileSize)
}

// levelAt 返回屏幕坐标处的关卡编号，没有则返回 0
func (m *MenuScene) levelAt(x, y int) int {
	p := image.Pt(x, y)
	for level := 1; level <= m.total; level++ {
		if p.In(levelTileRect(level)) {
			return level
		}
	}
	return 0
}

// selectLevel 进入已解锁的关卡
func (m *MenuScene) selectLevel(level int) bool {
	if level < 1 || level > m.total || !m.progress.IsUnlocked(level) {
		return false
	}
	if m.sceneManager == nil {
		return false
	}
	return m.sceneManager.LoadLevel(level)
}

func (m *MenuScene) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	m.hovered = m.levelAt(x, y)

	for i, key := range levelKeys {
		if i < m.total && inpututil.IsKeyJustPressed(key) {
			m.selectLevel(i + 1)
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		next := m.progress.HighestCompleted() + 1
		if next > m.total {
			next = m.total
		}
		m.selectLevel(next)
		return
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		m.selectLevel(m.hovered)
		return
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		if m.selectLevel(m.levelAt(tx, ty)) {
			return
		}
	}
}

func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	ebitenutil.DebugPrintAt(screen, "SLINGSHOT", ScreenWidth/2-30, 80)
	ebitenutil.DebugPrintAt(screen, "Select a level (1-9, Enter = continue)", ScreenWidth/2-120, 110)

	for level := 1; level <= m.total; level++ {
		r := levelTileRect(level)
		fill := tileLocked
		if m.progress.IsUnlocked(level) {
			fill = tileUnlocked
		}
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), tileSize, tileSize, fill, false)
		if level == m.hovered {
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), tileSize, tileSize, 2, tileHover, false)
		}

		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", level), r.Min.X+tileSize/2-3, r.Min.Y+20)
		if rec, ok := m.progress.Best(level); ok && rec.Completed {
			ebitenutil.DebugPrintAt(screen, starString(rec.Stars), r.Min.X+tileSize/2-10, r.Min.Y+40)
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", rec.BestScore), r.Min.X+8, r.Min.Y+58)
		}
	}
}

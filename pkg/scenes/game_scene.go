package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/session"
	"github.com/decker502/slingshot/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 关卡场景
//
// 职责：
//   - 把指针手势投影到游戏平面后交给 Session
//   - 键盘命令：P 暂停/继续，R 重来，N 下一关，Esc 返回主菜单
//   - 消费 Session 事件：轨迹、特效、胜负结果（写入进度存档）
//   - 用调试图形绘制快照
type GameScene struct {
	session      *session.Session
	sceneManager *SceneManager
	progress     *game.ProgressManager

	camera  *utils.Camera
	pointer pointerTracker
	runID   uuid.UUID

	trajectory []mgl64.Vec3
	effects    []effect
	result     *game.Event // LevelWon / LevelLost
	newBest    bool
}

// NewGameScene 创建关卡场景并加载第 level 关
// 加载失败时返回错误，调用方保持原场景
func NewGameScene(s *session.Session, sm *SceneManager, progress *game.ProgressManager, level int) (*GameScene, error) {
	if s == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if progress == nil {
		progress = game.NewProgressManager(nil)
	}
	g := &GameScene{
		session:      s,
		sceneManager: sm,
		progress:     progress,
	}
	if err := s.StartLevel(level); err != nil {
		return nil, err
	}
	g.onLevelStarted()
	return g, nil
}

// onLevelStarted 新一局开始：重置相机和界面状态
func (g *GameScene) onLevelStarted() {
	st := g.session.State()
	if st == nil {
		return
	}
	g.runID = st.RunID
	g.trajectory = nil
	g.effects = g.effects[:0]
	g.result = nil
	g.newBest = false

	cam := st.Level.Camera
	g.camera = utils.NewCamera(cam.Position.ToVec(), cam.LookAt.ToVec(), ScreenWidth, ScreenHeight)
}

// Update 处理输入、推进会话、消费事件
func (g *GameScene) Update(deltaTime float64) {
	g.handleKeys()

	if g.session.State() != nil {
		pressed, x, y := utils.GetPointerState()
		for _, gs := range g.pointer.Update(pressed, float64(x), float64(y)) {
			pos, ok := g.camera.ScreenToWorld(gs.x, gs.y)
			if !ok {
				continue
			}
			g.session.HandleInput(game.InputEvent{Kind: gs.kind, Position: pos})
		}
		g.session.Update(deltaTime)
	}

	// 返回主菜单的事件在关卡卸载后才被取出
	g.handleEvents(g.session.DrainEvents())

	if st := g.session.State(); st != nil && !st.Paused {
		g.updateEffects(deltaTime)
	}
}

func (g *GameScene) handleKeys() {
	var cmd *game.Command
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if st := g.session.State(); st != nil && st.Paused {
			cmd = &game.Command{Type: game.CommandResume}
		} else {
			cmd = &game.Command{Type: game.CommandPause}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		cmd = &game.Command{Type: game.CommandRestart}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if g.result == nil || g.result.Type != game.EventLevelWon || !g.result.HasNextLevel {
			return
		}
		cmd = &game.Command{Type: game.CommandNextLevel}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		cmd = &game.Command{Type: game.CommandMainMenu}
	}
	if cmd == nil {
		return
	}
	if err := g.session.HandleCommand(*cmd); err != nil {
		log.Printf("[GameScene] Command %v failed: %v", cmd.Type, err)
	}
}

// handleEvents 丢弃上一局遗留的事件，其余按类型分发
func (g *GameScene) handleEvents(events []game.Event) {
	for _, e := range events {
		switch e.Type {
		case game.EventLevelStarted:
			g.onLevelStarted()
			continue
		case game.EventReturnedToMenu:
			if g.sceneManager != nil {
				g.sceneManager.ShowMenu()
			}
			return
		}
		if e.RunID != g.runID {
			continue
		}

		switch e.Type {
		case game.EventTrajectoryUpdated:
			g.trajectory = e.Points
		case game.EventTrajectoryHidden, game.EventBirdLaunched:
			g.trajectory = nil
		case game.EventEffect:
			g.addEffect(e)
		case game.EventLevelWon:
			result := e
			g.result = &result
			g.newBest = g.progress.RecordResult(e.LevelNumber, e.Score, e.Stars, true)
			g.save()
		case game.EventLevelLost:
			result := e
			g.result = &result
			g.progress.RecordResult(e.LevelNumber, e.Score, 0, false)
			g.save()
		}
	}
}

func (g *GameScene) save() {
	if err := g.progress.Save(); err != nil {
		log.Printf("[GameScene] Failed to save progress: %v", err)
	}
}

// SaveOnExit 窗口关闭时保存进度
func (g *GameScene) SaveOnExit() bool {
	return g.progress.Save() == nil
}

// Draw 绘制当前快照
func (g *GameScene) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	if snap == nil || g.camera == nil {
		return
	}
	if b := screen.Bounds(); b.Dx() > 0 && (b.Dx() != ScreenWidth || b.Dy() != ScreenHeight) {
		g.camera.Resize(b.Dx(), b.Dy())
	}

	drawBackground(screen, g.camera)
	g.drawEntities(screen, snap)
	g.drawSlingshot(screen, snap)
	g.drawTrajectory(screen)
	g.drawEffects(screen)
	g.drawHUD(screen, snap)
}

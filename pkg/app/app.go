// Package app 组装弹弓游戏：加载配置和关卡、创建会话与场景，并实现 ebiten.Game
//
// 调用 NewApp 之前必须先调用 embedded.Init() 注入嵌入数据。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/embedded"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/scenes"
	"github.com/decker502/slingshot/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 存档目录名
const AppName = "slingshot"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 直接进入的关卡编号，0 表示显示关卡选择界面
	Level int
	// GameplayPath 外部玩法参数文件，为空则使用嵌入的 data/gameplay.yaml
	GameplayPath string
}

// App 游戏应用，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	session      *session.Session
	verbose      bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// LoadGameplay 读取玩法参数：优先外部文件，其次嵌入文件
func LoadGameplay(path string) (*config.GameplayConfig, error) {
	if path != "" {
		return config.LoadGameplayConfig(path)
	}
	data, err := embedded.ReadFile("data/gameplay.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded gameplay config: %w", err)
	}
	return config.ParseGameplayConfig(data)
}

// LoadLevels 从嵌入数据加载全部关卡
func LoadLevels() (*game.LevelManager, error) {
	data, err := embedded.Sub("data")
	if err != nil {
		return nil, err
	}
	return game.LoadLevelManager(data, "levels")
}

// openProgress 打开进度存档，存储不可用时降级为仅内存
func openProgress() *game.ProgressManager {
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, progress will not be saved: %v", err)
		manager = nil
	}
	return game.NewProgressManager(manager)
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gp, err := LoadGameplay(cfg.GameplayPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}
	levels, err := LoadLevels()
	if err != nil {
		return nil, fmt.Errorf("关卡加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d levels", levels.Total())

	sess, err := session.New(gp, levels, nil)
	if err != nil {
		return nil, err
	}
	progress := openProgress()

	sceneManager := scenes.NewSceneManager()
	sceneManager.SetSceneFactory(func(level int) scenes.Scene {
		scene, err := scenes.NewGameScene(sess, sceneManager, progress, level)
		if err != nil {
			log.Printf("[App] Failed to start level %d: %v", level, err)
			return nil
		}
		return scene
	})
	sceneManager.SetMenuFactory(func() scenes.Scene {
		return scenes.NewMenuScene(sceneManager, progress, levels.Total())
	})

	if cfg.Level > 0 {
		if !sceneManager.LoadLevel(cfg.Level) {
			return nil, fmt.Errorf("level %d: %w", cfg.Level, config.ErrLevelNotFound)
		}
	} else {
		sceneManager.ShowMenu()
	}

	return &App{
		sceneManager: sceneManager,
		session:      sess,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 每个 tick 调用一次（60 TPS）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}

// GetSceneManager 返回场景管理器，用于退出时保存进度
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// Session 返回游戏会话
func (a *App) Session() *session.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

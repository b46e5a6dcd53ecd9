package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 一个画面（主菜单、关卡）
// 每个场景有独立的更新和绘制逻辑
type Scene interface {
	// Update 按经过的时间（秒）更新场景
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，窗口关闭时保存进度
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 960
	ScreenHeight = 540
)

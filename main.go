package main

import (
	"errors"
	"flag"
	"log"

	"github.com/decker502/slingshot/pkg/app"
	"github.com/decker502/slingshot/pkg/embedded"
	"github.com/decker502/slingshot/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	level := flag.Int("level", 0, "直接进入指定关卡（如 -level 3），0 显示关卡选择")
	gameplay := flag.String("gameplay", "", "外部玩法参数文件（默认使用内置 data/gameplay.yaml）")
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		Level:        *level,
		GameplayPath: *gameplay,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(scenes.ScreenWidth, scenes.ScreenHeight)
	ebiten.SetWindowTitle("Slingshot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	runErr := ebiten.RunGame(&closingGame{App: a})
	if !a.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] Progress was not saved on exit")
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}

// closingGame 拦截窗口关闭，先让 main 保存进度再退出
type closingGame struct {
	*app.App
}

func (g *closingGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return g.App.Update()
}

package main

import (
	"flag"
	"log"

	"github.com/decker502/splitcanvas/pkg/app"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	variantFlag = flag.String("variant", "", "Controller variant from data/canvas_config.yaml (default: last used)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	canvasApp, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Variant: *variantFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.CanvasWindowWidth, config.CanvasWindowHeight)
	ebiten.SetWindowTitle("Split Canvas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 窗口关闭后拆除控制器并保存设置
	defer canvasApp.Shutdown()

	if err := ebiten.RunGame(canvasApp); err != nil {
		log.Printf("[Main] RunGame error: %v", err)
	}
}

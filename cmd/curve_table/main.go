// curve_table 打印某个变体的透明度与缩放曲线
//
// 用于调整 data/canvas_config.yaml 时快速查看参数效果，不需要打开窗口。
//
// 用法：
//
//	go run ./cmd/curve_table --variant gentle --steps 20
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/systems"
	"github.com/decker502/splitcanvas/pkg/utils"
)

var (
	configFlag  = flag.String("config", config.CanvasConfigPath, "Path to the canvas config YAML")
	variantFlag = flag.String("variant", "", "Variant to print (default: the file's default variant)")
	stepsFlag   = flag.Int("steps", 10, "Number of progress steps per side")
)

func main() {
	flag.Parse()

	data, err := os.ReadFile(*configFlag)
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}
	configs, err := config.ParseCanvasConfig(data)
	if err != nil {
		log.Fatalf("解析配置失败: %v", err)
	}
	cfg, err := configs.Get(*variantFlag)
	if err != nil {
		log.Fatalf("变体不存在: %v (可用: %v)", err, configs.ListVariants())
	}
	if *stepsFlag <= 0 {
		log.Fatalf("--steps 必须为正数")
	}

	cam := utils.NewIndicatorCamera(config.CanvasWindowWidth, config.CanvasWindowHeight)
	snap, ok := utils.ViewportAtDepth(cam, cfg.Depth)
	if !ok {
		log.Fatalf("深度 %v 位于摄像机之后", cfg.Depth)
	}

	curve := systems.NewSideCurveMapper(cfg)
	fill := systems.FillScale(snap)

	fmt.Printf("variant %q  base=%.3f fill=%.3f (viewport %.2fx%.2f at depth %.2f)\n",
		cfg.Name, cfg.BaseScale, fill, snap.Width, snap.Height, cfg.Depth)
	fmt.Printf("%8s  %6s  %8s  %8s  %8s\n", "progress", "side", "eased", "opacity", "scale")

	for i := -*stepsFlag; i <= *stepsFlag; i++ {
		p := float64(i) / float64(*stepsFlag)
		side := components.SideRight
		if p < 0 {
			side = components.SideLeft
		}
		eased := curve.Eased(p, side)
		scale := systems.DepthScaleAt(cfg.BaseScale, fill, cfg.CurvePower, eased)
		fmt.Printf("%+8.3f  %6s  %8.4f  %8.4f  %8.4f\n", p, side, eased, curve.Opacity(p, side), scale)
	}
}

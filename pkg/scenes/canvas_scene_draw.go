package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.NRGBA{R: 12, G: 14, B: 20, A: 255}
	paneColors      = [len(components.Sides)]color.NRGBA{
		components.SideLeft:  {R: 52, G: 108, B: 196, A: 255},
		components.SideRight: {R: 214, G: 120, B: 48, A: 255},
	}
	rowColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	indicatorColor = color.NRGBA{R: 240, G: 240, B: 255, A: 255}
)

// withAlpha 返回按透明度缩放 alpha 的颜色
func withAlpha(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(float64(c.A) * utils.Clamp(opacity, 0, 1))
	return c
}

// paneRect 返回某侧面板在当前模式下的屏幕区域
// 独占模式下激活侧铺满整个窗口
func paneRect(side components.Side, mode components.Mode) (x, y, w, h float64) {
	width := float64(config.CanvasWindowWidth)
	height := float64(config.CanvasWindowHeight)
	if _, exclusive := mode.Exclusive(); exclusive {
		return 0, 0, width, height
	}
	if side == components.SideLeft {
		return 0, 0, width / 2, height
	}
	return width / 2, 0, width / 2, height
}

// Draw 绘制场景
func (s *CanvasScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	mode := s.frame.Mode()
	for _, side := range components.Sides {
		presented := s.frame.Presented(side)
		if active, ok := mode.Exclusive(); ok && active != side {
			continue
		}
		s.drawPane(screen, side, presented)
	}

	for _, side := range components.Sides {
		s.drawIndicator(screen, side)
	}

	if s.showDebug {
		s.drawDebug(screen)
	}
}

// drawPane 绘制面板底色、内容行
// 静止状态下两侧都以 PaneDimOpacity 显示
func (s *CanvasScene) drawPane(screen *ebiten.Image, side components.Side, presented float64) {
	x, y, w, h := paneRect(side, s.frame.Mode())
	opacity := max(config.PaneDimOpacity, presented)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(paneColors[side], opacity), false)

	// 只有可交互的面板显示内容轨道
	if !s.frame.Interaction.Interactive(side) {
		return
	}
	offset := s.rails[side].Offset()
	for i := 0; i < config.PaneRowCount; i++ {
		rowY := y + float64(i)*config.PaneRowHeight - offset
		if rowY+config.PaneRowHeight < y || rowY > y+h {
			continue
		}
		vector.DrawFilledRect(screen, float32(x+24), float32(rowY+config.PaneRowHeight-1), float32(w-48), 1, rowColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s #%02d", side, i+1), int(x)+32, int(rowY)+10)
	}
}

// drawIndicator 绘制指示器圆环
// 半径为 1 个世界单位的圆按缩放后投影到屏幕
func (s *CanvasScene) drawIndicator(screen *ebiten.Image, side components.Side) {
	if !s.snapOK {
		return
	}
	ppu := utils.PixelsPerWorldUnit(s.snapshot, config.CanvasWindowHeight)
	radius := s.scales[side] * ppu

	x, y, w, h := paneRect(side, s.frame.Mode())
	if _, exclusive := s.frame.Mode().Exclusive(); !exclusive {
		// 两侧同时显示时指示器放在各自半屏中心
		x, w = float64(side)*float64(config.CanvasWindowWidth)/2, float64(config.CanvasWindowWidth)/2
	}
	cx, cy := x+w/2, y+h/2

	alpha := 0.25 + 0.75*s.frame.Opacity.Of(side)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(radius), 2, withAlpha(indicatorColor, alpha), true)
}

// drawDebug 绘制调试信息
func (s *CanvasScene) drawDebug(screen *ebiten.Image) {
	f := s.frame
	lines := []string{
		fmt.Sprintf("variant: %s", s.controller.Config().Name),
		fmt.Sprintf("target: %+.3f  displayed: %+.3f", f.Target, f.Displayed),
		fmt.Sprintf("opacity L/R: %.3f / %.3f", f.Opacity.Left, f.Opacity.Right),
		fmt.Sprintf("mode: %s  interactive L/R: %v / %v", f.Mode(), f.Interaction.LeftInteractive, f.Interaction.RightInteractive),
		fmt.Sprintf("scale L/R: %.3f / %.3f", s.scales[components.SideLeft], s.scales[components.SideRight]),
		fmt.Sprintf("pass-through: %d", s.passThrough),
		fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS()),
		"[0] reset  [V] variant  [D] debug  [F11] fullscreen",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}

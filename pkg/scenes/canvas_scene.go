package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/game"
	"github.com/decker502/splitcanvas/pkg/systems"
	"github.com/decker502/splitcanvas/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// CanvasScene 双面板画布的展示层
//
// 每帧：轮询输入 → 交给控制器 → 放行的事件转发给独占面板的滚动轨道 →
// 推进控制器 → 从摄像机生成深度快照并计算指示器缩放。
// 场景只读取控制器输出，不写回核心状态。
type CanvasScene struct {
	configs  *config.CanvasConfigManager
	settings *game.SettingsManager

	controller *systems.CanvasController
	touch      *utils.TouchTracker
	camera     utils.PerspectiveCamera
	rails      [len(components.Sides)]*PaneRail

	frame    systems.FrameState
	scales   [len(components.Sides)]float64
	snapshot components.ViewportSnapshot
	snapOK   bool

	events      []components.InputEvent
	passThrough int
	showDebug   bool
}

// NewCanvasScene 创建画布场景
//
// 参数：
//   - configs: 变体配置管理器
//   - settings: 设置管理器（可为降级模式）
//   - variant: 启动变体名称，空字符串使用设置或配置文件的默认值
func NewCanvasScene(configs *config.CanvasConfigManager, settings *game.SettingsManager, variant string) (*CanvasScene, error) {
	if variant == "" {
		// 保存的变体可能已从配置文件中移除
		saved := settings.GetSettings().Variant
		if _, err := configs.Get(saved); err == nil {
			variant = saved
		} else {
			log.Printf("[CanvasScene] Saved variant %q unavailable, using default", saved)
		}
	}

	s := &CanvasScene{
		configs:   configs,
		settings:  settings,
		touch:     utils.NewTouchTracker(),
		camera:    utils.NewIndicatorCamera(config.CanvasWindowWidth, config.CanvasWindowHeight),
		showDebug: settings.GetSettings().ShowDebug,
	}
	for i := range s.rails {
		s.rails[i] = NewPaneRail(config.PaneRowHeight*config.PaneRowCount, config.CanvasWindowHeight, ebiten.TPS())
	}

	if err := s.useVariant(variant); err != nil {
		return nil, err
	}
	return s, nil
}

// useVariant 用指定变体重建控制器
// 旧控制器被拆除，进度回到静止状态
func (s *CanvasScene) useVariant(name string) error {
	cfg, err := s.configs.Get(name)
	if err != nil {
		return fmt.Errorf("failed to select variant: %w", err)
	}
	controller, err := systems.NewCanvasController(cfg)
	if err != nil {
		return err
	}
	controller.SetViewportHeight(config.CanvasWindowHeight)

	if s.controller != nil {
		s.controller.Detach()
	}
	s.controller = controller
	s.frame = controller.Frame()
	s.touch.Reset()
	for _, r := range s.rails {
		r.Reset()
	}
	for _, side := range components.Sides {
		s.scales[side] = cfg.BaseScale
	}

	s.settings.SetVariant(cfg.Name)
	log.Printf("[CanvasScene] Using variant %q", cfg.Name)
	return nil
}

// Update 更新场景
func (s *CanvasScene) Update(deltaTime float64) {
	s.handleKeys()

	s.events = utils.AppendWheelEvents(s.events[:0])
	s.events = s.touch.Poll(s.events)
	for _, ev := range s.events {
		if !s.controller.HandleEvent(ev) {
			s.forwardPassThrough(s.controller.LastEventPixels())
		}
	}

	s.frame = s.controller.Advance(deltaTime, nil)

	s.snapshot, s.snapOK = utils.ViewportAtDepth(s.camera, s.controller.Config().Depth)
	var snap *components.ViewportSnapshot
	if s.snapOK {
		snap = &s.snapshot
	}
	for _, side := range components.Sides {
		s.scales[side] = s.controller.Scale(side, snap)
	}

	for _, r := range s.rails {
		r.Update()
	}
}

// forwardPassThrough 把控制器放行的滚动交给独占面板
// ModeBoth 下没有可交互的面板，事件被丢弃
func (s *CanvasScene) forwardPassThrough(pixels float64) {
	if pixels == 0 {
		return
	}
	side, ok := s.frame.Mode().Exclusive()
	if !ok {
		return
	}
	s.passThrough++
	s.rails[side].Scroll(pixels)
}

// handleKeys 处理快捷键
func (s *CanvasScene) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		s.controller.ResetTarget()
		log.Printf("[CanvasScene] Target reset to rest")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		next := s.configs.NextVariant(s.controller.Config().Name)
		if err := s.useVariant(next); err != nil {
			log.Printf("[CanvasScene] Warning: %v", err)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		s.showDebug = !s.showDebug
		s.settings.SetShowDebug(s.showDebug)
	}
}

// Frame 返回最近一帧控制器输出
func (s *CanvasScene) Frame() systems.FrameState {
	return s.frame
}

// Teardown 拆除控制器并保存设置
func (s *CanvasScene) Teardown() bool {
	s.controller.Detach()
	if err := s.settings.Save(); err != nil {
		log.Printf("[CanvasScene] Warning: failed to save settings: %v", err)
		return false
	}
	return true
}

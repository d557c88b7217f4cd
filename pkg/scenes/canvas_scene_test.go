package scenes

import (
	"os"
	"testing"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/game"
)

// newTestScene 用仓库内的配置文件和内存设置创建场景
func newTestScene(t *testing.T, variant string) (*CanvasScene, *game.SettingsManager) {
	t.Helper()

	data, err := os.ReadFile("../../data/canvas_config.yaml")
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	configs, err := config.ParseCanvasConfig(data)
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	settings, err := game.NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("failed to create settings: %v", err)
	}

	s, err := NewCanvasScene(configs, settings, variant)
	if err != nil {
		t.Fatalf("NewCanvasScene() error = %v", err)
	}
	return s, settings
}

// TestNewCanvasScene 场景以静止状态启动并记录变体
func TestNewCanvasScene(t *testing.T) {
	s, settings := newTestScene(t, "gentle")

	if got := s.controller.Config().Name; got != "gentle" {
		t.Errorf("variant = %q, want gentle", got)
	}
	if settings.GetSettings().Variant != "gentle" {
		t.Errorf("settings variant = %q, want gentle", settings.GetSettings().Variant)
	}
	if s.Frame().Mode() != components.ModeBoth {
		t.Errorf("initial mode = %v, want both", s.Frame().Mode())
	}
	for _, side := range components.Sides {
		if s.scales[side] != s.controller.Config().BaseScale {
			t.Errorf("initial scale[%v] = %v, want base", side, s.scales[side])
		}
	}
}

// TestNewCanvasSceneSavedVariantFallback 保存的变体不存在时使用默认变体
func TestNewCanvasSceneSavedVariantFallback(t *testing.T) {
	data, err := os.ReadFile("../../data/canvas_config.yaml")
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	configs, err := config.ParseCanvasConfig(data)
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}
	settings, _ := game.NewSettingsManager(nil)
	settings.SetVariant("removed-variant")

	s, err := NewCanvasScene(configs, settings, "")
	if err != nil {
		t.Fatalf("NewCanvasScene() error = %v", err)
	}
	if got := s.controller.Config().Name; got != configs.DefaultVariant() {
		t.Errorf("variant = %q, want default %q", got, configs.DefaultVariant())
	}

	// 显式指定不存在的变体是错误
	if _, err := NewCanvasScene(configs, settings, "missing"); err == nil {
		t.Error("expected error for unknown explicit variant")
	}
}

// TestForwardPassThrough 放行的滚动只转发给独占面板
func TestForwardPassThrough(t *testing.T) {
	s, _ := newTestScene(t, "default")

	// ModeBoth：丢弃
	s.forwardPassThrough(120)
	if s.passThrough != 0 {
		t.Errorf("passThrough = %d in both mode, want 0", s.passThrough)
	}

	// 推到右侧独占
	if !s.controller.HandleWheel(-1000, components.DeltaPixel) {
		t.Fatal("first wheel event should be consumed")
	}
	for i := 0; i < 120; i++ {
		s.frame = s.controller.Advance(1.0/60, nil)
	}
	if s.frame.Mode() != components.ModeRight {
		t.Fatalf("mode = %v, want right", s.frame.Mode())
	}

	// 已在边界：事件不被消费，交给右侧轨道
	if s.controller.HandleWheel(-100, components.DeltaPixel) {
		t.Fatal("wheel at boundary should pass through")
	}
	s.forwardPassThrough(s.controller.LastEventPixels())
	if s.passThrough != 1 {
		t.Errorf("passThrough = %d, want 1", s.passThrough)
	}
	// 向上滚动被限制在顶部
	if s.rails[components.SideRight].Target() != 0 {
		t.Errorf("right rail target = %v, want 0 (clamped)", s.rails[components.SideRight].Target())
	}

	s.forwardPassThrough(0)
	if s.passThrough != 1 {
		t.Errorf("zero delta should not be forwarded")
	}
}

// TestUseVariantDetachesPrevious 切换变体会拆除旧控制器并重置进度
func TestUseVariantDetachesPrevious(t *testing.T) {
	s, settings := newTestScene(t, "default")
	old := s.controller

	old.HandleWheel(300, components.DeltaPixel)
	s.rails[components.SideLeft].Scroll(200)

	if err := s.useVariant("orbital"); err != nil {
		t.Fatalf("useVariant() error = %v", err)
	}
	if !old.IsDetached() {
		t.Error("previous controller should be detached")
	}
	if s.controller.Frame().Target != 0 {
		t.Errorf("new controller target = %v, want 0", s.controller.Frame().Target)
	}
	if s.rails[components.SideLeft].Target() != 0 {
		t.Error("rails should be reset")
	}
	if settings.GetSettings().Variant != "orbital" {
		t.Errorf("settings variant = %q, want orbital", settings.GetSettings().Variant)
	}

	if err := s.useVariant("missing"); err == nil {
		t.Error("expected error for unknown variant")
	}
	if s.controller.Config().Name != "orbital" {
		t.Error("failed switch must keep the current controller")
	}
}

// TestCanvasSceneTeardown 拆除场景后控制器不再消费事件
func TestCanvasSceneTeardown(t *testing.T) {
	s, _ := newTestScene(t, "")

	if !s.Teardown() {
		t.Error("Teardown() should succeed with in-memory settings")
	}
	if s.controller.HandleWheel(100, components.DeltaPixel) {
		t.Error("detached controller should not consume events")
	}
}

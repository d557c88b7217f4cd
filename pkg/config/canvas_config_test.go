package config

import (
	"errors"
	"math"
	"testing"
)

// TestDefaultCanvasConfigValid 默认配置必须通过校验
func TestDefaultCanvasConfigValid(t *testing.T) {
	if err := DefaultCanvasConfig().Validate(); err != nil {
		t.Fatalf("DefaultCanvasConfig().Validate() = %v, want nil", err)
	}
}

// TestCanvasConfigValidate 测试各字段的约束
func TestCanvasConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *CanvasConfig)
		wantField string
	}{
		{"滞回阈值相等", func(c *CanvasConfig) { c.Right.Off = c.Right.On }, "right.off"},
		{"滞回阈值反转", func(c *CanvasConfig) { c.Left.Off = 0.9; c.Left.On = 0.8 }, "left.off"},
		{"死区等于1", func(c *CanvasConfig) { c.DeadZone = 1 }, "dead_zone"},
		{"死区为负", func(c *CanvasConfig) { c.DeadZone = -0.1 }, "dead_zone"},
		{"平滑系数为1", func(c *CanvasConfig) { c.Smooth = 1 }, "smooth"},
		{"平滑系数为0", func(c *CanvasConfig) { c.Smooth = 0 }, "smooth"},
		{"极性非法", func(c *CanvasConfig) { c.Polarity = 2 }, "polarity"},
		{"格数为0", func(c *CanvasConfig) { c.TicksToMax = 0 }, "ticks_to_max"},
		{"格距为负", func(c *CanvasConfig) { c.NotchSize = -1 }, "notch_size"},
		{"缓入指数为0", func(c *CanvasConfig) { c.EasePower = 0 }, "ease_power"},
		{"曲线指数为负", func(c *CanvasConfig) { c.CurvePower = -1 }, "curve_power"},
		{"基础缩放为0", func(c *CanvasConfig) { c.BaseScale = 0 }, "base_scale"},
		{"NaN", func(c *CanvasConfig) { c.Smooth = math.NaN() }, "smooth"},
		{"无穷大", func(c *CanvasConfig) { c.Depth = math.Inf(-1) }, "depth"},
		{"开启阈值超过1", func(c *CanvasConfig) { c.Left.On = 1.2 }, "left.on"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCanvasConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = false, err = %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error is not *ConfigError: %T", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if cfgErr.Variant != "default" {
				t.Errorf("Variant = %q, want default", cfgErr.Variant)
			}
		})
	}
}

// TestCanvasConfigValidateEdges 边界上的合法值
func TestCanvasConfigValidateEdges(t *testing.T) {
	cfg := DefaultCanvasConfig()
	cfg.DeadZone = 0
	cfg.Polarity = -1
	cfg.Left = HysteresisConfig{On: 1, Off: 0}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestApplyDefaults 零值字段填充默认值，死区保持 0
func TestApplyDefaults(t *testing.T) {
	cfg := CanvasConfig{Name: "sparse", Smooth: 0.5}
	cfg.ApplyDefaults()

	def := DefaultCanvasConfig()
	if cfg.Smooth != 0.5 {
		t.Errorf("Smooth = %v, want 0.5 (explicit value kept)", cfg.Smooth)
	}
	if cfg.TicksToMax != def.TicksToMax || cfg.NotchSize != def.NotchSize {
		t.Errorf("TicksToMax/NotchSize = %v/%v, want defaults", cfg.TicksToMax, cfg.NotchSize)
	}
	if cfg.Polarity != 1 {
		t.Errorf("Polarity = %v, want 1", cfg.Polarity)
	}
	if cfg.DeadZone != 0 {
		t.Errorf("DeadZone = %v, want 0", cfg.DeadZone)
	}
	if cfg.Left != def.Left || cfg.Right != def.Right {
		t.Errorf("hysteresis = %+v/%+v, want defaults", cfg.Left, cfg.Right)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after ApplyDefaults = %v", err)
	}
}

// TestConfigErrorMessage 错误信息包含变体与字段
func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Variant: "gentle", Field: "dead_zone", Value: 1, Reason: "must be in [0, 1)"}
	want := `invalid canvas config: variant "gentle": dead_zone = 1 (must be in [0, 1))`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig 所有配置校验错误的哨兵错误
// 调用者可使用 errors.Is(err, config.ErrInvalidConfig) 判断
var ErrInvalidConfig = errors.New("invalid canvas config")

// ConfigError 描述具体哪个字段违反了约束
type ConfigError struct {
	Variant string  // 配置变体名称（可能为空）
	Field   string  // 字段名（yaml 键名）
	Value   float64 // 实际值
	Reason  string  // 约束说明
}

func (e *ConfigError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("%v: variant %q: %s = %v (%s)", ErrInvalidConfig, e.Variant, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%v: %s = %v (%s)", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Unwrap 让 errors.Is 能识别 ErrInvalidConfig
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// HysteresisConfig 单侧面板的滞回阈值
// 透明度 > On 时进入可交互，< Off 时退出，中间保持原状态
type HysteresisConfig struct {
	On  float64 `yaml:"on"`
	Off float64 `yaml:"off"`
}

// CanvasConfig 双面板画布控制器的全部常量
// 构造后不可修改，控制器运行期间不会重新读取
type CanvasConfig struct {
	Name string `yaml:"name"`

	// 输入积分
	TicksToMax float64 `yaml:"ticks_to_max"` // 走完 [-1, 1] 需要的滚轮格数
	NotchSize  float64 `yaml:"notch_size"`   // 一格对应的像素距离
	Polarity   float64 `yaml:"polarity"`     // 1 或 -1，翻转方向
	Smooth     float64 `yaml:"smooth"`       // 60Hz 下每帧的保留比例，(0, 1)

	// 透明度曲线
	DeadZone   float64 `yaml:"dead_zone"`   // [0, 1)，死区内透明度恒为 0
	EasePower  float64 `yaml:"ease_power"`  // 缓入指数
	CurvePower float64 `yaml:"curve_power"` // 第二级指数，同时用于深度缩放

	// 交互滞回
	Left  HysteresisConfig `yaml:"left"`
	Right HysteresisConfig `yaml:"right"`

	// 深度缩放
	BaseScale float64 `yaml:"base_scale"` // 指示器的初始缩放
	Depth     float64 `yaml:"depth"`      // 指示器所在的世界深度（z 坐标）
}

// Hysteresis 按侧返回滞回配置
// right 为 true 时返回右侧配置
func (c CanvasConfig) Hysteresis(right bool) HysteresisConfig {
	if right {
		return c.Right
	}
	return c.Left
}

// DefaultCanvasConfig 返回默认配置
// 与 data/canvas_config.yaml 中的 default 变体一致
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		Name:       "default",
		TicksToMax: 8,
		NotchSize:  100,
		Polarity:   1,
		Smooth:     0.85,
		DeadZone:   0.02,
		EasePower:  1.1,
		CurvePower: 1.1,
		Left:       HysteresisConfig{On: 0.85, Off: 0.70},
		Right:      HysteresisConfig{On: 0.85, Off: 0.70},
		BaseScale:  0.35,
		Depth:      0,
	}
}

// ApplyDefaults 为零值字段填充默认值
// DeadZone 和 Depth 的零值是合法配置，不会被覆盖
func (c *CanvasConfig) ApplyDefaults() {
	def := DefaultCanvasConfig()
	if c.TicksToMax == 0 {
		c.TicksToMax = def.TicksToMax
	}
	if c.NotchSize == 0 {
		c.NotchSize = def.NotchSize
	}
	if c.Polarity == 0 {
		c.Polarity = def.Polarity
	}
	if c.Smooth == 0 {
		c.Smooth = def.Smooth
	}
	if c.EasePower == 0 {
		c.EasePower = def.EasePower
	}
	if c.CurvePower == 0 {
		c.CurvePower = def.CurvePower
	}
	if c.Left == (HysteresisConfig{}) {
		c.Left = def.Left
	}
	if c.Right == (HysteresisConfig{}) {
		c.Right = def.Right
	}
	if c.BaseScale == 0 {
		c.BaseScale = def.BaseScale
	}
}

// Validate 校验配置约束
//
// 返回：
//   - error: 第一个违反约束的字段，类型为 *ConfigError；全部合法时返回 nil
func (c CanvasConfig) Validate() error {
	fail := func(field string, value float64, reason string) error {
		return &ConfigError{Variant: c.Name, Field: field, Value: value, Reason: reason}
	}

	values := []struct {
		field string
		value float64
	}{
		{"ticks_to_max", c.TicksToMax},
		{"notch_size", c.NotchSize},
		{"polarity", c.Polarity},
		{"smooth", c.Smooth},
		{"dead_zone", c.DeadZone},
		{"ease_power", c.EasePower},
		{"curve_power", c.CurvePower},
		{"left.on", c.Left.On},
		{"left.off", c.Left.Off},
		{"right.on", c.Right.On},
		{"right.off", c.Right.Off},
		{"base_scale", c.BaseScale},
		{"depth", c.Depth},
	}
	for _, v := range values {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fail(v.field, v.value, "must be finite")
		}
	}

	if c.TicksToMax <= 0 {
		return fail("ticks_to_max", c.TicksToMax, "must be > 0")
	}
	if c.NotchSize <= 0 {
		return fail("notch_size", c.NotchSize, "must be > 0")
	}
	if c.Polarity != 1 && c.Polarity != -1 {
		return fail("polarity", c.Polarity, "must be 1 or -1")
	}
	if c.Smooth <= 0 || c.Smooth >= 1 {
		return fail("smooth", c.Smooth, "must be in (0, 1)")
	}
	if c.DeadZone < 0 || c.DeadZone >= 1 {
		return fail("dead_zone", c.DeadZone, "must be in [0, 1)")
	}
	if c.EasePower <= 0 {
		return fail("ease_power", c.EasePower, "must be > 0")
	}
	if c.CurvePower <= 0 {
		return fail("curve_power", c.CurvePower, "must be > 0")
	}
	for _, side := range []struct {
		name string
		h    HysteresisConfig
	}{{"left", c.Left}, {"right", c.Right}} {
		if side.h.On <= 0 || side.h.On > 1 {
			return fail(side.name+".on", side.h.On, "must be in (0, 1]")
		}
		if side.h.Off < 0 {
			return fail(side.name+".off", side.h.Off, "must be >= 0")
		}
		if side.h.Off >= side.h.On {
			return fail(side.name+".off", side.h.Off, fmt.Sprintf("must be < %s.on (%v)", side.name, side.h.On))
		}
	}
	if c.BaseScale <= 0 {
		return fail("base_scale", c.BaseScale, "must be > 0")
	}
	return nil
}

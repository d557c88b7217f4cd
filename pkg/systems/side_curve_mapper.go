package systems

import (
	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/utils"
)

const (
	// OpacityLowEdge smoothstep 下沿，曲线值低于此值时透明度为 0
	OpacityLowEdge = 0.75
	// OpacityHighEdge smoothstep 上沿，曲线值高于此值时透明度为 1
	OpacityHighEdge = 0.97
)

// SideCurveMapper 进度 → 单侧透明度的纯函数
//
// 计算步骤：
//  1. raw = max(0, p)（右侧）或 max(0, -p)（左侧）
//  2. unit = clamp((raw - deadZone) / (1 - deadZone), 0, 1)
//  3. eased = unit ^ easePower
//  4. curved = eased ^ curvePower
//  5. opacity = smoothstep(0.75, 0.97, curved)
//
// 没有内部状态，相同输入得到完全相同的输出。
type SideCurveMapper struct {
	deadZone   float64
	easePower  float64
	curvePower float64
}

// NewSideCurveMapper 创建曲线映射器
func NewSideCurveMapper(cfg config.CanvasConfig) SideCurveMapper {
	return SideCurveMapper{
		deadZone:   cfg.DeadZone,
		easePower:  cfg.EasePower,
		curvePower: cfg.CurvePower,
	}
}

// Raw 取进度中属于该侧的半区
// 非有限的 p 视为 0
func (m SideCurveMapper) Raw(p float64, side components.Side) float64 {
	if !utils.IsFinite(p) {
		return 0
	}
	p = utils.Clamp(p, -1, 1)
	if side == components.SideRight {
		return max(0, p)
	}
	return max(0, -p)
}

// Eased 返回第 1~3 步的结果（死区 + 缓入），范围 [0, 1]
// 深度缩放使用同一个值
func (m SideCurveMapper) Eased(p float64, side components.Side) float64 {
	raw := m.Raw(p, side)
	if raw <= m.deadZone {
		return 0
	}
	unit := utils.Clamp((raw-m.deadZone)/(1-m.deadZone), 0, 1)
	return utils.EaseInPow(unit, m.easePower)
}

// Opacity 返回该侧的曲线透明度
func (m SideCurveMapper) Opacity(p float64, side components.Side) float64 {
	eased := m.Eased(p, side)
	if eased == 0 {
		return 0
	}
	curved := utils.EaseInPow(eased, m.curvePower)
	return utils.Smoothstep(OpacityLowEdge, OpacityHighEdge, curved)
}

// Map 同时计算两侧透明度
func (m SideCurveMapper) Map(p float64) components.SideOpacity {
	return components.SideOpacity{
		Left:  m.Opacity(p, components.SideLeft),
		Right: m.Opacity(p, components.SideRight),
	}
}

package systems

import (
	"math"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/utils"
)

// FillDivisor 可见区域最大边长除以该值得到"填满画面"的缩放
// 半径为 1 的圆按此缩放恰好铺满画面而不溢出
const FillDivisor = 1.5

// FillScale 由快照计算填满画面的缩放
func FillScale(snap components.ViewportSnapshot) float64 {
	return math.Max(snap.Width, snap.Height) / FillDivisor
}

// DepthScaleAt 缩放曲线
//
// scale = base * (fill/base) ^ (easedT ^ curvePower)
// easedT = 0 时精确返回 base，easedT = 1 时精确返回 fill。
func DepthScaleAt(base, fill, curvePower, easedT float64) float64 {
	t := utils.Clamp(easedT, 0, 1)
	switch t {
	case 0:
		return base
	case 1:
		return fill
	}
	return base * math.Pow(fill/base, math.Pow(t, curvePower))
}

// DepthScaleMapper 把每侧的缓动进度映射为指示器缩放
//
// 快照缺失或非法时不计算，保留该侧上一次的结果（初始为 base）。
type DepthScaleMapper struct {
	base       float64
	curvePower float64
	last       [len(components.Sides)]float64
}

// NewDepthScaleMapper 创建深度缩放映射器
func NewDepthScaleMapper(cfg config.CanvasConfig) *DepthScaleMapper {
	m := &DepthScaleMapper{
		base:       cfg.BaseScale,
		curvePower: cfg.CurvePower,
	}
	for i := range m.last {
		m.last[i] = cfg.BaseScale
	}
	return m
}

// Scale 计算某侧的缩放
func (m *DepthScaleMapper) Scale(side components.Side, easedT float64, snap *components.ViewportSnapshot) float64 {
	if side < 0 || int(side) >= len(m.last) {
		return m.base
	}
	if !snap.Valid() {
		return m.last[side]
	}
	if !utils.IsFinite(easedT) {
		easedT = 0
	}
	m.last[side] = DepthScaleAt(m.base, FillScale(*snap), m.curvePower, easedT)
	return m.last[side]
}

// Last 返回某侧最近一次的缩放
func (m *DepthScaleMapper) Last(side components.Side) float64 {
	if side < 0 || int(side) >= len(m.last) {
		return m.base
	}
	return m.last[side]
}

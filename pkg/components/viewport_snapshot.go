package components

import "math"

// ViewportSnapshot 某一深度平面上的可见区域
// 由渲染侧每帧生成，核心逻辑只读
type ViewportSnapshot struct {
	// Width, Height 该深度处可见区域的尺寸（世界单位）
	Width  float64
	Height float64

	// Depth 快照对应的世界深度（z 坐标）
	Depth float64

	// Distance 摄像机到该深度平面的距离（世界单位）
	Distance float64
}

// Valid 判断快照是否可用于计算缩放
// 尺寸必须为有限正数
func (v *ViewportSnapshot) Valid() bool {
	if v == nil {
		return false
	}
	for _, f := range []float64{v.Width, v.Height} {
		if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
			return false
		}
	}
	return true
}

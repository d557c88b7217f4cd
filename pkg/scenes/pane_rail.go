package scenes

import (
	"github.com/charmbracelet/harmonica"
	"github.com/decker502/splitcanvas/pkg/utils"
)

// PaneRail 面板内容的滚动轨道
//
// 画布控制器放行（未消费）的滚动会转发到当前独占面板的轨道上，
// 轨道用弹簧平滑到目标偏移。
type PaneRail struct {
	spring    harmonica.Spring
	offset    float64
	velocity  float64
	target    float64
	maxOffset float64
}

// NewPaneRail 创建滚动轨道
//
// 参数：
//   - contentHeight: 内容总高度（像素）
//   - viewHeight: 可见区域高度（像素）
//   - tps: 每秒更新次数
func NewPaneRail(contentHeight, viewHeight float64, tps int) *PaneRail {
	return &PaneRail{
		spring:    harmonica.NewSpring(harmonica.FPS(tps), 8.0, 0.9),
		maxOffset: max(0, contentHeight-viewHeight),
	}
}

// Scroll 追加滚动距离（像素，向下为正）
func (r *PaneRail) Scroll(pixels float64) {
	if !utils.IsFinite(pixels) {
		return
	}
	r.target = utils.Clamp(r.target+pixels, 0, r.maxOffset)
}

// Update 推进一次弹簧
func (r *PaneRail) Update() {
	r.offset, r.velocity = r.spring.Update(r.offset, r.velocity, r.target)
}

// Reset 回到顶部（立即）
func (r *PaneRail) Reset() {
	r.offset, r.velocity, r.target = 0, 0, 0
}

// Offset 当前偏移（像素）
func (r *PaneRail) Offset() float64 {
	return r.offset
}

// Target 目标偏移（像素）
func (r *PaneRail) Target() float64 {
	return r.target
}

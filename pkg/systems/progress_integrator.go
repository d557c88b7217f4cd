package systems

import (
	"math"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"github.com/decker502/splitcanvas/pkg/utils"
)

const (
	// LineHeightPixels 滚轮 line 模式下一行对应的像素数
	LineHeightPixels = 16.0

	// boundaryEpsilon 判断 Target 是否已到达边界的容差
	boundaryEpsilon = 1e-6
)

// ProgressIntegrator 把滚轮/触摸增量积分为 [-1, 1] 内的进度值
//
// Target 由输入事件同步修改，Displayed 在每帧 Update 中向 Target 指数逼近。
// 事件处理函数返回是否"消费"了事件：未消费的事件应交还宿主做默认处理
// （例如滚动面板内容），这发生在 Target 已经贴边且增量继续指向边界外时。
type ProgressIntegrator struct {
	ticksToMax float64
	notchSize  float64
	polarity   float64
	smooth     float64

	progress       components.ProgressComponent
	viewportHeight float64

	// 单指拖动状态
	touching   bool
	touchID    int
	lastTouchY float64

	// 最近一次事件换算出的像素增量（向下为正），未消费时供宿主转发
	lastPixels float64
}

// NewProgressIntegrator 创建进度积分器
// cfg 必须已通过 Validate()
func NewProgressIntegrator(cfg config.CanvasConfig) *ProgressIntegrator {
	return &ProgressIntegrator{
		ticksToMax:     cfg.TicksToMax,
		notchSize:      cfg.NotchSize,
		polarity:       cfg.Polarity,
		smooth:         cfg.Smooth,
		viewportHeight: config.CanvasWindowHeight,
	}
}

// SetViewportHeight 设置 page 模式的换算高度（像素）
// 非法值被忽略
func (pi *ProgressIntegrator) SetViewportHeight(h float64) {
	if utils.IsFinite(h) && h > 0 {
		pi.viewportHeight = h
	}
}

// Progress 返回当前进度快照
func (pi *ProgressIntegrator) Progress() components.ProgressComponent {
	return pi.progress
}

// Target 返回目标进度
func (pi *ProgressIntegrator) Target() float64 {
	return pi.progress.Target
}

// Displayed 返回平滑后的显示进度
func (pi *ProgressIntegrator) Displayed() float64 {
	return pi.progress.Displayed
}

// LastPixels 返回最近一次处理的事件的像素增量
func (pi *ProgressIntegrator) LastPixels() float64 {
	return pi.lastPixels
}

// Handle 分发输入事件
//
// 返回：
//   - bool: 事件是否被消费（true 时宿主应阻止默认行为）
func (pi *ProgressIntegrator) Handle(ev components.InputEvent) bool {
	switch ev.Kind {
	case components.InputWheel:
		return pi.HandleWheel(ev)
	case components.InputTouchStart, components.InputTouchMove, components.InputTouchEnd:
		return pi.HandleTouch(ev)
	default:
		pi.lastPixels = 0
		return false
	}
}

// HandleWheel 处理纵向滚轮事件
// 横向分量被忽略；未知的 DeltaMode 与非有限增量视为无效事件
func (pi *ProgressIntegrator) HandleWheel(ev components.InputEvent) bool {
	pi.lastPixels = 0
	if !utils.IsFinite(ev.DeltaY) || ev.DeltaY == 0 {
		return false
	}

	var scale float64
	switch ev.DeltaMode {
	case components.DeltaPixel:
		scale = 1
	case components.DeltaLine:
		scale = LineHeightPixels
	case components.DeltaPage:
		scale = pi.viewportHeight
	default:
		return false
	}

	return pi.applyPixels(ev.DeltaY * scale)
}

// HandleTouch 处理触摸事件
//
// 只跟踪单指拖动：多指时取消当前拖动并忽略事件，
// touchmove 的增量为上一触点 Y 减当前 Y（手指上移等价于向下滚动）。
func (pi *ProgressIntegrator) HandleTouch(ev components.InputEvent) bool {
	pi.lastPixels = 0

	switch ev.Kind {
	case components.InputTouchEnd:
		if len(ev.Touches) == 0 {
			pi.touching = false
		}
		return false

	case components.InputTouchStart:
		if len(ev.Touches) != 1 || !utils.IsFinite(ev.Touches[0].Y) {
			pi.touching = false
			return false
		}
		pi.touching = true
		pi.touchID = ev.Touches[0].ID
		pi.lastTouchY = ev.Touches[0].Y
		return false

	case components.InputTouchMove:
		if !pi.touching || len(ev.Touches) != 1 {
			pi.touching = false
			return false
		}
		touch := ev.Touches[0]
		if touch.ID != pi.touchID || !utils.IsFinite(touch.Y) {
			return false
		}
		dy := pi.lastTouchY - touch.Y
		pi.lastTouchY = touch.Y
		if dy == 0 {
			return false
		}
		return pi.applyPixels(dy)
	}
	return false
}

// deltaProgress 像素增量 → 进度增量
// Δp = -(Δpixels / notchSize) * polarity / ticksToMax
func (pi *ProgressIntegrator) deltaProgress(pixels float64) float64 {
	return -(pixels / pi.notchSize) * pi.polarity / pi.ticksToMax
}

// applyPixels 应用像素增量，包含边界穿透规则
//
// Target 已在 +1 边界且增量为正（或在 -1 边界且增量为负）时不消费事件，
// 增量被丢弃，宿主可继续执行默认的滚动。
func (pi *ProgressIntegrator) applyPixels(pixels float64) bool {
	pi.lastPixels = pixels

	dp := pi.deltaProgress(pixels)
	if !utils.IsFinite(dp) {
		return false
	}

	target := pi.progress.Target
	if dp > 0 && target >= 1-boundaryEpsilon {
		return false
	}
	if dp < 0 && target <= -1+boundaryEpsilon {
		return false
	}

	pi.progress.Target = utils.Clamp(target+dp, -1, 1)
	return true
}

// Update 平滑 Displayed
//
// displayed = lerp(displayed, target, 1 - smooth^(dt*60))
// 剩余距离按 smooth^(dt*60) 几何衰减，不会越过 Target。
func (pi *ProgressIntegrator) Update(dt float64) {
	factor := utils.FrameSmoothingFactor(pi.smooth, dt)
	if factor <= 0 {
		return
	}
	d := utils.Lerp(pi.progress.Displayed, pi.progress.Target, factor)
	if !utils.IsFinite(d) {
		d = pi.progress.Target
	}
	// 剩余距离低于浮点精度时直接吸附，避免无限逼近
	if math.Abs(pi.progress.Target-d) < 1e-12 {
		d = pi.progress.Target
	}
	pi.progress.Displayed = d
}

// SetTarget 直接设置目标进度（会被限制在 [-1, 1]）
// 用于重置等非手势操作
func (pi *ProgressIntegrator) SetTarget(p float64) {
	if !utils.IsFinite(p) {
		return
	}
	pi.progress.Target = utils.Clamp(p, -1, 1)
}

// CancelTouch 放弃当前拖动
func (pi *ProgressIntegrator) CancelTouch() {
	pi.touching = false
}

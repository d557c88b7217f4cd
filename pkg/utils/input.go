// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// MouseTouchID 用鼠标左键模拟触摸时使用的触点 ID
// ebiten 的真实触点 ID 不会是负数
const MouseTouchID = -1

// AppendWheelEvents 读取本帧的纵向滚轮输入
//
// ebiten.Wheel() 的 yoff 以"格"为单位且向上为正，
// 这里转换为行模式增量，并按向下为正的约定取反。
// 横向滚轮不参与画布进度。
func AppendWheelEvents(dst []components.InputEvent) []components.InputEvent {
	_, yoff := ebiten.Wheel()
	if yoff == 0 || !IsFinite(yoff) {
		return dst
	}
	return append(dst, components.NewWheelEvent(-yoff, components.DeltaLine))
}

// CurrentTouchPoints 获取当前所有触点
// 同时支持鼠标和触摸，优先检测触摸；没有触摸时鼠标左键按下视为单指触摸
// 移动端只使用真实触点
func CurrentTouchPoints(dst []components.TouchPoint) []components.TouchPoint {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		for _, id := range touchIDs {
			x, y := ebiten.TouchPosition(id)
			dst = append(dst, components.TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
		}
		return dst
	}

	if !IsMobile() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, components.TouchPoint{ID: MouseTouchID, X: float64(x), Y: float64(y)})
	}
	return dst
}

// TouchTracker 把逐帧轮询的触点列表转换为 start/move/end 事件
//
// ebiten 只提供轮询接口，没有触摸事件回调，
// 因此需要比较前后两帧的触点集合。
type TouchTracker struct {
	prev []components.TouchPoint
	buf  []components.TouchPoint
}

// NewTouchTracker 创建触摸跟踪器
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{}
}

// Poll 读取 ebiten 当前触点并追加事件
func (t *TouchTracker) Poll(dst []components.InputEvent) []components.InputEvent {
	t.buf = CurrentTouchPoints(t.buf[:0])
	return t.Feed(t.buf, dst)
}

// Feed 比较本帧触点与上一帧触点，追加对应事件
//
// 规则：
//   - 无 → 有：touchstart
//   - 有 → 无：touchend（Touches 为空）
//   - 触点集合变化：touchstart（携带全部触点，多指由积分器忽略）
//   - 集合不变但位置变化：touchmove
func (t *TouchTracker) Feed(points []components.TouchPoint, dst []components.InputEvent) []components.InputEvent {
	cur := make([]components.TouchPoint, len(points))
	copy(cur, points)

	switch {
	case len(t.prev) == 0 && len(cur) == 0:
		// 无触摸
	case len(cur) == 0:
		dst = append(dst, components.NewTouchEvent(components.InputTouchEnd))
	case !sameTouchIDs(t.prev, cur):
		dst = append(dst, components.NewTouchEvent(components.InputTouchStart, cur...))
	case touchMoved(t.prev, cur):
		dst = append(dst, components.NewTouchEvent(components.InputTouchMove, cur...))
	}

	t.prev = cur
	return dst
}

// Reset 清除跟踪状态
func (t *TouchTracker) Reset() {
	t.prev = nil
}

func sameTouchIDs(a, b []components.TouchPoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func touchMoved(a, b []components.TouchPoint) bool {
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			return true
		}
	}
	return false
}

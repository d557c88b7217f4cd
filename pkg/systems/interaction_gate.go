package systems

import (
	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
)

// InteractionGate 根据两侧透明度决定哪一侧拥有输入
//
// 每侧是一个双态状态机 {idle, interactive}：
//   - idle → interactive：opacity > On
//   - interactive → idle：opacity < Off
//   - Off <= opacity <= On：保持原状态
//
// 两侧不会同时可交互；同时满足时右侧优先（见 DeriveMode）。
type InteractionGate struct {
	left  config.HysteresisConfig
	right config.HysteresisConfig
	state components.InteractionState
}

// NewInteractionGate 创建交互门控，初始状态为两侧 idle、ModeBoth
func NewInteractionGate(cfg config.CanvasConfig) *InteractionGate {
	return &InteractionGate{
		left:  cfg.Left,
		right: cfg.Right,
	}
}

// State 返回当前交互状态
func (g *InteractionGate) State() components.InteractionState {
	return g.state
}

// Update 用新的透明度推进状态机
// NaN 透明度不满足任何阈值比较，状态保持不变
func (g *InteractionGate) Update(opacity components.SideOpacity) components.InteractionState {
	left := stepHysteresis(g.state.LeftInteractive, opacity.Left, g.left)
	right := stepHysteresis(g.state.RightInteractive, opacity.Right, g.right)

	mode := DeriveMode(left, right)
	// 独占：模式之外的一侧不保留交互
	g.state = components.InteractionState{
		LeftInteractive:  mode == components.ModeLeft,
		RightInteractive: mode == components.ModeRight,
		Mode:             mode,
	}
	return g.state
}

// Reset 回到初始状态
func (g *InteractionGate) Reset() {
	g.state = components.InteractionState{}
}

// stepHysteresis 单侧滞回
func stepHysteresis(active bool, opacity float64, h config.HysteresisConfig) bool {
	if active {
		return !(opacity < h.Off)
	}
	return opacity > h.On
}

// DeriveMode 由两侧交互标记推导互斥模式
// 两侧同时为 true 时右侧优先（正常情况下不会发生，两侧来自进度的不同半区）
func DeriveMode(leftInteractive, rightInteractive bool) components.Mode {
	switch {
	case rightInteractive:
		return components.ModeRight
	case leftInteractive:
		return components.ModeLeft
	default:
		return components.ModeBoth
	}
}

package components

// Side 画布的一侧面板
type Side int

const (
	// SideLeft 左侧面板，响应 p < 0
	SideLeft Side = iota
	// SideRight 右侧面板，响应 p > 0
	SideRight
)

// Sides 按固定顺序列出两侧，便于遍历
var Sides = [...]Side{SideLeft, SideRight}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Mode 互斥的渲染/交互模式
type Mode int

const (
	// ModeBoth 两侧都按各自曲线透明度显示，均不可交互
	ModeBoth Mode = iota
	// ModeLeft 只显示左侧，左侧可交互
	ModeLeft
	// ModeRight 只显示右侧，右侧可交互
	ModeRight
)

func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeLeft:
		return "left"
	case ModeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Exclusive 返回独占模式对应的一侧
// ModeBoth 返回 false
func (m Mode) Exclusive() (Side, bool) {
	switch m {
	case ModeLeft:
		return SideLeft, true
	case ModeRight:
		return SideRight, true
	default:
		return 0, false
	}
}

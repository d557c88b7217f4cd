package components

// ProgressComponent 画布进度的两种表示
// Target 由输入立即修改（始终在 [-1, 1] 内），Displayed 每帧向 Target 平滑逼近。
// p = 0 为静止状态，p → 1 偏向右侧，p → -1 偏向左侧。
type ProgressComponent struct {
	Target    float64
	Displayed float64
}

// SideOpacity 两侧面板的曲线透明度，均在 [0, 1] 内
// 两者分别由 p 的正负半区计算，不保证和为 1
type SideOpacity struct {
	Left  float64
	Right float64
}

// Of 返回指定一侧的透明度
func (o SideOpacity) Of(side Side) float64 {
	if side == SideRight {
		return o.Right
	}
	return o.Left
}

// InteractionState 两侧的交互状态与派生模式
// 只由 InteractionGate 写入
type InteractionState struct {
	LeftInteractive  bool
	RightInteractive bool
	Mode             Mode
}

// Interactive 返回指定一侧是否可交互
func (s InteractionState) Interactive(side Side) bool {
	if side == SideRight {
		return s.RightInteractive
	}
	return s.LeftInteractive
}

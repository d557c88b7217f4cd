package components

// DeltaMode 滚轮增量的单位
type DeltaMode int

const (
	// DeltaPixel 增量以像素为单位
	DeltaPixel DeltaMode = iota
	// DeltaLine 增量以行为单位（1 行 = 16 像素）
	DeltaLine
	// DeltaPage 增量以页为单位（1 页 = 视口高度）
	DeltaPage
)

// InputKind 输入事件类型
type InputKind int

const (
	InputWheel InputKind = iota
	InputTouchStart
	InputTouchMove
	InputTouchEnd
)

func (k InputKind) String() string {
	switch k {
	case InputWheel:
		return "wheel"
	case InputTouchStart:
		return "touchstart"
	case InputTouchMove:
		return "touchmove"
	case InputTouchEnd:
		return "touchend"
	default:
		return "unknown"
	}
}

// TouchPoint 单个触点
type TouchPoint struct {
	ID   int
	X, Y float64
}

// InputEvent 宿主环境产生的原始输入
//
// 滚轮事件使用 DeltaX/DeltaY/DeltaMode（DeltaY > 0 表示向下滚动）；
// 触摸事件使用 Touches，列出事件发生时仍在屏幕上的全部触点。
type InputEvent struct {
	Kind      InputKind
	DeltaX    float64
	DeltaY    float64
	DeltaMode DeltaMode
	Touches   []TouchPoint
}

// NewWheelEvent 创建纵向滚轮事件
func NewWheelEvent(deltaY float64, mode DeltaMode) InputEvent {
	return InputEvent{Kind: InputWheel, DeltaY: deltaY, DeltaMode: mode}
}

// NewTouchEvent 创建触摸事件
func NewTouchEvent(kind InputKind, touches ...TouchPoint) InputEvent {
	return InputEvent{Kind: kind, Touches: touches}
}

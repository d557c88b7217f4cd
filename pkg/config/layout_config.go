package config

// 布局配置常量
// 本文件定义了画布窗口与展示层的布局参数

const (
	// CanvasWindowWidth 逻辑屏幕宽度（像素）
	CanvasWindowWidth = 960

	// CanvasWindowHeight 逻辑屏幕高度（像素）
	// 同时作为滚轮 page 模式的换算高度
	CanvasWindowHeight = 600

	// PaneRowHeight 面板滚动轨道中每一行的高度（像素）
	PaneRowHeight = 36.0

	// PaneRowCount 每个面板滚动轨道的行数
	PaneRowCount = 40

	// PaneDimOpacity 静止状态下面板的底色透明度
	// 仅影响展示，不参与交互判断
	PaneDimOpacity = 0.12
)

// Indicator camera（指示器摄像机）
// 摄像机位于 z 轴正方向，看向原点
const (
	// IndicatorCameraZ 摄像机 z 坐标（世界单位）
	IndicatorCameraZ = 6.0

	// IndicatorFovYDegrees 垂直视场角（度）
	IndicatorFovYDegrees = 50.0
)

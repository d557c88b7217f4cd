package utils

// viewport.go 提供透视摄像机与深度平面之间的坐标转换
//
// # 坐标系统概述
//
//   - **世界坐标**：右手系，摄像机默认位于 +z 方向看向原点
//   - **屏幕坐标**：相对于窗口左上角的像素坐标
//
// 指示器几何体放在世界坐标 z = depth 的平面上，
// 其屏幕尺寸取决于该平面上的可见区域（ViewportSnapshot）。

import (
	"math"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
	"gonum.org/v1/gonum/spatial/r3"
)

// PerspectiveCamera 透视摄像机
type PerspectiveCamera struct {
	Position r3.Vec
	LookAt   r3.Vec
	FovY     float64 // 垂直视场角（弧度）
	Aspect   float64 // 宽高比
}

// NewIndicatorCamera 创建指示器摄像机
// 位于 (0, 0, IndicatorCameraZ)，看向原点
func NewIndicatorCamera(screenWidth, screenHeight float64) PerspectiveCamera {
	aspect := 1.0
	if screenHeight > 0 {
		aspect = screenWidth / screenHeight
	}
	return PerspectiveCamera{
		Position: r3.Vec{Z: config.IndicatorCameraZ},
		LookAt:   r3.Vec{},
		FovY:     config.IndicatorFovYDegrees * math.Pi / 180,
		Aspect:   aspect,
	}
}

// ViewportAtDepth 计算 z = depth 平面上的可见区域
//
// 返回：
//   - snapshot: 可见区域（世界单位）
//   - ok: 视线与平面平行、平面在摄像机背后或参数非法时为 false
func ViewportAtDepth(cam PerspectiveCamera, depth float64) (components.ViewportSnapshot, bool) {
	forward := r3.Sub(cam.LookAt, cam.Position)
	length := r3.Norm(forward)
	if length == 0 || !IsFinite(length) {
		return components.ViewportSnapshot{}, false
	}
	forward = r3.Scale(1/length, forward)

	if math.Abs(forward.Z) < 1e-9 {
		return components.ViewportSnapshot{}, false
	}

	// 沿视线到达深度平面的距离
	distance := (depth - cam.Position.Z) / forward.Z
	if distance <= 0 || !IsFinite(distance) {
		return components.ViewportSnapshot{}, false
	}

	height := 2 * distance * math.Tan(cam.FovY/2)
	width := height * cam.Aspect
	snap := components.ViewportSnapshot{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Distance: distance,
	}
	if !snap.Valid() {
		return components.ViewportSnapshot{}, false
	}
	return snap, true
}

// PixelsPerWorldUnit 计算深度平面上一个世界单位对应的屏幕像素数
func PixelsPerWorldUnit(snap components.ViewportSnapshot, screenHeight float64) float64 {
	if !snap.Valid() {
		return 0
	}
	return screenHeight / snap.Height
}

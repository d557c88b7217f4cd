package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the split canvas view).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Teardown 是一个可选接口，场景被替换或程序退出时调用
//
// 实现此接口的场景应在此释放输入订阅、保存设置等。
// 返回 false 表示清理未完全成功（程序仍会正常退出）
type Teardown interface {
	Teardown() bool
}

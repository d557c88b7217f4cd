package systems

import (
	"fmt"
	"log"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
)

// FrameState 一帧的完整输出，全部来自同一个 Displayed 值
type FrameState struct {
	Target      float64
	Displayed   float64
	Opacity     components.SideOpacity
	Interaction components.InteractionState
}

// Mode 返回当前互斥模式
func (f FrameState) Mode() components.Mode {
	return f.Interaction.Mode
}

// Presented 返回展示层应使用的透明度
//
// 独占模式下激活侧为 1、另一侧为 0（曲线只负责过渡，不决定稳定状态）；
// ModeBoth 下两侧各自使用曲线透明度。
func (f FrameState) Presented(side components.Side) float64 {
	if active, ok := f.Interaction.Mode.Exclusive(); ok {
		if side == active {
			return 1
		}
		return 0
	}
	return f.Opacity.Of(side)
}

// CanvasController 双面板画布控制器
//
// 组合 ProgressIntegrator → SideCurveMapper → InteractionGate，
// DepthScaleMapper 从同一进度分支出来。单线程使用：
// 输入事件通过 HandleEvent 同步处理，Advance 每帧调用一次。
type CanvasController struct {
	cfg        config.CanvasConfig
	integrator *ProgressIntegrator
	curve      SideCurveMapper
	gate       *InteractionGate
	depth      *DepthScaleMapper

	frame    FrameState
	detached bool
}

// NewCanvasController 创建控制器
//
// 参数：
//   - cfg: 控制器常量，构造时校验，之后不可修改
//
// 返回：
//   - *CanvasController: 控制器实例
//   - error: 配置非法时返回 *config.ConfigError
func NewCanvasController(cfg config.CanvasConfig) (*CanvasController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create canvas controller: %w", err)
	}

	c := &CanvasController{
		cfg:        cfg,
		integrator: NewProgressIntegrator(cfg),
		curve:      NewSideCurveMapper(cfg),
		gate:       NewInteractionGate(cfg),
		depth:      NewDepthScaleMapper(cfg),
	}
	c.frame = c.evaluate()
	log.Printf("[CanvasController] Created with variant %q", cfg.Name)
	return c, nil
}

// Config 返回控制器使用的配置
func (c *CanvasController) Config() config.CanvasConfig {
	return c.cfg
}

// SetViewportHeight 设置滚轮 page 模式的换算高度（像素）
func (c *CanvasController) SetViewportHeight(h float64) {
	c.integrator.SetViewportHeight(h)
}

// HandleEvent 同步处理一个输入事件
//
// 返回：
//   - bool: 是否消费。false 时宿主应执行默认行为（例如滚动当前面板）
func (c *CanvasController) HandleEvent(ev components.InputEvent) bool {
	if c.detached {
		return false
	}
	return c.integrator.Handle(ev)
}

// HandleWheel 处理滚轮事件
func (c *CanvasController) HandleWheel(deltaY float64, mode components.DeltaMode) bool {
	return c.HandleEvent(components.NewWheelEvent(deltaY, mode))
}

// HandleTouch 处理触摸事件
func (c *CanvasController) HandleTouch(kind components.InputKind, touches ...components.TouchPoint) bool {
	return c.HandleEvent(components.NewTouchEvent(kind, touches...))
}

// LastEventPixels 返回最近一次事件的像素增量（向下为正）
// 宿主可用它转发未消费的事件
func (c *CanvasController) LastEventPixels() float64 {
	return c.integrator.LastPixels()
}

// Advance 推进一帧
//
// 顺序固定：先按顺序应用 events，再平滑 Displayed，
// 最后用同一个 Displayed 计算透明度与交互状态。
func (c *CanvasController) Advance(dt float64, events []components.InputEvent) FrameState {
	for _, ev := range events {
		c.HandleEvent(ev)
	}
	if c.detached {
		return c.frame
	}

	c.integrator.Update(dt)

	prevMode := c.frame.Mode()
	c.frame = c.evaluate()
	if mode := c.frame.Mode(); mode != prevMode {
		log.Printf("[CanvasController] Mode %s -> %s (p=%.3f)", prevMode, mode, c.frame.Displayed)
	}
	return c.frame
}

// evaluate 用当前 Displayed 计算透明度并推进交互门控
func (c *CanvasController) evaluate() FrameState {
	progress := c.integrator.Progress()
	opacity := c.curve.Map(progress.Displayed)
	return FrameState{
		Target:      progress.Target,
		Displayed:   progress.Displayed,
		Opacity:     opacity,
		Interaction: c.gate.Update(opacity),
	}
}

// Frame 返回最近一帧的状态
func (c *CanvasController) Frame() FrameState {
	return c.frame
}

// Scale 计算某侧指示器的缩放
// snap 为 nil 或非法时返回该侧上一次的缩放
func (c *CanvasController) Scale(side components.Side, snap *components.ViewportSnapshot) float64 {
	eased := c.curve.Eased(c.frame.Displayed, side)
	return c.depth.Scale(side, eased, snap)
}

// ResetTarget 把目标进度设回静止状态
// Displayed 仍按平滑曲线回落
func (c *CanvasController) ResetTarget() {
	if c.detached {
		return
	}
	c.integrator.SetTarget(0)
	c.integrator.CancelTouch()
}

// Detach 拆除控制器
// 之后的事件都不会被消费，Advance 返回最后一帧
func (c *CanvasController) Detach() {
	if c.detached {
		return
	}
	c.detached = true
	c.integrator.CancelTouch()
	log.Printf("[CanvasController] Detached (variant %q)", c.cfg.Name)
}

// IsDetached 返回控制器是否已拆除
func (c *CanvasController) IsDetached() bool {
	return c.detached
}

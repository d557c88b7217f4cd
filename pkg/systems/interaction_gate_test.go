package systems

import (
	"math"
	"testing"

	"github.com/decker502/splitcanvas/pkg/components"
	"github.com/decker502/splitcanvas/pkg/config"
)

// TestInteractionGateHysteresis On=0.85, Off=0.70
// 透明度序列 [0.5, 0.9, 0.75, 0.65, 0.75] → [false, true, true, false, false]
func TestInteractionGateHysteresis(t *testing.T) {
	sequence := []float64{0.5, 0.9, 0.75, 0.65, 0.75}
	want := []bool{false, true, true, false, false}

	for _, side := range components.Sides {
		t.Run(side.String(), func(t *testing.T) {
			g := NewInteractionGate(config.DefaultCanvasConfig())
			for i, op := range sequence {
				var opacity components.SideOpacity
				if side == components.SideRight {
					opacity.Right = op
				} else {
					opacity.Left = op
				}
				st := g.Update(opacity)
				if st.Interactive(side) != want[i] {
					t.Errorf("step %d (opacity %v): interactive = %v, want %v", i, op, st.Interactive(side), want[i])
				}
			}
		})
	}
}

// TestInteractionGateThresholdsStrict 阈值本身不触发切换
func TestInteractionGateThresholdsStrict(t *testing.T) {
	g := NewInteractionGate(config.DefaultCanvasConfig())

	if st := g.Update(components.SideOpacity{Right: 0.85}); st.RightInteractive {
		t.Error("opacity == On should not activate")
	}
	g.Update(components.SideOpacity{Right: 0.86})
	if st := g.Update(components.SideOpacity{Right: 0.70}); !st.RightInteractive {
		t.Error("opacity == Off should not deactivate")
	}
	if st := g.Update(components.SideOpacity{Right: math.NaN()}); !st.RightInteractive {
		t.Error("NaN opacity should hold state")
	}
}

// TestInteractionGatePerSideThresholds 两侧使用各自的阈值
func TestInteractionGatePerSideThresholds(t *testing.T) {
	cfg := config.DefaultCanvasConfig()
	cfg.Left = config.HysteresisConfig{On: 0.6, Off: 0.4}
	g := NewInteractionGate(cfg)

	if st := g.Update(components.SideOpacity{Left: 0.7}); st.Mode != components.ModeLeft {
		t.Errorf("left at 0.7 with On=0.6: mode = %v, want left", st.Mode)
	}
	if st := g.Update(components.SideOpacity{Left: 0.5}); st.Mode != components.ModeLeft {
		t.Errorf("left at 0.5 (inside band): mode = %v, want left", st.Mode)
	}
	if st := g.Update(components.SideOpacity{Left: 0.3}); st.Mode != components.ModeBoth {
		t.Errorf("left at 0.3: mode = %v, want both", st.Mode)
	}
}

// TestDeriveMode 所有交互标记组合
func TestDeriveMode(t *testing.T) {
	tests := []struct {
		left, right bool
		want        components.Mode
	}{
		{false, false, components.ModeBoth},
		{true, false, components.ModeLeft},
		{false, true, components.ModeRight},
		{true, true, components.ModeRight}, // 右侧优先
	}

	for _, tt := range tests {
		if got := DeriveMode(tt.left, tt.right); got != tt.want {
			t.Errorf("DeriveMode(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
		}
	}
}

// TestInteractionGateExclusive 两侧不会同时可交互，可交互时模式不为 both
func TestInteractionGateExclusive(t *testing.T) {
	g := NewInteractionGate(config.DefaultCanvasConfig())
	levels := []float64{0, 0.5, 0.72, 0.8, 0.86, 0.95, 1}

	// 穷举透明度组合序列，包括两侧同时为高的非正常输入
	for _, l := range levels {
		for _, r := range levels {
			st := g.Update(components.SideOpacity{Left: l, Right: r})
			if st.LeftInteractive && st.RightInteractive {
				t.Fatalf("both sides interactive at left=%v right=%v", l, r)
			}
			if (st.LeftInteractive || st.RightInteractive) && st.Mode == components.ModeBoth {
				t.Fatalf("mode both while a side is interactive: %+v", st)
			}
			if st.Mode == components.ModeRight && !st.RightInteractive {
				t.Fatalf("mode right without right interactive: %+v", st)
			}
			if st.Mode == components.ModeLeft && !st.LeftInteractive {
				t.Fatalf("mode left without left interactive: %+v", st)
			}
		}
	}
}

// TestInteractionGateTieBreak 同时激活时右侧胜出，左侧被清除
func TestInteractionGateTieBreak(t *testing.T) {
	g := NewInteractionGate(config.DefaultCanvasConfig())
	st := g.Update(components.SideOpacity{Left: 0.95, Right: 0.95})
	if st.Mode != components.ModeRight || st.LeftInteractive {
		t.Errorf("simultaneous activation: %+v, want right only", st)
	}

	g.Reset()
	if st := g.State(); st != (components.InteractionState{}) {
		t.Errorf("State() after Reset = %+v, want zero", st)
	}
}

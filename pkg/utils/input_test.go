package utils

import (
	"testing"

	"github.com/decker502/splitcanvas/pkg/components"
)

func tp(id int, y float64) components.TouchPoint {
	return components.TouchPoint{ID: id, X: 10, Y: y}
}

// TestTouchTrackerSequence 测试单指拖动的事件序列
func TestTouchTrackerSequence(t *testing.T) {
	tracker := NewTouchTracker()

	frames := []struct {
		name     string
		points   []components.TouchPoint
		wantKind []components.InputKind
	}{
		{"无触摸", nil, nil},
		{"按下", []components.TouchPoint{tp(1, 100)}, []components.InputKind{components.InputTouchStart}},
		{"静止", []components.TouchPoint{tp(1, 100)}, nil},
		{"移动", []components.TouchPoint{tp(1, 140)}, []components.InputKind{components.InputTouchMove}},
		{"第二指按下", []components.TouchPoint{tp(1, 140), tp(2, 300)}, []components.InputKind{components.InputTouchStart}},
		{"第二指抬起", []components.TouchPoint{tp(1, 150)}, []components.InputKind{components.InputTouchStart}},
		{"抬起", nil, []components.InputKind{components.InputTouchEnd}},
		{"保持无触摸", nil, nil},
	}

	for _, f := range frames {
		events := tracker.Feed(f.points, nil)
		if len(events) != len(f.wantKind) {
			t.Fatalf("%s: got %d events %+v, want %v", f.name, len(events), events, f.wantKind)
		}
		for i, ev := range events {
			if ev.Kind != f.wantKind[i] {
				t.Errorf("%s: event[%d].Kind = %v, want %v", f.name, i, ev.Kind, f.wantKind[i])
			}
			if ev.Kind != components.InputTouchEnd && len(ev.Touches) != len(f.points) {
				t.Errorf("%s: event[%d] carries %d touches, want %d", f.name, i, len(ev.Touches), len(f.points))
			}
		}
	}
}

// TestTouchTrackerCopiesInput 调用方复用切片不影响跟踪状态
func TestTouchTrackerCopiesInput(t *testing.T) {
	tracker := NewTouchTracker()
	buf := []components.TouchPoint{tp(1, 100)}
	tracker.Feed(buf, nil)

	buf[0].Y = 200
	events := tracker.Feed(buf, nil)
	if len(events) != 1 || events[0].Kind != components.InputTouchMove {
		t.Fatalf("events = %+v, want one touchmove", events)
	}

	buf[0].Y = 999
	if events[0].Touches[0].Y != 200 {
		t.Errorf("event touches alias caller buffer: Y = %v", events[0].Touches[0].Y)
	}
}

// TestTouchTrackerReset 重置后重新开始
func TestTouchTrackerReset(t *testing.T) {
	tracker := NewTouchTracker()
	tracker.Feed([]components.TouchPoint{tp(1, 100)}, nil)
	tracker.Reset()

	events := tracker.Feed([]components.TouchPoint{tp(1, 100)}, nil)
	if len(events) != 1 || events[0].Kind != components.InputTouchStart {
		t.Errorf("events after Reset = %+v, want touchstart", events)
	}
}

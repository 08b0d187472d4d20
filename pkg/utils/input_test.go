package utils

import (
	"math"
	"testing"
)

func TestKeyboardAxis(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{name: "无按键", want: 0},
		{name: "左", left: true, want: -1},
		{name: "右", right: true, want: 1},
		{name: "同时按下抵消", left: true, right: true, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyboardAxis(tt.left, tt.right); got != tt.want {
				t.Errorf("KeyboardAxis(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestPointerAxis(t *testing.T) {
	tests := []struct {
		name           string
		anchor, target float64
		want           float64
	}{
		{name: "指针在右侧远处", anchor: 0, target: 5, want: 1},
		{name: "指针在左侧远处", anchor: 0, target: -5, want: -1},
		{name: "指针就在球上", anchor: 3, target: 3, want: 0},
		{name: "靠近时减速", anchor: 1, target: 1.25, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerAxis(tt.anchor, tt.target)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PointerAxis(%v, %v) = %v, want %v", tt.anchor, tt.target, got, tt.want)
			}
		})
	}
}

func TestPlayerInputApply(t *testing.T) {
	tests := []struct {
		name     string
		anchor   float64
		keys     KeyState
		pointer  PointerState
		wantAxis float64
		wantDrop bool
	}{
		{
			name:     "键盘移动",
			keys:     KeyState{Right: true},
			wantAxis: 1,
		},
		{
			name:     "键盘优先于指针",
			keys:     KeyState{Left: true},
			pointer:  PointerState{Pressed: true, WorldX: 8},
			wantAxis: -1,
		},
		{
			name:     "按住指针跟随",
			anchor:   2,
			pointer:  PointerState{Pressed: true, WorldX: -4},
			wantAxis: -1,
		},
		{
			name:     "未按住时忽略指针位置",
			pointer:  PointerState{WorldX: 6},
			wantAxis: 0,
		},
		{
			name:     "空格投放",
			keys:     KeyState{Drop: true},
			wantDrop: true,
		},
		{
			name:     "松开指针投放",
			pointer:  PointerState{JustReleased: true, WorldX: 1},
			wantDrop: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewPlayerInput()
			in.SetAnchor(tt.anchor)
			in.Apply(tt.keys, tt.pointer)

			if in.Horizontal() != tt.wantAxis {
				t.Errorf("Horizontal() = %v, want %v", in.Horizontal(), tt.wantAxis)
			}
			if in.DropPressed() != tt.wantDrop {
				t.Errorf("DropPressed() = %v, want %v", in.DropPressed(), tt.wantDrop)
			}
		})
	}
}

func TestPlayerInputResetsEachFrame(t *testing.T) {
	in := NewPlayerInput()
	in.Apply(KeyState{Right: true, Drop: true}, PointerState{})
	in.Apply(KeyState{}, PointerState{})

	if in.Horizontal() != 0 || in.DropPressed() {
		t.Errorf("state should reset on next frame, got axis=%v drop=%v", in.Horizontal(), in.DropPressed())
	}
}

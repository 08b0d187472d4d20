// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/mergeball/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerGain 指针与球的水平距离（世界单位）换算为输入轴的系数
// 距离 0.5 个单位以上即满速移动
const pointerGain = 2.0

// KeyState 一帧内与生成器相关的按键状态
type KeyState struct {
	Left  bool // 左方向键或 A
	Right bool // 右方向键或 D
	Drop  bool // 空格、下方向键或 S 刚刚按下
}

// PointerState 一帧内的指针（鼠标左键或触摸）状态
type PointerState struct {
	Pressed      bool    // 是否按住
	JustReleased bool    // 是否刚刚松开
	WorldX       float64 // 指针位置对应的世界 X 坐标
}

// PlayerInput 把键盘与指针输入转换为生成器的输入轴和投放信号
//
// 键盘：左右键移动，空格投放。
// 指针：按住时球向指针位置移动，松开时投放。
//
// 每帧开始时调用 Poll，之后 Horizontal/DropPressed 返回本帧的结果。
type PlayerInput struct {
	anchorX float64
	axis    float64
	drop    bool

	lastTouchX float64
}

// NewPlayerInput 创建玩家输入
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{}
}

// SetAnchor 设置当前持有球的世界 X 坐标，用于指针跟随
func (in *PlayerInput) SetAnchor(x float64) {
	in.anchorX = x
}

// Poll 读取本帧的键盘与指针状态
func (in *PlayerInput) Poll() {
	in.Apply(readKeyState(), in.readPointerState())
}

// Apply 根据给定的按键与指针状态计算本帧输入
func (in *PlayerInput) Apply(keys KeyState, pointer PointerState) {
	in.axis = KeyboardAxis(keys.Left, keys.Right)
	if in.axis == 0 && pointer.Pressed {
		in.axis = PointerAxis(in.anchorX, pointer.WorldX)
	}
	in.drop = keys.Drop || pointer.JustReleased
}

// Horizontal 返回本帧水平输入轴
func (in *PlayerInput) Horizontal() float64 {
	return in.axis
}

// DropPressed 返回本帧是否投放
func (in *PlayerInput) DropPressed() bool {
	return in.drop
}

// KeyboardAxis 左右按键合成输入轴，同时按下时抵消
func KeyboardAxis(left, right bool) float64 {
	axis := 0.0
	if left {
		axis--
	}
	if right {
		axis++
	}
	return axis
}

// PointerAxis 根据球与指针的水平距离计算输入轴，结果在 -1 ~ 1 之间
func PointerAxis(anchorX, targetX float64) float64 {
	axis := (targetX - anchorX) * pointerGain
	if axis > 1 {
		return 1
	}
	if axis < -1 {
		return -1
	}
	return axis
}

func readKeyState() KeyState {
	return KeyState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Drop: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) ||
			inpututil.IsKeyJustPressed(ebiten.KeyS),
	}
}

// readPointerState 读取指针状态，优先检测触摸
func (in *PlayerInput) readPointerState() PointerState {
	// 触摸松开时已拿不到位置，使用最后一次记录的位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerState{JustReleased: true, WorldX: in.lastTouchX}
	}

	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		sx, sy := ebiten.TouchPosition(touchIDs[0])
		wx, _ := config.ScreenToWorld(float64(sx), float64(sy))
		in.lastTouchX = wx
		return PointerState{Pressed: true, WorldX: wx}
	}

	sx, sy := ebiten.CursorPosition()
	wx, _ := config.ScreenToWorld(float64(sx), float64(sy))
	return PointerState{
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		WorldX:       wx,
	}
}

// IsRestartJustPressed 检查是否刚刚按下重开键（R）
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsMuteJustPressed 检查是否刚刚按下静音切换键（M）
func IsMuteJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyM)
}

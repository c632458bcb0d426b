// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GestureKind 一次指针手势的类型
type GestureKind int

const (
	// GestureNone 本帧没有完成的手势
	GestureNone GestureKind = iota
	// GestureTap 按下后在阈值范围内释放
	GestureTap
	// GestureDrag 按下后移动超过阈值再释放
	GestureDrag
)

// DragThreshold 超过该距离（像素）的按下-释放视为拖拽
const DragThreshold = 8

// Gesture 完成的手势
type Gesture struct {
	Kind         GestureKind
	StartX       int
	StartY       int
	EndX, EndY   int
	IsTouchInput bool
}

// PointerTracker 跟踪鼠标或第一个触摸点，把按下/释放合成为点击或拖拽手势
type PointerTracker struct {
	pressed      bool
	moved        bool
	startX       int
	startY       int
	lastX, lastY int
	touch        bool
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll 读取 ebiten 当前的指针状态并推进跟踪器（每帧调用一次）
// 触摸优先于鼠标
func (p *PointerTracker) Poll() Gesture {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return p.Step(true, x, y, true)
	}
	x, y := ebiten.CursorPosition()
	return p.Step(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y, false)
}

// Step 用一帧的指针状态推进跟踪器
//
// 参数：
//   - pressed: 本帧指针是否按下
//   - x, y: 指针位置；触摸释放的那一帧位置无效，使用上一帧的位置
//   - touch: 是否为触摸输入
//
// 返回：
//   - Gesture: 本帧释放时完成的手势，否则 Kind 为 GestureNone
func (p *PointerTracker) Step(pressed bool, x, y int, touch bool) Gesture {
	switch {
	case pressed && !p.pressed:
		p.pressed = true
		p.moved = false
		p.startX, p.startY = x, y
		p.lastX, p.lastY = x, y
		p.touch = touch

	case pressed:
		p.lastX, p.lastY = x, y
		if abs(x-p.startX) > DragThreshold || abs(y-p.startY) > DragThreshold {
			p.moved = true
		}

	case p.pressed:
		p.pressed = false
		if !p.touch {
			p.lastX, p.lastY = x, y
		}
		kind := GestureTap
		if p.moved {
			kind = GestureDrag
		}
		return Gesture{
			Kind:         kind,
			StartX:       p.startX,
			StartY:       p.startY,
			EndX:         p.lastX,
			EndY:         p.lastY,
			IsTouchInput: p.touch,
		}
	}
	return Gesture{}
}

// Dragging 指针是否按下且已超过拖拽阈值
func (p *PointerTracker) Dragging() bool {
	return p.pressed && p.moved
}

// DragRange 当前拖拽的起点与最新位置
func (p *PointerTracker) DragRange() (startX, startY, x, y int) {
	return p.startX, p.startY, p.lastX, p.lastY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

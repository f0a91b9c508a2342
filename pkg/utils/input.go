// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// MousePointerID 鼠标左键对应的指针 ID（触摸 ID 总是非负）
const MousePointerID = -1

// Pointer 当前帧中处于按下状态的一个指针
type Pointer struct {
	ID    int // 触摸 ID，鼠标为 MousePointerID
	X, Y  int // 逻辑屏幕坐标
	Touch bool
}

// AppendPointers 将当前所有按下的指针追加到 ps
// 触摸点在前；鼠标左键按下时追加一个 MousePointerID 指针
func AppendPointers(ps []Pointer) []Pointer {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ps = append(ps, Pointer{ID: int(id), X: x, Y: y, Touch: true})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ps = append(ps, Pointer{ID: MousePointerID, X: x, Y: y})
	}
	return ps
}

// HasTouch 指针列表中是否包含触摸点
func HasTouch(ps []Pointer) bool {
	for _, p := range ps {
		if p.Touch {
			return true
		}
	}
	return false
}

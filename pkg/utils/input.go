// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// 保存最后一次触摸位置（触摸释放后 ebiten 不再报告该触点的位置）
var lastTouchX, lastTouchY int

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标
//
// 只跟踪第一个触点；触摸刚释放的那一帧返回最后一次触摸位置。
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = x, y
		touchSeen = true
		return true, x, y
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return true, x, y
	}

	if touchSeen {
		return false, lastTouchX, lastTouchY
	}

	x, y = ebiten.CursorPosition()
	return false, x, y
}

// touchSeen 记录是否出现过触摸输入
var touchSeen bool

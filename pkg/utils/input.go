// Package utils 提供表现层通用工具：相机投影、指针输入、颜色和缓动
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerState 获取当前指针状态（触摸优先，其次鼠标左键）
// 未按下时返回鼠标光标位置
func GetPointerState() (pressed bool, x, y int) {
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y = ebiten.TouchPosition(ids[0])
		return true, x, y
	}
	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

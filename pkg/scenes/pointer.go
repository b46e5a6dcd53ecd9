package scenes

import (
	"math"

	"github.com/decker502/slingshot/pkg/game"
)

// clickSlop 按下到松开移动不超过该像素数视为点击
const clickSlop = 4.0

// gesture 屏幕坐标下的逻辑输入
type gesture struct {
	kind game.InputKind
	x, y float64
}

// pointerTracker 把逐帧的指针状态转换成 DragStart/Drag/DragEnd/Click
//
// 按下时总是发出 DragStart；松开时若移动距离不超过 clickSlop 发出 Click，否则发出 DragEnd。
type pointerTracker struct {
	down           bool
	moved          bool
	startX, startY float64
	lastX, lastY   float64
}

// Update 输入本帧的指针状态，返回产生的手势
func (p *pointerTracker) Update(pressed bool, x, y float64) []gesture {
	switch {
	case pressed && !p.down:
		p.down = true
		p.moved = false
		p.startX, p.startY = x, y
		p.lastX, p.lastY = x, y
		return []gesture{{kind: game.InputDragStart, x: x, y: y}}

	case pressed && p.down:
		if x == p.lastX && y == p.lastY {
			return nil
		}
		p.lastX, p.lastY = x, y
		if math.Hypot(x-p.startX, y-p.startY) > clickSlop {
			p.moved = true
		}
		return []gesture{{kind: game.InputDrag, x: x, y: y}}

	case !pressed && p.down:
		p.down = false
		kind := game.InputDragEnd
		if !p.moved {
			kind = game.InputClick
		}
		return []gesture{{kind: kind, x: x, y: y}}
	}
	return nil
}

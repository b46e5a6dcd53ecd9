package components

import "github.com/decker502/slingshot/pkg/physics"

// BodyComponent 实体持有的刚体句柄
// 刚体本身由物理引擎持有，这里只记录 ID 和创建参数
type BodyComponent struct {
	Body     physics.BodyID
	Shape    physics.Shape
	Material string
	Mass     float64 // 动力学质量，从运动学模式切回时使用
}

package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体的物理状态镜像
// 每帧由 BodySyncSystem 从物理引擎复制，玩法逻辑和渲染只读
type TransformComponent struct {
	Position mgl64.Vec3
	Angle    float64 // 绕 Z 轴旋转（弧度）
	Velocity mgl64.Vec3
	Asleep   bool
}

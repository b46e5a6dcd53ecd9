// Package utils 提供表现层使用的工具函数
//
// coordinates.go 负责游戏平面与屏幕之间的坐标转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：物理引擎使用的三维坐标，Y 轴向上，游戏平面为 z=0
//   - **屏幕坐标**：相对于游戏窗口左上角，Y 轴向下
//
// 相机为透视相机（默认垂直视角 60°），由关卡的 camera.position / camera.lookAt 决定。
// 指针输入通过从相机发出的射线与 z=0 平面求交得到世界坐标。
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFovY 默认垂直视角（度）
const DefaultFovY = 60

const (
	cameraNear = 0.1
	cameraFar  = 1000
)

// Camera 透视相机
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FovY   float64 // 垂直视角（度）

	width, height int
	view, proj    mgl64.Mat4
}

// NewCamera 创建相机，width/height 为屏幕像素尺寸
func NewCamera(eye, target mgl64.Vec3, width, height int) *Camera {
	c := &Camera{Eye: eye, Target: target, FovY: DefaultFovY}
	c.Resize(width, height)
	return c
}

// Resize 屏幕尺寸变化后重建投影矩阵
func (c *Camera) Resize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	c.width, c.height = width, height
	c.view = mgl64.LookAtV(c.Eye, c.Target, mgl64.Vec3{0, 1, 0})
	c.proj = mgl64.Perspective(mgl64.DegToRad(c.FovY), float64(width)/float64(height), cameraNear, cameraFar)
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (c *Camera) WorldToScreen(p mgl64.Vec3) (x, y float64) {
	win := mgl64.Project(p, c.view, c.proj, 0, 0, c.width, c.height)
	return win.X(), float64(c.height) - win.Y()
}

// ScreenToWorld 屏幕坐标 → 游戏平面 (z=0) 上的世界坐标
// 射线与平面平行时返回 false
func (c *Camera) ScreenToWorld(x, y float64) (mgl64.Vec3, bool) {
	winY := float64(c.height) - y
	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, c.view, c.proj, 0, 0, c.width, c.height)
	if err != nil {
		return mgl64.Vec3{}, false
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, c.view, c.proj, 0, 0, c.width, c.height)
	if err != nil {
		return mgl64.Vec3{}, false
	}

	dir := far.Sub(near)
	if math.Abs(dir.Z()) < 1e-9 {
		return mgl64.Vec3{}, false
	}
	t := -near.Z() / dir.Z()
	hit := near.Add(dir.Mul(t))
	hit[2] = 0
	return hit, true
}

// PixelsPerUnit 世界坐标 p 处一个单位长度对应的像素数
func (c *Camera) PixelsPerUnit(p mgl64.Vec3) float64 {
	x0, y0 := c.WorldToScreen(p)
	x1, y1 := c.WorldToScreen(p.Add(mgl64.Vec3{1, 0, 0}))
	return math.Hypot(x1-x0, y1-y0)
}

package config

import "github.com/go-gl/mathgl/mgl64"

// Vec3Config YAML 中的三维坐标 {x, y, z}
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// ToVec 转换为 mgl64.Vec3
func (v Vec3Config) ToVec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// IsZero 是否为零向量（用于判断字段是否缺省）
func (v Vec3Config) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Vec3Of 由 mgl64.Vec3 构造配置值
func Vec3Of(v mgl64.Vec3) Vec3Config {
	return Vec3Config{X: v[0], Y: v[1], Z: v[2]}
}

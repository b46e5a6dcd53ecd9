package components

// BlockComponent 建筑方块
type BlockComponent struct {
	Type     string // 如 "WOOD_SMALL"
	Material string
	Width    float64
	Height   float64
	Depth    float64
}

// GroundComponent 地面标记
type GroundComponent struct{}

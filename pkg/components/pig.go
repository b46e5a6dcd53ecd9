package components

// PigComponent 猪（关卡目标）
type PigComponent struct {
	Size float64 // 球体半径
}

package components

// VisibilityComponent 表现层可见性
type VisibilityComponent struct {
	Visible bool
	Opacity float64 // 0.0 ~ 1.0
	Scale   float64
	// Removed 已标记移除，刚体会在延迟后删除
	Removed bool
}

// NewVisibility 返回完全可见的默认状态
func NewVisibility(visible bool) *VisibilityComponent {
	return &VisibilityComponent{Visible: visible, Opacity: 1, Scale: 1}
}

// Hide 隐藏实体
func (v *VisibilityComponent) Hide() {
	v.Visible = false
}

// Fade 降低不透明度，返回新值（不低于 0）
func (v *VisibilityComponent) Fade(step float64) float64 {
	v.Opacity -= step
	if v.Opacity < 0 {
		v.Opacity = 0
	}
	return v.Opacity
}

package components

// DestructibleComponent 可被摧毁实体（猪、方块）的生命值
//
// Defeated 和 Processed 都是单调标志：一旦置位不会恢复。
// Defeated 表示生命值已耗尽；Processed 表示计分和移除等副作用已执行，
// 二者分开是因为击败可能在碰撞回调中发生，而副作用在之后的帧才被处理。
type DestructibleComponent struct {
	Health    float64
	MaxHealth float64
	Defeated  bool
	Processed bool
}

// NewDestructible 创建满血的可摧毁组件
func NewDestructible(health float64) *DestructibleComponent {
	return &DestructibleComponent{Health: health, MaxHealth: health}
}

// TakeDamage 扣除生命值
// 已被击败时为空操作；返回本次调用是否导致了击败
func (d *DestructibleComponent) TakeDamage(amount float64) bool {
	if d.Defeated || amount <= 0 {
		return false
	}
	d.Health -= amount
	if d.Health <= 0 {
		d.Health = 0
		d.Defeated = true
		return true
	}
	return false
}

// Defeat 无视生命值直接击败（掉出世界）
func (d *DestructibleComponent) Defeat() bool {
	if d.Defeated {
		return false
	}
	d.Health = 0
	d.Defeated = true
	return true
}

// MarkProcessed 标记副作用已处理，只有第一次调用返回 true
func (d *DestructibleComponent) MarkProcessed() bool {
	if !d.Defeated || d.Processed {
		return false
	}
	d.Processed = true
	return true
}

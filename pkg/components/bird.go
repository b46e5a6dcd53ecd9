package components

import (
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
)

// BirdStatus 小鸟发射状态
type BirdStatus int

const (
	// BirdWaiting 在等待区，尚未装填
	BirdWaiting BirdStatus = iota
	// BirdLoaded 已装填在弹弓上
	BirdLoaded
	// BirdLaunchedActive 已发射，仍可造成伤害、触发技能
	BirdLaunchedActive
	// BirdLaunchedInactive 已发射并退场
	BirdLaunchedInactive
)

func (s BirdStatus) String() string {
	switch s {
	case BirdWaiting:
		return "waiting"
	case BirdLoaded:
		return "loaded"
	case BirdLaunchedActive:
		return "active"
	case BirdLaunchedInactive:
		return "inactive"
	}
	return "unknown"
}

// BirdComponent 小鸟
type BirdComponent struct {
	Type    string // "RED", "BLUE", "BOMB", "YELLOW"
	Ability config.AbilityKind
	Radius  float64
	Status  BirdStatus
	// AbilityUsed 技能已触发（分裂出的小鸟创建时即为 true）
	AbilityUsed bool
	// Flight 所属的发射批次：弹弓发射的小鸟为自身，分裂产物为原始小鸟
	Flight  ecs.EntityID
	Derived bool
}

// IsLaunched 是否已发射
func (b *BirdComponent) IsLaunched() bool {
	return b.Status == BirdLaunchedActive || b.Status == BirdLaunchedInactive
}

// IsActive 是否处于飞行中
func (b *BirdComponent) IsActive() bool {
	return b.Status == BirdLaunchedActive
}

// Launch 标记为已发射
func (b *BirdComponent) Launch() {
	b.Status = BirdLaunchedActive
}

// Deactivate 退场，返回状态是否发生变化
func (b *BirdComponent) Deactivate() bool {
	if b.Status != BirdLaunchedActive {
		return false
	}
	b.Status = BirdLaunchedInactive
	return true
}

// HasAbility 是否携带技能
func (b *BirdComponent) HasAbility() bool {
	return b.Ability != "" && b.Ability != config.AbilityNone
}

// ConsumeAbility 消耗技能
// 只有飞行中、携带技能且尚未使用时返回 true
func (b *BirdComponent) ConsumeAbility() bool {
	if !b.IsActive() || !b.HasAbility() || b.AbilityUsed {
		return false
	}
	b.AbilityUsed = true
	return true
}

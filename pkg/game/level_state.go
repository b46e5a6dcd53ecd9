package game

import (
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/google/uuid"
)

// Phase 关卡阶段
//
// Idle → Loading → Playing → Completing → Won | Lost
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhasePlaying
	PhaseCompleting
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseCompleting:
		return "completing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// LevelState 单局关卡的会话状态
//
// 由 Session 独占持有，各系统在帧驱动线程内读写。
type LevelState struct {
	Level       *config.LevelConfig
	LevelNumber int
	// RunID 每次加载关卡生成新值，随事件发出，UI 据此丢弃旧局的事件
	RunID uuid.UUID

	Phase   Phase
	Outcome Phase // Completing 的目标阶段（Won 或 Lost）

	// BirdQueue 尚未装填的小鸟，按关卡顺序从前往后消费
	BirdQueue []ecs.EntityID
	// CurrentBird 已装填在弹弓上的小鸟，0 表示无
	CurrentBird ecs.EntityID
	// ActiveBird 最近一次从弹弓发射、尚未退场的小鸟，0 表示无
	ActiveBird ecs.EntityID
	// TotalBirds 关卡小鸟总数（不含分裂产生的小鸟）
	TotalBirds int
	BirdsUsed  int

	Score   int
	Elapsed float64

	// 三个互斥的阶段标志
	LoadingNextBird bool
	LaunchLockout   bool
	LevelCompleting bool

	// PendingLoad 换鸟计时到期时发射锁定仍未解除，等锁定解除后再装填
	PendingLoad bool

	Paused bool

	Stars     int
	TimeBonus int
	BirdBonus int
}

// NewLevelState 为新加载的关卡创建状态
func NewLevelState(level *config.LevelConfig) *LevelState {
	return &LevelState{
		Level:       level,
		LevelNumber: level.LevelNumber,
		RunID:       uuid.New(),
		Phase:       PhaseLoading,
	}
}

// AddScore 增加分数，负值被忽略（关卡内分数单调不减）
func (ls *LevelState) AddScore(points int) int {
	if points > 0 {
		ls.Score += points
	}
	return ls.Score
}

// BirdsRemaining 尚未发射的小鸟数量（含已装填的）
func (ls *LevelState) BirdsRemaining() int {
	n := len(ls.BirdQueue)
	if ls.CurrentBird != 0 {
		n++
	}
	return n
}

// UnusedBirds 未发射的小鸟数量，用于结算奖励
func (ls *LevelState) UnusedBirds() int {
	n := ls.TotalBirds - ls.BirdsUsed
	if n < 0 {
		return 0
	}
	return n
}

// PopNextBird 取出队首小鸟
func (ls *LevelState) PopNextBird() (ecs.EntityID, bool) {
	if len(ls.BirdQueue) == 0 {
		return 0, false
	}
	id := ls.BirdQueue[0]
	ls.BirdQueue = ls.BirdQueue[1:]
	return id, true
}

// SequencingPending 换鸟或发射锁定是否进行中
func (ls *LevelState) SequencingPending() bool {
	return ls.LoadingNextBird || ls.LaunchLockout
}

// IsPlaying 是否处于可操作的进行阶段
func (ls *LevelState) IsPlaying() bool {
	return ls.Phase == PhasePlaying && !ls.LevelCompleting
}

// BeginCompleting 进入结算阶段
// 只在第一次调用时生效并返回 true；进入后清除另外两个阶段标志
func (ls *LevelState) BeginCompleting(outcome Phase) bool {
	if ls.LevelCompleting {
		return false
	}
	ls.LevelCompleting = true
	ls.LoadingNextBird = false
	ls.LaunchLockout = false
	ls.PendingLoad = false
	ls.Phase = PhaseCompleting
	ls.Outcome = outcome
	return true
}

// Resolve 结算完成，进入 Won 或 Lost
func (ls *LevelState) Resolve() Phase {
	if ls.Phase == PhaseCompleting {
		ls.Phase = ls.Outcome
	}
	return ls.Phase
}

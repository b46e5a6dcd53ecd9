package game

import (
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// EventType 发给表现层的事件类型
type EventType int

const (
	EventLevelStarted EventType = iota
	EventScoreChanged
	EventBirdsRemainingChanged
	EventBirdLoaded
	EventBirdLaunched
	EventAbilityActivated
	EventEffect
	EventEntityRemoved
	EventTrajectoryUpdated
	EventTrajectoryHidden
	EventLevelCompleting
	EventLevelWon
	EventLevelLost
	EventPaused
	EventResumed
	EventReturnedToMenu
)

var eventTypeNames = map[EventType]string{
	EventLevelStarted:          "LevelStarted",
	EventScoreChanged:          "ScoreChanged",
	EventBirdsRemainingChanged: "BirdsRemainingChanged",
	EventBirdLoaded:            "BirdLoaded",
	EventBirdLaunched:          "BirdLaunched",
	EventAbilityActivated:      "AbilityActivated",
	EventEffect:                "Effect",
	EventEntityRemoved:         "EntityRemoved",
	EventTrajectoryUpdated:     "TrajectoryUpdated",
	EventTrajectoryHidden:      "TrajectoryHidden",
	EventLevelCompleting:       "LevelCompleting",
	EventLevelWon:              "LevelWon",
	EventLevelLost:             "LevelLost",
	EventPaused:                "Paused",
	EventResumed:               "Resumed",
	EventReturnedToMenu:        "ReturnedToMenu",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// EffectKind 视觉效果类型（仅供表现层参考）
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectExplosion
	EffectTrail
	EffectFade
	EffectStarBurst
	EffectSplit
	EffectBoost
)

// Event 会话状态变化通知
// 只填写与 Type 相关的字段
type Event struct {
	Type        EventType
	RunID       uuid.UUID
	LevelNumber int

	Entity         ecs.EntityID
	Score          int
	BirdsRemaining int
	Stars          int
	TimeBonus      int
	BirdBonus      int
	HasNextLevel   bool

	Ability  config.AbilityKind
	Effect   EffectKind
	Opacity  float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Points   []mgl64.Vec3
}

// EventQueue 先进先出的事件队列，由帧驱动写入、UI 每帧取空
type EventQueue struct {
	events []Event
}

// NewEventQueue 创建事件队列
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 32)}
}

// Push 追加事件
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain 取出全部事件
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len 待取事件数量
func (q *EventQueue) Len() int {
	return len(q.events)
}

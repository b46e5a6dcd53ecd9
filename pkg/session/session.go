package session

import (
	"fmt"
	"log"

	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/entities"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/decker502/slingshot/pkg/schedule"
	"github.com/decker502/slingshot/pkg/systems"
)

// Session 关卡会话与帧驱动
//
// 职责：
//   - 持有实体、物理世界、调度器和全部玩法系统
//   - 加载/卸载关卡，处理 UI 命令和指针输入
//   - 每帧按固定顺序推进：调度器 → 物理 → 同步 → 伤害 → 摧毁 → 关卡评估 → 实体清理
//
// 架构说明：
//   - 单线程，所有状态只在 Update/HandleInput/HandleCommand 中修改
//   - 卸载关卡时重置调度器，旧关卡安排的延迟任务全部失效
//   - 对外只通过事件队列和 Snapshot 暴露状态
type Session struct {
	levels *game.LevelManager
	ctx    *systems.Context

	bodySync    *systems.BodySyncSystem
	damage      *systems.DamageSystem
	destruction *systems.DestructionSystem
	slingshot   *systems.SlingshotSystem
	abilities   *systems.AbilitySystem
	level       *systems.LevelSystem
}

// NewSpace 按玩法配置创建物理世界
func NewSpace(gp *config.GameplayConfig) *physics.Space {
	materials := make(map[string]physics.Material, len(gp.Materials))
	for name, m := range gp.Materials {
		materials[name] = physics.Material{Friction: m.Friction, Restitution: m.Restitution}
	}
	return physics.NewSpace(physics.SpaceConfig{
		Gravity:         gp.Physics.Gravity,
		TimeStep:        gp.Physics.TimeStep,
		MaxSubSteps:     gp.Physics.MaxSubSteps,
		MaxFrameDelta:   gp.Physics.MaxFrameDelta,
		IslandSleepTime: gp.Physics.IslandSleepTime,
		Materials:       physics.NewContactMaterialTable(materials),
	})
}

// New 创建会话
//
// 参数：
//
//	gp - 玩法配置
//	levels - 关卡列表
//	world - 物理世界，为 nil 时使用 NewSpace(gp)
func New(gp *config.GameplayConfig, levels *game.LevelManager, world physics.World) (*Session, error) {
	if gp == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if levels == nil {
		return nil, fmt.Errorf("level manager cannot be nil")
	}
	if world == nil {
		world = NewSpace(gp)
	}

	ctx := &systems.Context{
		EntityManager: ecs.NewEntityManager(),
		World:         world,
		Config:        gp,
		Scheduler:     schedule.NewScheduler(),
		Events:        game.NewEventQueue(),
	}
	s := &Session{
		levels:      levels,
		ctx:         ctx,
		bodySync:    systems.NewBodySyncSystem(ctx),
		damage:      systems.NewDamageSystem(ctx),
		destruction: systems.NewDestructionSystem(ctx),
		slingshot:   systems.NewSlingshotSystem(ctx),
		abilities:   systems.NewAbilitySystem(ctx),
	}
	s.level = systems.NewLevelSystem(ctx, s.slingshot, s.abilities)
	s.level.HasNextLevel = levels.HasNext
	return s, nil
}

// State 当前关卡状态，未加载关卡时为 nil
func (s *Session) State() *game.LevelState {
	return s.ctx.State
}

// Config 玩法配置
func (s *Session) Config() *config.GameplayConfig {
	return s.ctx.Config
}

// Levels 关卡列表
func (s *Session) Levels() *game.LevelManager {
	return s.levels
}

// World 物理世界
func (s *Session) World() physics.World {
	return s.ctx.World
}

// StartLevel 卸载当前关卡并加载第 n 关
// 关卡不存在时返回包装了 config.ErrLevelNotFound 的错误，当前关卡保持不变
func (s *Session) StartLevel(n int) error {
	level := s.levels.GetLevel(n)
	if level == nil {
		return fmt.Errorf("failed to start level %d: %w", n, config.ErrLevelNotFound)
	}
	if err := s.ctx.Config.CheckLevel(level); err != nil {
		return fmt.Errorf("failed to start level %d: %w", n, err)
	}

	s.Teardown()
	state := game.NewLevelState(level)
	s.ctx.State = state

	if err := s.populate(level); err != nil {
		s.Teardown()
		s.ctx.State = nil
		return fmt.Errorf("failed to load level %d: %w", n, err)
	}

	state.Phase = game.PhasePlaying
	s.ctx.Emit(game.Event{Type: game.EventLevelStarted, BirdsRemaining: state.BirdsRemaining()})
	s.ctx.Emit(game.Event{Type: game.EventScoreChanged, Score: state.Score})
	s.level.LoadNextBird()

	log.Printf("[Session] Level %d %q started (run %s): %d birds, %d pigs, %d structures",
		level.LevelNumber, level.Name, state.RunID, len(level.Birds), len(level.Pigs), len(level.Structures))
	return nil
}

// populate 创建地面、弹弓、小鸟、猪和建筑
func (s *Session) populate(level *config.LevelConfig) error {
	em := s.ctx.EntityManager
	world := s.ctx.World
	gp := s.ctx.Config
	state := s.ctx.State

	if _, err := entities.NewGround(em, world); err != nil {
		return err
	}
	slingshot, err := entities.NewSlingshot(em, gp.Slingshot, level.Slingshot.ToVec())
	if err != nil {
		return err
	}

	for i, spawn := range level.Birds {
		id, err := entities.NewBird(em, world, gp, spawn)
		if err != nil {
			return fmt.Errorf("bird %d: %w", i, err)
		}
		state.BirdQueue = append(state.BirdQueue, id)
	}
	state.TotalBirds = len(state.BirdQueue)

	for i, spawn := range level.Pigs {
		if _, err := entities.NewPig(em, world, gp, spawn, s.damage.OnCollision); err != nil {
			return fmt.Errorf("pig %d: %w", i, err)
		}
	}
	for i, spawn := range level.Structures {
		if _, err := entities.NewBlock(em, world, gp, spawn, s.damage.OnCollision); err != nil {
			return fmt.Errorf("structure %d: %w", i, err)
		}
	}

	s.slingshot.Attach(slingshot)
	return nil
}

// Restart 重新开始当前关卡
func (s *Session) Restart() error {
	current := s.levels.Current()
	if current == 0 {
		return fmt.Errorf("no level to restart")
	}
	return s.StartLevel(current)
}

// NextLevel 进入下一关
func (s *Session) NextLevel() error {
	current := s.levels.Current()
	if !s.levels.HasNext() {
		return fmt.Errorf("no level after %d: %w", current, config.ErrLevelNotFound)
	}
	return s.StartLevel(current + 1)
}

// MainMenu 卸载关卡并通知 UI 返回主菜单
func (s *Session) MainMenu() {
	s.ctx.Emit(game.Event{Type: game.EventReturnedToMenu})
	s.Teardown()
	s.ctx.State = nil
	log.Printf("[Session] Returned to main menu")
}

// Teardown 卸载当前关卡的全部实体、刚体和延迟任务
func (s *Session) Teardown() {
	s.ctx.Scheduler.Reset()
	s.ctx.World.Clear()
	s.ctx.EntityManager.Clear()
	s.damage.Reset()
	s.slingshot.Detach()
	s.level.Reset()
	if st := s.ctx.State; st != nil && st.Phase != game.PhaseWon && st.Phase != game.PhaseLost {
		st.Phase = game.PhaseIdle
	}
}

// Pause 暂停，调度器和物理都停止推进
func (s *Session) Pause() {
	st := s.ctx.State
	if st == nil || st.Paused {
		return
	}
	st.Paused = true
	s.ctx.Emit(game.Event{Type: game.EventPaused})
}

// Resume 恢复
func (s *Session) Resume() {
	st := s.ctx.State
	if st == nil || !st.Paused {
		return
	}
	st.Paused = false
	s.ctx.Emit(game.Event{Type: game.EventResumed})
}

// HandleCommand 处理 UI 命令
func (s *Session) HandleCommand(cmd game.Command) error {
	switch cmd.Type {
	case game.CommandStartLevel:
		return s.StartLevel(cmd.Level)
	case game.CommandPause:
		s.Pause()
	case game.CommandResume:
		s.Resume()
	case game.CommandRestart:
		return s.Restart()
	case game.CommandNextLevel:
		return s.NextLevel()
	case game.CommandMainMenu:
		s.MainMenu()
	default:
		return fmt.Errorf("unknown command %v", cmd.Type)
	}
	return nil
}

// HandleInput 处理已投影到游戏平面的指针输入
//
// 拖拽只能从弹弓静止点附近开始，且不在发射锁定内；
// 点击距弹弓足够远时触发飞行中小鸟的技能。
func (s *Session) HandleInput(ev game.InputEvent) {
	st := s.ctx.State
	if st == nil || st.Paused || !st.IsPlaying() {
		return
	}

	switch ev.Kind {
	case game.InputDragStart:
		if st.LaunchLockout || !s.slingshot.CanGrab(ev.Position) {
			return
		}
		s.slingshot.StartDrag()

	case game.InputDrag:
		if !s.slingshot.IsDragging() {
			return
		}
		if _, ok := s.slingshot.UpdateDrag(ev.Position); ok {
			s.ctx.Emit(game.Event{Type: game.EventTrajectoryUpdated, Points: s.slingshot.CalculateTrajectory()})
		}

	case game.InputDragEnd:
		if !s.slingshot.IsDragging() {
			return
		}
		s.slingshot.UpdateDrag(ev.Position)
		bird, velocity, ok := s.slingshot.EndDrag()
		s.ctx.Emit(game.Event{Type: game.EventTrajectoryHidden})
		if ok {
			s.level.LaunchBird(bird, velocity)
		}

	case game.InputClick:
		// 按下后没有移动：放弃可能已经开始的拖拽
		if s.slingshot.CancelDrag() {
			s.ctx.Emit(game.Event{Type: game.EventTrajectoryHidden})
			return
		}
		if ev.Position.Sub(s.slingshot.RestPoint()).Len() <= s.ctx.Config.Slingshot.ClickExclusionRadius {
			return
		}
		s.level.ActivateAbility()
	}
}

// Update 推进一帧
// 暂停时什么都不做；结算阶段物理继续运行，胜负已定后只推进调度器（星级特效）
func (s *Session) Update(deltaTime float64) {
	st := s.ctx.State
	if st == nil || st.Paused {
		return
	}
	if limit := s.ctx.Config.Physics.MaxFrameDelta; deltaTime > limit {
		deltaTime = limit
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	s.ctx.Scheduler.Advance(deltaTime)

	if st.Phase == game.PhasePlaying || st.Phase == game.PhaseCompleting {
		st.Elapsed += deltaTime
		s.ctx.World.Step(deltaTime)
		s.bodySync.Update(deltaTime)
		s.damage.Update(deltaTime)
		s.destruction.Update(deltaTime)
		s.level.Update(deltaTime)
	}

	s.ctx.EntityManager.RemoveMarkedEntities()
}

// DrainEvents 取出本帧之前产生的全部事件
func (s *Session) DrainEvents() []game.Event {
	return s.ctx.Events.Drain()
}

package systems

import (
	"log"
	"math"

	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/config"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/go-gl/mathgl/mgl64"
)

// starBurstInterval 胜利时每颗星的特效间隔（秒）
const starBurstInterval = 0.5

// LevelSystem 关卡流程系统
//
// 职责：
//   - 装填下一只小鸟、发射小鸟（发射锁定）
//   - 每帧检测胜利条件和飞行中小鸟的退场（出界或停止）
//   - 小鸟退场后按延迟装填下一只，或在小鸟用完时判负
//   - 结算阶段的宽限延迟、胜利奖励和星级
//
// 架构说明：
//   - 通过 Context.State 读写关卡状态，所有延迟动作都交给调度器，关卡卸载时一并失效
//   - 退场按"发射批次"跟踪：弹弓发射的小鸟和它分裂出的小鸟属于同一批次，
//     批次内没有飞行中的小鸟时整批退场
type LevelSystem struct {
	ctx       *Context
	slingshot *SlingshotSystem
	abilities *AbilitySystem

	// 当前批次的退场情况，决定换鸟延迟
	flightOutOfBounds int
	flightStopped     bool

	// HasNextLevel 胜利事件中的"有下一关"标志，可为 nil
	HasNextLevel func() bool
}

// NewLevelSystem 创建关卡流程系统
//
// 参数：
//
//	ctx - 共享上下文
//	slingshot - 弹弓系统（装填和释放）
//	abilities - 技能系统
func NewLevelSystem(ctx *Context, slingshot *SlingshotSystem, abilities *AbilitySystem) *LevelSystem {
	return &LevelSystem{
		ctx:       ctx,
		slingshot: slingshot,
		abilities: abilities,
	}
}

// Reset 清除批次跟踪（加载新关卡时调用）
func (s *LevelSystem) Reset() {
	s.flightOutOfBounds = 0
	s.flightStopped = false
}

// Update 每帧评估关卡状态
func (s *LevelSystem) Update(deltaTime float64) {
	s.Evaluate()
}

// Evaluate 检测胜负和小鸟退场
//
// 执行流程（仅在 Playing 且未进入结算时）：
//  1. 所有猪被击败 → 进入结算，宽限后判胜
//  2. 换鸟或发射锁定进行中 → 本帧不再检查
//  3. 检查当前批次的小鸟是否出界或停止，整批退场后开始换鸟
func (s *LevelSystem) Evaluate() {
	st := s.ctx.State
	if st == nil || st.Phase != game.PhasePlaying || st.LevelCompleting {
		return
	}

	if s.AllPigsDefeated() {
		s.beginCompleting(game.PhaseWon)
		return
	}

	if st.SequencingPending() {
		return
	}

	if st.ActiveBird == 0 {
		return
	}
	if s.updateFlight(st.ActiveBird) > 0 {
		return
	}
	s.advance(s.flightOutOfBounds > 0 && !s.flightStopped)
}

// AllPigsDefeated 关卡中的猪是否全部被击败
func (s *LevelSystem) AllPigsDefeated() bool {
	em := s.ctx.EntityManager
	for _, id := range ecs.GetEntitiesWith2[*components.PigComponent, *components.DestructibleComponent](em) {
		d, _ := ecs.GetComponent[*components.DestructibleComponent](em, id)
		if !d.Defeated {
			return false
		}
	}
	return true
}

// updateFlight 让批次内出界或停止的小鸟退场，返回仍在飞行的数量
func (s *LevelSystem) updateFlight(flight ecs.EntityID) int {
	em := s.ctx.EntityManager
	bounds := s.ctx.Config.Bounds
	inFlight := 0

	for _, id := range ecs.GetEntitiesWith2[*components.BirdComponent, *components.TransformComponent](em) {
		b, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		if b.Flight != flight || !b.IsActive() {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

		switch {
		case IsOutOfBounds(transform.Position, bounds):
			b.Deactivate()
			s.flightOutOfBounds++
			s.fadeOut(id)
			log.Printf("[LevelSystem] Bird %d out of bounds at %v", id, transform.Position)
		case IsStopped(transform, bounds):
			b.Deactivate()
			s.flightStopped = true
			log.Printf("[LevelSystem] Bird %d stopped at %v", id, transform.Position)
		default:
			inFlight++
		}
	}
	return inFlight
}

// advance 当前批次已退场：还有小鸟则延迟装填，否则判负
func (s *LevelSystem) advance(outOfBounds bool) {
	st := s.ctx.State
	st.ActiveBird = 0
	st.LoadingNextBird = true

	if st.BirdsRemaining() > 0 {
		delay := s.ctx.Config.Sequencing.NextBirdStopped
		if outOfBounds {
			delay = s.ctx.Config.Sequencing.NextBirdOutOfBounds
		}
		s.ctx.Scheduler.After(delay, 0, func() {
			s.ctx.State.LoadingNextBird = false
			s.LoadNextBird()
		})
		return
	}

	st.LoadingNextBird = false
	if !s.AllPigsDefeated() {
		s.beginCompleting(game.PhaseLost)
	}
}

// LoadNextBird 把队首小鸟装填到弹弓上
//
// 以下情况不装填：已进入结算、换鸟进行中、弹弓上已有小鸟、没有剩余小鸟。
// 发射锁定期间的请求会在锁定解除时补上。
func (s *LevelSystem) LoadNextBird() bool {
	st := s.ctx.State
	if st == nil || st.LevelCompleting {
		return false
	}
	if st.LaunchLockout {
		st.PendingLoad = true
		return false
	}
	if st.LoadingNextBird || s.slingshot.LoadedBird() != 0 {
		return false
	}

	id, ok := st.PopNextBird()
	if !ok {
		st.CurrentBird = 0
		return false
	}
	if !s.slingshot.LoadBird(id) {
		log.Printf("[LevelSystem] Failed to load bird %d", id)
		return false
	}
	st.CurrentBird = id

	s.ctx.Emit(game.Event{Type: game.EventBirdLoaded, Entity: id, BirdsRemaining: st.BirdsRemaining()})
	s.ctx.Emit(game.Event{Type: game.EventBirdsRemainingChanged, BirdsRemaining: st.BirdsRemaining()})
	return true
}

// LaunchBird 发射弹弓释放的小鸟
// 设置发射锁定，开始新的发射批次
func (s *LevelSystem) LaunchBird(bird ecs.EntityID, velocity mgl64.Vec3) {
	st := s.ctx.State
	em := s.ctx.EntityManager
	b, ok := ecs.GetComponent[*components.BirdComponent](em, bird)
	if !ok || st == nil {
		return
	}

	b.Launch()
	if body, ok := ecs.GetComponent[*components.BodyComponent](em, bird); ok {
		s.ctx.World.SetVelocity(body.Body, velocity)
		s.ctx.World.WakeUp(body.Body)
	}
	var pos mgl64.Vec3
	if transform, ok := s.ctx.transformOf(bird); ok {
		transform.Velocity = velocity
		transform.Asleep = false
		pos = transform.Position
	}

	st.BirdsUsed++
	if st.CurrentBird == bird {
		st.CurrentBird = 0
	}
	st.ActiveBird = bird
	s.Reset()

	st.LaunchLockout = true
	s.ctx.Scheduler.After(s.ctx.Config.Sequencing.LaunchLockout, 0, func() {
		cur := s.ctx.State
		cur.LaunchLockout = false
		if cur.PendingLoad {
			cur.PendingLoad = false
			s.LoadNextBird()
		}
	})
	s.scheduleTrail(bird)

	s.ctx.Emit(game.Event{Type: game.EventBirdLaunched, Entity: bird, Position: pos, Velocity: velocity})
	s.ctx.Emit(game.Event{Type: game.EventBirdsRemainingChanged, BirdsRemaining: st.BirdsRemaining()})
	log.Printf("[LevelSystem] Bird %d launched with velocity %v (%d used)", bird, velocity, st.BirdsUsed)
}

// ActivateAbility 触发当前批次小鸟的技能
func (s *LevelSystem) ActivateAbility() *AbilityResult {
	st := s.ctx.State
	if st == nil || !st.IsPlaying() || st.ActiveBird == 0 {
		return nil
	}
	result := s.abilities.Activate(st.ActiveBird)
	if result == nil {
		return nil
	}

	s.ctx.Emit(game.Event{
		Type:     game.EventAbilityActivated,
		Entity:   result.Bird,
		Ability:  result.Kind,
		Position: result.Position,
		Velocity: result.Velocity,
	})

	effect := game.EffectExplosion
	switch result.Kind {
	case config.AbilitySplit:
		effect = game.EffectSplit
		for _, id := range result.Spawned {
			s.scheduleTrail(id)
		}
	case config.AbilityBoost:
		effect = game.EffectBoost
	}
	s.ctx.Emit(game.Event{Type: game.EventEffect, Effect: effect, Entity: result.Bird, Position: result.Position})
	return result
}

func (s *LevelSystem) beginCompleting(outcome game.Phase) {
	st := s.ctx.State
	if !st.BeginCompleting(outcome) {
		return
	}
	log.Printf("[LevelSystem] Level %d completing (%v)", st.LevelNumber, outcome)
	s.ctx.Emit(game.Event{Type: game.EventLevelCompleting, Score: st.Score})

	s.ctx.Scheduler.After(s.ctx.Config.Sequencing.CompletionGrace, 0, func() {
		if outcome == game.PhaseWon {
			s.resolveWin()
		} else {
			s.resolveLose()
		}
	})
}

// resolveWin 结算胜利：时间奖励、剩余小鸟奖励、星级
func (s *LevelSystem) resolveWin() {
	st := s.ctx.State
	if st.Resolve() != game.PhaseWon {
		return
	}
	scoring := s.ctx.Config.Scoring

	st.TimeBonus = game.TimeBonus(st.Elapsed, scoring)
	st.BirdBonus = game.BirdBonus(st.UnusedBirds(), scoring)
	st.AddScore(st.TimeBonus + st.BirdBonus)
	st.Stars = game.StarsFor(st.Score, scoring)

	hasNext := false
	if s.HasNextLevel != nil {
		hasNext = s.HasNextLevel()
	}

	s.ctx.Emit(game.Event{Type: game.EventScoreChanged, Score: st.Score})
	s.ctx.Emit(game.Event{
		Type:         game.EventLevelWon,
		Score:        st.Score,
		Stars:        st.Stars,
		TimeBonus:    st.TimeBonus,
		BirdBonus:    st.BirdBonus,
		HasNextLevel: hasNext,
	})
	log.Printf("[LevelSystem] Level %d won: score=%d stars=%d (time bonus %d, bird bonus %d)",
		st.LevelNumber, st.Score, st.Stars, st.TimeBonus, st.BirdBonus)

	for i := 0; i < st.Stars; i++ {
		star := i
		s.ctx.Scheduler.After(float64(star)*starBurstInterval, 0, func() {
			s.ctx.Emit(game.Event{Type: game.EventEffect, Effect: game.EffectStarBurst, Stars: star + 1})
		})
	}
}

func (s *LevelSystem) resolveLose() {
	st := s.ctx.State
	if st.Resolve() != game.PhaseLost {
		return
	}
	s.ctx.Emit(game.Event{Type: game.EventLevelLost, Score: st.Score})
	log.Printf("[LevelSystem] Level %d lost: score=%d", st.LevelNumber, st.Score)
}

// scheduleTrail 飞行中每隔一段时间发出拖尾效果，小鸟退场或休眠后停止
func (s *LevelSystem) scheduleTrail(bird ecs.EntityID) {
	s.ctx.Scheduler.AfterUnique(s.ctx.Config.Sequencing.TrailInterval, owner(bird), "trail", func() {
		b, ok := ecs.GetComponent[*components.BirdComponent](s.ctx.EntityManager, bird)
		if !ok || !b.IsActive() {
			return
		}
		transform, ok := s.ctx.transformOf(bird)
		if !ok || transform.Asleep {
			return
		}
		s.ctx.Emit(game.Event{Type: game.EventEffect, Effect: game.EffectTrail, Entity: bird, Position: transform.Position})
		s.scheduleTrail(bird)
	})
}

// fadeOut 出界小鸟逐步淡出，结束后移除刚体和实体
func (s *LevelSystem) fadeOut(bird ecs.EntityID) {
	s.fadeStep(bird, 1)
}

func (s *LevelSystem) fadeStep(bird ecs.EntityID, step int) {
	seq := s.ctx.Config.Sequencing
	s.ctx.Scheduler.AfterUnique(seq.FadeInterval, owner(bird), "fade", func() {
		em := s.ctx.EntityManager
		vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, bird)
		if !ok {
			return
		}
		opacity := vis.Fade(seq.FadeStep)
		s.ctx.Emit(game.Event{Type: game.EventEffect, Effect: game.EffectFade, Entity: bird, Opacity: opacity})
		if step < seq.FadeSteps {
			s.fadeStep(bird, step+1)
			return
		}

		vis.Hide()
		vis.Removed = true
		if body, ok := ecs.GetComponent[*components.BodyComponent](em, bird); ok {
			s.ctx.World.RemoveBody(body.Body)
		}
		em.DestroyEntity(bird)
		s.ctx.Emit(game.Event{Type: game.EventEntityRemoved, Entity: bird})
	})
}

// IsOutOfBounds 低于最低高度，或水平/垂直距离超出游戏区域
func IsOutOfBounds(pos mgl64.Vec3, bounds config.BoundsConfig) bool {
	return pos.Y() < bounds.MinY || math.Abs(pos.X()) > bounds.MaxAbsX || math.Abs(pos.Y()) > bounds.MaxAbsY
}

// IsStopped 物理引擎报告休眠，或贴近地面且速度很小
func IsStopped(transform *components.TransformComponent, bounds config.BoundsConfig) bool {
	if transform.Asleep {
		return true
	}
	return transform.Velocity.Len() < bounds.StopSpeed && transform.Position.Y() < bounds.StopHeight
}

package session

import (
	"github.com/decker502/slingshot/pkg/components"
	"github.com/decker502/slingshot/pkg/ecs"
	"github.com/decker502/slingshot/pkg/game"
	"github.com/decker502/slingshot/pkg/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// EntityKind 快照中的实体类别
type EntityKind int

const (
	KindGround EntityKind = iota
	KindBird
	KindPig
	KindBlock
)

// EntityView 单个实体的只读视图
type EntityView struct {
	ID       ecs.EntityID
	Kind     EntityKind
	Type     string // 小鸟或方块类型
	Material string
	Shape    physics.Shape
	Position mgl64.Vec3
	Angle    float64
	Visible  bool
	Opacity  float64
	Scale    float64

	Health    float64
	MaxHealth float64
	Status    components.BirdStatus
}

// SlingshotView 弹弓的只读视图
type SlingshotView struct {
	Base       mgl64.Vec3
	RestPoint  mgl64.Vec3
	DragPoint  mgl64.Vec3
	Dragging   bool
	LoadedBird ecs.EntityID
}

// Snapshot 表现层每帧读取的会话状态
type Snapshot struct {
	LevelNumber    int
	LevelName      string
	Phase          game.Phase
	Paused         bool
	Score          int
	BirdsRemaining int
	Stars          int
	Elapsed        float64

	Slingshot  SlingshotView
	Trajectory []mgl64.Vec3
	Entities   []EntityView
}

// Snapshot 生成当前帧的只读快照，未加载关卡时返回 nil
func (s *Session) Snapshot() *Snapshot {
	st := s.ctx.State
	if st == nil {
		return nil
	}
	snap := &Snapshot{
		LevelNumber:    st.LevelNumber,
		Phase:          st.Phase,
		Paused:         st.Paused,
		Score:          st.Score,
		BirdsRemaining: st.BirdsRemaining(),
		Stars:          st.Stars,
		Elapsed:        st.Elapsed,
	}
	if st.Level != nil {
		snap.LevelName = st.Level.Name
	}

	em := s.ctx.EntityManager
	for _, id := range ecs.GetEntitiesWith1[*components.SlingshotComponent](em) {
		sc, _ := ecs.GetComponent[*components.SlingshotComponent](em, id)
		snap.Slingshot = SlingshotView{
			Base:       sc.Base,
			RestPoint:  sc.RestPoint,
			DragPoint:  sc.DragPoint(),
			Dragging:   sc.State == components.DragDragging,
			LoadedBird: sc.LoadedBird,
		}
	}
	snap.Trajectory = s.slingshot.CalculateTrajectory()

	for _, id := range ecs.GetEntitiesWith2[*components.BodyComponent, *components.TransformComponent](em) {
		if view, ok := s.entityView(id); ok {
			snap.Entities = append(snap.Entities, view)
		}
	}
	return snap
}

func (s *Session) entityView(id ecs.EntityID) (EntityView, bool) {
	em := s.ctx.EntityManager
	body, _ := ecs.GetComponent[*components.BodyComponent](em, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

	view := EntityView{
		ID:       id,
		Material: body.Material,
		Shape:    body.Shape,
		Position: transform.Position,
		Angle:    transform.Angle,
		Visible:  true,
		Opacity:  1,
		Scale:    1,
	}

	switch {
	case ecs.HasComponent[*components.GroundComponent](em, id):
		view.Kind = KindGround
	case ecs.HasComponent[*components.BirdComponent](em, id):
		b, _ := ecs.GetComponent[*components.BirdComponent](em, id)
		view.Kind = KindBird
		view.Type = b.Type
		view.Status = b.Status
	case ecs.HasComponent[*components.PigComponent](em, id):
		view.Kind = KindPig
	case ecs.HasComponent[*components.BlockComponent](em, id):
		blk, _ := ecs.GetComponent[*components.BlockComponent](em, id)
		view.Kind = KindBlock
		view.Type = blk.Type
	default:
		return EntityView{}, false
	}

	if d, ok := ecs.GetComponent[*components.DestructibleComponent](em, id); ok {
		view.Health = d.Health
		view.MaxHealth = d.MaxHealth
	}
	if vis, ok := ecs.GetComponent[*components.VisibilityComponent](em, id); ok {
		view.Visible = vis.Visible
		view.Opacity = vis.Opacity
		view.Scale = vis.Scale
	}
	return view, true
}

// Package schedule 提供由帧驱动推进的延时任务
//
// 任务不依赖系统时钟：只有 Advance 推进虚拟时间时才会触发，暂停时不调用 Advance 即可冻结全部计时。
// 每个任务可以归属一个 owner（通常是实体ID），用于按实体取消；
// Reset 会提升代号，使此前安排的全部任务失效（关卡卸载时调用）。
package schedule

import "container/heap"

// TaskID 任务标识
type TaskID uint64

// Owner 任务归属，0 表示不归属任何实体
type Owner uint64

type task struct {
	id         TaskID
	fireAt     float64
	seq        uint64
	owner      Owner
	key        string
	generation uint64
	fn         func()
	cancelled  bool
	index      int
}

type uniqueKey struct {
	owner Owner
	key   string
}

// Scheduler 延时任务调度器
type Scheduler struct {
	now        float64
	nextID     TaskID
	seq        uint64
	generation uint64
	queue      taskHeap
	byID       map[TaskID]*task
	unique     map[uniqueKey]*task
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		nextID: 1,
		byID:   make(map[TaskID]*task),
		unique: make(map[uniqueKey]*task),
	}
}

// Now 当前虚拟时间（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Generation 当前代号
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending 尚未触发且未取消的任务数量
func (s *Scheduler) Pending() int {
	return len(s.byID)
}

// After 在 delay 秒后执行 fn
func (s *Scheduler) After(delay float64, owner Owner, fn func()) TaskID {
	return s.push(delay, owner, "", fn).id
}

// AfterUnique 同一 owner+key 只允许存在一个待执行任务
// 返回 false 表示已有同名任务在等待，本次不安排
func (s *Scheduler) AfterUnique(delay float64, owner Owner, key string, fn func()) bool {
	k := uniqueKey{owner, key}
	if _, exists := s.unique[k]; exists {
		return false
	}
	t := s.push(delay, owner, key, fn)
	s.unique[k] = t
	return true
}

// HasPending 指定 owner+key 的任务是否在等待
func (s *Scheduler) HasPending(owner Owner, key string) bool {
	_, ok := s.unique[uniqueKey{owner, key}]
	return ok
}

// Cancel 取消任务，返回是否取消成功
func (s *Scheduler) Cancel(id TaskID) bool {
	t, ok := s.byID[id]
	if !ok {
		return false
	}
	s.drop(t)
	return true
}

// CancelOwner 取消某 owner 的全部任务，返回取消数量
func (s *Scheduler) CancelOwner(owner Owner) int {
	n := 0
	for _, t := range s.byID {
		if t.owner == owner {
			s.drop(t)
			n++
		}
	}
	return n
}

// Reset 使全部待执行任务失效并重置虚拟时间
func (s *Scheduler) Reset() {
	s.generation++
	s.queue = s.queue[:0]
	s.byID = make(map[TaskID]*task)
	s.unique = make(map[uniqueKey]*task)
	s.now = 0
}

// Advance 推进 dt 秒并按 (触发时间, 安排顺序) 执行到期任务
//
// 每个任务执行时 Now() 等于它的触发时间，因此回调中再次安排的任务从该时刻起计时，
// 已到期的会在本次调用内执行；全部执行完后 Now() 停在本帧末尾。
// 回调中调用 Reset 后，旧代号的任务不再执行，本次推进也随之结束。
// 返回执行的任务数量。
func (s *Scheduler) Advance(dt float64) int {
	target := s.now
	if dt > 0 {
		target += dt
	}
	gen := s.generation
	fired := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.fireAt > target {
			break
		}
		heap.Pop(&s.queue)
		if next.cancelled || next.generation != s.generation {
			continue
		}
		s.forget(next)
		if next.fireAt > s.now {
			s.now = next.fireAt
		}
		next.fn()
		fired++
		if s.generation != gen {
			return fired
		}
	}
	s.now = target
	return fired
}

func (s *Scheduler) push(delay float64, owner Owner, key string, fn func()) *task {
	if delay < 0 {
		delay = 0
	}
	t := &task{
		id:         s.nextID,
		fireAt:     s.now + delay,
		seq:        s.seq,
		owner:      owner,
		key:        key,
		generation: s.generation,
		fn:         fn,
	}
	s.nextID++
	s.seq++
	heap.Push(&s.queue, t)
	s.byID[t.id] = t
	return t
}

// drop 标记取消，堆中的条目在出队时丢弃
func (s *Scheduler) drop(t *task) {
	t.cancelled = true
	s.forget(t)
}

func (s *Scheduler) forget(t *task) {
	delete(s.byID, t.id)
	if t.key != "" {
		k := uniqueKey{t.owner, t.key}
		if s.unique[k] == t {
			delete(s.unique, k)
		}
	}
}

// taskHeap 实现 heap.Interface
type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].fireAt != h[j].fireAt {
		return h[i].fireAt < h[j].fireAt
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

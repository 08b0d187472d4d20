package game

// timeEpsilon 吸收按帧累加时钟带来的浮点误差
const timeEpsilon = 1e-9

// Task 调度器中的延迟回调
type Task func()

// scheduledTask 一个等待执行的回调
type scheduledTask struct {
	dueTick  uint64  // 按帧调度时的目标帧
	dueTime  float64 // 按时间调度时的目标时刻（秒）
	byTime   bool
	callback Task
}

// Scheduler 单线程的延迟执行队列
//
// 取代协程式等待：回调按 "帧末"、"N 帧后"、"T 秒后" 三种方式排队，
// 由场景主循环在固定位置驱动。所有回调都在 Update 所在的 goroutine 上执行，
// 因此不需要加锁。
//
// 每帧调用顺序：
//  1. Update(dt): 推进时钟与帧计数，执行到期的按时间/按帧任务
//  2. ...游戏系统更新（期间可能调用 AfterEndOfFrame）...
//  3. EndOfFrame(): 执行本帧排入的帧末任务
//
// 回调内部再次排队的任务不会在同一次排空中执行。
type Scheduler struct {
	tick       uint64
	now        float64
	endOfFrame []Task
	pending    []scheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{
		endOfFrame: make([]Task, 0),
		pending:    make([]scheduledTask, 0),
	}
}

// Now 返回调度器内部时钟（秒）
func (s *Scheduler) Now() float64 {
	return s.now
}

// Tick 返回已推进的帧数
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Pending 返回尚未执行的任务数量（含帧末任务）
func (s *Scheduler) Pending() int {
	return len(s.pending) + len(s.endOfFrame)
}

// AfterEndOfFrame 在当前帧所有系统更新完成后执行回调
func (s *Scheduler) AfterEndOfFrame(fn Task) {
	if fn == nil {
		return
	}
	s.endOfFrame = append(s.endOfFrame, fn)
}

// AfterTicks 在 n 帧之后执行回调（n <= 0 视为 1）
func (s *Scheduler) AfterTicks(n int, fn Task) {
	if fn == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	s.pending = append(s.pending, scheduledTask{
		dueTick:  s.tick + uint64(n),
		callback: fn,
	})
}

// AfterSeconds 在 delay 秒之后执行回调
// delay <= 0 时在下一次 Update 执行
func (s *Scheduler) AfterSeconds(delay float64, fn Task) {
	if fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	s.pending = append(s.pending, scheduledTask{
		dueTime:  s.now + delay,
		byTime:   true,
		callback: fn,
	})
}

// Update 推进时钟并执行到期任务
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *Scheduler) Update(deltaTime float64) {
	s.tick++
	s.now += deltaTime

	if len(s.pending) == 0 {
		return
	}

	// 先摘出到期任务（保持入队顺序），回调中新增的任务留待下一帧
	due := make([]scheduledTask, 0, len(s.pending))
	remaining := s.pending[:0]
	for _, task := range s.pending {
		if s.isDue(task) {
			due = append(due, task)
		} else {
			remaining = append(remaining, task)
		}
	}
	s.pending = remaining

	for _, task := range due {
		task.callback()
	}
}

// EndOfFrame 执行本帧排入的帧末任务
func (s *Scheduler) EndOfFrame() {
	if len(s.endOfFrame) == 0 {
		return
	}
	tasks := s.endOfFrame
	s.endOfFrame = make([]Task, 0, len(tasks))
	for _, fn := range tasks {
		fn()
	}
}

func (s *Scheduler) isDue(task scheduledTask) bool {
	if task.byTime {
		return task.dueTime <= s.now+timeEpsilon
	}
	return task.dueTick <= s.tick
}

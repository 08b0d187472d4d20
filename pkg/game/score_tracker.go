package game

import "strconv"

// ScoreChangeListener 分数变化回调
// 参数为增加的分数与变化后的总分
type ScoreChangeListener func(added, total int)

// ScoreTracker 分数累加器
//
// Add 只做累加，并立即刷新文字表示；没有回滚。
// 由场景持有并以指针传给需要加分的系统。
type ScoreTracker struct {
	score     int
	text      string
	listeners []ScoreChangeListener
}

// NewScoreTracker 创建分数为 0 的计分器
func NewScoreTracker() *ScoreTracker {
	st := &ScoreTracker{}
	st.refreshText()
	return st
}

// Add 增加分数并更新文字
// 负数与 0 被忽略，保证分数单调递增
func (st *ScoreTracker) Add(points int) {
	if points <= 0 {
		return
	}
	st.score += points
	st.refreshText()

	for _, listener := range st.listeners {
		listener(points, st.score)
	}
}

// Score 返回当前总分
func (st *ScoreTracker) Score() int {
	return st.score
}

// Text 返回用于显示的分数文字，如 "Score: 12"
func (st *ScoreTracker) Text() string {
	return st.text
}

// OnChange 注册分数变化回调
func (st *ScoreTracker) OnChange(listener ScoreChangeListener) {
	if listener != nil {
		st.listeners = append(st.listeners, listener)
	}
}

func (st *ScoreTracker) refreshText() {
	st.text = "Score: " + strconv.Itoa(st.score)
}

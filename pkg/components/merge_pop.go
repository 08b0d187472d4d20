package components

// MergePopComponent 合成新球出现时的缩放动画
// 动画结束后组件被移除
type MergePopComponent struct {
	Elapsed  float64 // 已播放时间（秒）
	Duration float64 // 总时长（秒）
}

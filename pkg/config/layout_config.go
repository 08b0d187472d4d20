package config

// 布局配置常量
// 本文件定义了屏幕尺寸以及世界坐标到屏幕坐标的映射

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 480

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit = 24.0

	// WorldOriginScreenX 世界原点 (0,0) 在屏幕上的 X 坐标（容器水平居中）
	WorldOriginScreenX = GameWindowWidth / 2.0

	// WorldOriginScreenY 世界原点 (0,0) 在屏幕上的 Y 坐标（地面位置）
	WorldOriginScreenY = 600.0

	// ScoreTextX 分数文字左上角 X 坐标
	ScoreTextX = 16.0

	// ScoreTextY 分数文字左上角 Y 坐标
	ScoreTextY = 12.0

	// ScoreFontSize 分数文字字号
	ScoreFontSize = 22.0
)

// WorldToScreen 将世界坐标（Y 轴向上）转换为屏幕坐标（Y 轴向下）
func WorldToScreen(x, y float64) (float64, float64) {
	return WorldOriginScreenX + x*PixelsPerUnit, WorldOriginScreenY - y*PixelsPerUnit
}

// ScreenToWorld 将屏幕坐标转换为世界坐标
func ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - WorldOriginScreenX) / PixelsPerUnit, (WorldOriginScreenY - sy) / PixelsPerUnit
}

package scenes

import (
	"github.com/decker502/mergeball/pkg/game"
)

// Scene 是 game.Scene 的别名，场景包内直接使用
type Scene = game.Scene

// GameScene 需要在退出和重开时保存最高分
var (
	_ Scene         = (*GameScene)(nil)
	_ game.Saveable = (*GameScene)(nil)
)

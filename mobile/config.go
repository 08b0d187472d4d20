// Package mobile 提供 ebitenmobile 绑定入口
//
// 绑定代码在 mobile.go 和 embed.go 中，仅在使用 -tags mobile 时编译；
// 本文件在所有构建中编译，保存移动端的启动参数。
package mobile

import (
	"github.com/decker502/mergeball/pkg/app"
	"github.com/decker502/mergeball/pkg/game"
)

// AppConfig 返回移动端启动配置
//
// 移动端没有命令行参数：始终使用内置配置、每局随机种子，
// 并开启日志以便通过 logcat / Xcode 控制台查看。
func AppConfig() app.Config {
	return app.Config{
		Verbose:    true,
		ConfigPath: game.DefaultGameConfigPath,
	}
}

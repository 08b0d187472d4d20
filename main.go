package main

import (
	"flag"
	"log"

	"github.com/decker502/mergeball/pkg/app"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置 data/balls.yaml）")
	seed       = flag.Uint64("seed", 0, "生成器随机种子（0 表示随机）")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Merge Ball")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭时保存最高分与设置
	if !gameApp.GetSceneManager().SaveCurrent() {
		log.Printf("[Main] 退出时保存失败")
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}

// validate_config 检查游戏配置文件并打印进化链与生成权重
//
// 用法:
//
//	go run ./cmd/validate_config data/balls.yaml
package main

import (
	"fmt"
	"os"

	"github.com/decker502/mergeball/pkg/config"
)

func main() {
	path := "data/balls.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("✅ 进化链 %d 级:\n", len(cfg.Chain))
	chain := cfg.EvolutionChain()
	for i, bt := range cfg.Chain {
		next := "(末端，不再合成)"
		if !chain.IsTerminal(bt.Category) {
			n, _ := chain.Next(bt.Category)
			next = "-> " + n.Category.String()
		}
		fmt.Printf("   %2d. %-12s r=%.2f mass=%.2f points=%d color=%s %s\n",
			i, bt.Category, bt.Radius, bt.Mass, bt.Points, bt.Color, next)
	}

	total := 0.0
	for _, e := range cfg.Spawn {
		total += e.Weight
	}
	fmt.Printf("✅ 生成条目 %d 个:\n", len(cfg.Spawn))
	for _, e := range cfg.Spawn {
		share := 0.0
		if total > 0 {
			share = e.Weight / total * 100
		}
		fmt.Printf("   %-12s weight=%.1f (%.0f%%)\n", e.Category, e.Weight, share)
	}
	if !(total > 0) {
		fmt.Printf("⚠️  权重总和不为正，生成器将总是选择 %s\n", cfg.Spawn[0].Category)
	}
}

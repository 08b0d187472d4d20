// verify_merge 无窗口运行一局合成球，按脚本投放并打印统计
//
// 用法:
//
//	go run ./cmd/verify_merge --seed 42 --drops 40
//	go run ./cmd/verify_merge --config data/balls.yaml --verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/decker502/mergeball/pkg/components"
	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/ecs"
	"github.com/decker502/mergeball/pkg/game"
	"github.com/decker502/mergeball/pkg/scenes"
	"github.com/decker502/mergeball/pkg/systems"
	"github.com/decker502/mergeball/pkg/types"
)

const frameTime = 1.0 / 60.0

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", game.DefaultGameConfigPath, "游戏配置文件路径")
	seed       = flag.Uint64("seed", 1, "生成器随机种子")
	drops      = flag.Int("drops", 30, "投放次数")
	maxFrames  = flag.Int("max-frames", 60*600, "最多模拟的帧数")
)

// scriptedInput 把持有的球移动到目标位置后投放
type scriptedInput struct {
	world   *scenes.MergeWorld
	targets []float64
	next    int
	drop    bool
	axis    float64
}

func (in *scriptedInput) Horizontal() float64 { return in.axis }

func (in *scriptedInput) DropPressed() bool {
	d := in.drop
	in.drop = false
	return d
}

// plan 根据持有球的位置决定本帧输入
func (in *scriptedInput) plan() {
	in.axis = 0
	x, ok := in.world.HeldBallX()
	if !ok || in.next >= len(in.targets) {
		return
	}
	target := in.targets[in.next]
	if math.Abs(target-x) < 0.05 {
		in.drop = true
		in.next++
		return
	}
	in.axis = math.Max(-1, math.Min(1, (target-x)*2))
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	aim := game.NewRandomSource(*seed + 1)
	targets := make([]float64, *drops)
	width := cfg.Spawner.RightBoundary - cfg.Spawner.LeftBoundary
	for i := range targets {
		targets[i] = cfg.Spawner.LeftBoundary + aim.Float64()*width
	}

	input := &scriptedInput{targets: targets}
	world := scenes.NewMergeWorld(cfg, game.NewRandomSource(*seed), input)
	input.world = world

	created := make(map[types.BallCategory]int)
	world.Combination().OnMerge(func(e systems.MergeEvent) {
		created[e.To]++
	})

	if err := world.Start(); err != nil {
		fmt.Printf("❌ 无法生成第一个球: %v\n", err)
		os.Exit(1)
	}

	frames := 0
	for ; frames < *maxFrames; frames++ {
		input.plan()
		world.Step(frameTime)
		if input.next >= len(targets) && world.Spawner().State() == systems.SpawnerHolding {
			break
		}
	}

	combination := world.Combination()
	fmt.Printf("✅ 模拟 %d 帧（%.1f 秒），投放 %d 次\n", frames, float64(frames)*frameTime, input.next)
	fmt.Printf("   合成 %d 次，跳过 %d 次，得分 %d\n",
		combination.MergedCount(), combination.SkippedCount(), world.Score().Score())
	fmt.Printf("   场上球数 %d，登记中的配对 %d\n", world.BallCount(), world.Registry().Len())

	for _, bt := range cfg.Chain {
		if n := created[bt.Category]; n > 0 {
			fmt.Printf("   -> %-12s x%d\n", bt.Category, n)
		}
	}

	problems := checkContainer(world.EntityManager(), cfg.Physics)
	for _, p := range problems {
		fmt.Printf("❌ %s\n", p)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}
	fmt.Printf("✅ 所有球都在容器内\n")
}

// checkContainer 检查模拟结束后所有球都没有穿出墙和地面
func checkContainer(em *ecs.EntityManager, ph config.PhysicsConfig) []string {
	const slack = 0.05

	var problems []string
	for _, id := range ecs.GetEntitiesWith2[*components.BallComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		radius := 0.0
		if col, ok := ecs.GetComponent[*components.CircleColliderComponent](em, id); ok {
			radius = col.Radius
		}
		if pos.X-radius < ph.LeftWall-slack || pos.X+radius > ph.RightWall+slack {
			problems = append(problems, fmt.Sprintf("entity %d outside walls at x=%.2f", id, pos.X))
		}
		if pos.Y-radius < ph.Floor-slack {
			problems = append(problems, fmt.Sprintf("entity %d below floor at y=%.2f", id, pos.Y))
		}
	}
	return problems
}

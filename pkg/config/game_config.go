package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/mergeball/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameConfig 合成球游戏配置（对应 data/balls.yaml）
type GameConfig struct {
	Chain   []BallTypeConfig `yaml:"chain"`   // 进化链，按合成顺序排列
	Spawn   []SpawnEntry     `yaml:"spawn"`   // 生成器可随机产出的球及权重
	Spawner SpawnerConfig    `yaml:"spawner"` // 生成器参数
	Merge   MergeConfig      `yaml:"merge"`   // 合成参数
	Physics PhysicsConfig    `yaml:"physics"` // 物理参数
	Audio   AudioCueConfig   `yaml:"audio"`   // 音效参数
}

// BallTypeConfig 进化链中的一种球
// Category 是类别身份，Radius/Mass/Color 组成生成模板，Points 是合成出该球时获得的分数
type BallTypeConfig struct {
	Name   string  `yaml:"category"`
	Radius float64 `yaml:"radius"` // 半径（世界单位）
	Mass   float64 `yaml:"mass"`   // 质量，缺省时按半径平方计算
	Color  string  `yaml:"color"`  // 十六进制颜色，如 "#e0303a"
	Points int     `yaml:"points"` // 合成出该球时的得分

	Category types.BallCategory `yaml:"-"`
}

// SpawnEntry 可生成球的权重条目
type SpawnEntry struct {
	Name   string  `yaml:"category"`
	Weight float64 `yaml:"weight"` // 权重越高越容易被选中

	Category types.BallCategory `yaml:"-"`
}

// SpawnerConfig 生成器参数
type SpawnerConfig struct {
	MoveSpeed     float64 `yaml:"moveSpeed"`     // 水平移动速度（单位/秒）
	SpawnHeight   float64 `yaml:"spawnHeight"`   // 生成点 Y 坐标
	LeftBoundary  float64 `yaml:"leftBoundary"`  // 左边界
	RightBoundary float64 `yaml:"rightBoundary"` // 右边界
	SettleSpeed   float64 `yaml:"settleSpeed"`   // 速度低于此值视为已落定
	RespawnDelay  float64 `yaml:"respawnDelay"`  // 落定后生成下一个球的延迟（秒）
	SettleTimeout float64 `yaml:"settleTimeout"` // 超过该时间仍未落定则强制生成（秒），0 表示不限
}

// MergeConfig 合成参数
type MergeConfig struct {
	GraceDelay float64 `yaml:"graceDelay"` // 合成完成后保留配对键的时间（秒）
}

// PhysicsConfig 物理参数（世界坐标 Y 轴向上）
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`     // 重力加速度（负值向下）
	Restitution float64 `yaml:"restitution"` // 碰撞弹性系数 0~1
	Friction    float64 `yaml:"friction"`    // 接触时切向速度保留比例 0~1
	Floor       float64 `yaml:"floor"`       // 地面 Y 坐标
	LeftWall    float64 `yaml:"leftWall"`    // 左墙 X 坐标
	RightWall   float64 `yaml:"rightWall"`   // 右墙 X 坐标
	Iterations  int     `yaml:"iterations"`  // 每帧接触求解迭代次数
}

// AudioCueConfig 合成/投放提示音参数
type AudioCueConfig struct {
	MergeBaseFrequency float64 `yaml:"mergeBaseFrequency"` // 合成音基础频率（Hz），等级越高音调越低
	DropFrequency      float64 `yaml:"dropFrequency"`      // 投放音频率（Hz）
	Duration           float64 `yaml:"duration"`           // 提示音时长（秒）

	// 可选的音效文件（.mp3/.ogg/.wav），设置后替代合成音
	DropSound  string `yaml:"dropSound"`
	MergeSound string `yaml:"mergeSound"`
}

// DefaultSpawnerConfig 返回默认生成器参数
func DefaultSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		MoveSpeed:     10,
		SpawnHeight:   18,
		LeftBoundary:  -8,
		RightBoundary: 8,
		SettleSpeed:   0.1,
		RespawnDelay:  0.5,
		SettleTimeout: 4,
	}
}

// DefaultMergeConfig 返回默认合成参数
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{GraceDelay: 0.1}
}

// DefaultPhysicsConfig 返回默认物理参数
func DefaultPhysicsConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:     -20,
		Restitution: 0.2,
		Friction:    0.98,
		Floor:       0,
		LeftWall:    -9,
		RightWall:   9,
		Iterations:  4,
	}
}

// DefaultAudioCueConfig 返回默认提示音参数
func DefaultAudioCueConfig() AudioCueConfig {
	return AudioCueConfig{
		MergeBaseFrequency: 880,
		DropFrequency:      440,
		Duration:           0.08,
	}
}

// LoadGameConfig 从磁盘加载 YAML 游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 数据并验证
// 未填写的生成器/合成/物理参数使用默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := &GameConfig{
		Spawner: DefaultSpawnerConfig(),
		Merge:   DefaultMergeConfig(),
		Physics: DefaultPhysicsConfig(),
		Audio:   DefaultAudioCueConfig(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := resolveCategories(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	for i := range cfg.Chain {
		if cfg.Chain[i].Mass <= 0 {
			r := cfg.Chain[i].Radius
			cfg.Chain[i].Mass = r * r
		}
	}

	return cfg, nil
}

// resolveCategories 将配置中的类别名解析为枚举值
func resolveCategories(cfg *GameConfig) error {
	for i := range cfg.Chain {
		c, err := types.ParseBallCategory(cfg.Chain[i].Name)
		if err != nil {
			return fmt.Errorf("chain[%d]: %w", i, err)
		}
		cfg.Chain[i].Category = c
	}
	for i := range cfg.Spawn {
		c, err := types.ParseBallCategory(cfg.Spawn[i].Name)
		if err != nil {
			return fmt.Errorf("spawn[%d]: %w", i, err)
		}
		cfg.Spawn[i].Category = c
	}
	return nil
}

// validateGameConfig 验证配置的有效性
//
// 权重全部为 0 不视为错误：随机选择会退回第一个条目。
func validateGameConfig(cfg *GameConfig) error {
	if len(cfg.Chain) == 0 {
		return fmt.Errorf("chain cannot be empty")
	}

	seen := make(map[types.BallCategory]bool, len(cfg.Chain))
	for i, bt := range cfg.Chain {
		if seen[bt.Category] {
			return fmt.Errorf("chain[%d]: duplicate category %s", i, bt.Category)
		}
		seen[bt.Category] = true

		if bt.Radius <= 0 {
			return fmt.Errorf("chain[%d]: radius must be > 0, got %v", i, bt.Radius)
		}
		if bt.Points < 0 {
			return fmt.Errorf("chain[%d]: points must be >= 0, got %d", i, bt.Points)
		}
		if bt.Color != "" {
			if _, err := ParseHexColor(bt.Color); err != nil {
				return fmt.Errorf("chain[%d]: %w", i, err)
			}
		}
	}

	if len(cfg.Spawn) == 0 {
		return fmt.Errorf("spawn cannot be empty")
	}
	for i, entry := range cfg.Spawn {
		if !seen[entry.Category] {
			return fmt.Errorf("spawn[%d]: category %s is not in the chain", i, entry.Category)
		}
	}

	sp := cfg.Spawner
	if sp.LeftBoundary >= sp.RightBoundary {
		return fmt.Errorf("spawner.leftBoundary (%v) must be < rightBoundary (%v)", sp.LeftBoundary, sp.RightBoundary)
	}
	if sp.MoveSpeed < 0 {
		return fmt.Errorf("spawner.moveSpeed must be >= 0, got %v", sp.MoveSpeed)
	}
	if sp.RespawnDelay < 0 || sp.SettleTimeout < 0 {
		return fmt.Errorf("spawner delays must be >= 0")
	}

	if cfg.Merge.GraceDelay < 0 {
		return fmt.Errorf("merge.graceDelay must be >= 0, got %v", cfg.Merge.GraceDelay)
	}

	ph := cfg.Physics
	if ph.LeftWall >= ph.RightWall {
		return fmt.Errorf("physics.leftWall (%v) must be < rightWall (%v)", ph.LeftWall, ph.RightWall)
	}
	if ph.Restitution < 0 || ph.Restitution > 1 {
		return fmt.Errorf("physics.restitution must be between 0 and 1, got %v", ph.Restitution)
	}
	if ph.Iterations < 1 {
		return fmt.Errorf("physics.iterations must be >= 1, got %d", ph.Iterations)
	}

	for _, sound := range []string{cfg.Audio.DropSound, cfg.Audio.MergeSound} {
		if sound == "" {
			continue
		}
		switch strings.ToLower(filepath.Ext(sound)) {
		case ".mp3", ".ogg", ".wav":
		default:
			return fmt.Errorf("audio: unsupported sound file %s (supported: .mp3, .ogg, .wav)", sound)
		}
	}

	return nil
}

// EvolutionChain 返回按顺序排列的进化链表
func (c *GameConfig) EvolutionChain() *EvolutionChain {
	return NewEvolutionChain(c.Chain)
}

// SpawnWeight 返回条目权重
func (e SpawnEntry) SpawnWeight() float64 {
	return e.Weight
}

package game

import (
	"bytes"
	"fmt"
	"log"

	"github.com/decker502/mergeball/pkg/config"
	"github.com/decker502/mergeball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultGameConfigPath 内置游戏配置路径
const DefaultGameConfigPath = "data/balls.yaml"

// ResourceManager 集中管理字体与游戏配置
//
// 字体按字号缓存；配置优先从嵌入数据读取，
// 未初始化嵌入数据（测试、工具）或路径不在 data/ 下时从磁盘读取。
//
// 非线程安全，只在游戏主循环上使用。
type ResourceManager struct {
	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
	gameConfig    *config.GameConfig
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadGameConfig 加载并缓存游戏配置
//
// 参数:
//   - path: 配置路径，如 "data/balls.yaml"
//
// 返回:
//   - *config.GameConfig: 解析并验证后的配置
//   - error: 读取、解析或验证失败
func (rm *ResourceManager) LoadGameConfig(path string) (*config.GameConfig, error) {
	var (
		cfg *config.GameConfig
		err error
	)

	if embedded.Exists(path) {
		data, readErr := ReadDataFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("failed to read embedded config %s: %w", path, readErr)
		}
		cfg, err = config.ParseGameConfig(data)
	} else {
		cfg, err = config.LoadGameConfig(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game config %s: %w", path, err)
	}

	rm.gameConfig = cfg
	log.Printf("[ResourceManager] Loaded game config %s: %d ball types, %d spawn entries",
		path, len(cfg.Chain), len(cfg.Spawn))
	return cfg, nil
}

// GameConfig 返回最近一次加载的配置，未加载时为 nil
func (rm *ResourceManager) GameConfig() *config.GameConfig {
	return rm.gameConfig
}

// GetFont 返回指定字号的字体，结果会被缓存
func (rm *ResourceManager) GetFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{Source: rm.fontSource, Size: size}
	rm.fontFaceCache[size] = face
	return face, nil
}

package game

import (
	"errors"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// GameState 跨场景共享的游戏状态
//
// 持有设置、最高分与音效管理器。单局内的状态（计分器、实体、合成登记表）
// 属于场景，重开一局时随场景一起重建，不放在这里。
type GameState struct {
	gdataManager    *gdata.Manager
	settingsManager *SettingsManager
	bestScore       *BestScoreStore
	audioManager    *AudioManager
}

// 全局单例实例
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 首次调用时打开 gdata 存储；存储不可用时以降级模式运行
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = NewGameState(OpenStorage(StorageAppName))
	}
	return globalGameState
}

// CurrentGameState 返回当前单例，不触发初始化
func CurrentGameState() *GameState {
	return globalGameState
}

// SetGameState 替换全局单例（测试与无头运行使用）
func SetGameState(gs *GameState) {
	globalGameState = gs
}

// NewGameState 创建游戏状态
//
// 参数：
//   - gdataManager: 跨平台存储，可为 nil（仅内存，不持久化）
func NewGameState(gdataManager *gdata.Manager) *GameState {
	settingsManager, err := NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[GameState] Warning: settings unavailable: %v", err)
	}
	return &GameState{
		gdataManager:    gdataManager,
		settingsManager: settingsManager,
		bestScore:       NewBestScoreStore(gdataManager),
	}
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// GetBestScore 返回最高分存储
func (gs *GameState) GetBestScore() *BestScoreStore {
	return gs.bestScore
}

// GetAudioManager 返回音效管理器，未设置时为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetAudioManager 设置音效管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// HasPersistence 报告是否有可用的持久化存储
func (gs *GameState) HasPersistence() bool {
	return gs.gdataManager != nil
}

// Save 保存设置与最高分
// 两项互不影响，错误合并返回
func (gs *GameState) Save() error {
	var errs []error
	if gs.settingsManager != nil {
		if err := gs.settingsManager.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := gs.bestScore.Save(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

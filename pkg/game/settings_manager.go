package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家可调整的设置，整体作为一个 YAML 属性存储
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // M 键切换
	Fullscreen   bool    `yaml:"fullscreen"`   // F11 切换，下次启动沿用
}

// DefaultSettings 首次启动或存储不可用时的设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.6,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 持有当前设置并负责读写 gdata
//
// gdataManager 为 nil 时只保存在内存中，Save 为空操作。
// 移动端没有退出回调，所以玩家的每次修改都经由 Change 立即落盘。
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *GameSettings
}

// NewSettingsManager 创建设置管理器并读取已保存的设置
// 读取失败只记录警告并使用默认设置，错误返回值始终为 nil
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 重新读取存储中的设置
// 没有存储或从未保存过时为默认设置；内容损坏时回退默认设置并返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	sm.settings = loaded

	log.Printf("[SettingsManager] Loaded: volume=%.2f sound=%v fullscreen=%v",
		loaded.SoundVolume, loaded.SoundEnabled, loaded.Fullscreen)
	return nil
}

// Save 写入当前设置
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Change 修改设置并立即保存
func (sm *SettingsManager) Change(fn func(*GameSettings)) error {
	fn(sm.settings)
	sm.settings.SoundVolume = clampVolume(sm.settings.SoundVolume)
	if err := sm.Save(); err != nil {
		return err
	}
	log.Printf("[SettingsManager] Saved: volume=%.2f sound=%v fullscreen=%v",
		sm.settings.SoundVolume, sm.settings.SoundEnabled, sm.settings.Fullscreen)
	return nil
}

// GetSettings 返回当前设置，修改后需 Save 或改用 Change
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 只修改内存中的音量
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// EffectiveSoundVolume 播放时使用的音量，静音时为 0
func (sm *SettingsManager) EffectiveSoundVolume() float64 {
	if !sm.settings.SoundEnabled {
		return 0
	}
	return sm.settings.SoundVolume
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}

package game

import (
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/decker502/mergeball/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 48000

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存投放/合成提示音
//   - 配置了音效文件时解码文件代替合成音，解码失败回退到合成音
//   - 按 SettingsManager 的音效设置控制音量
//
// audioContext 为 nil 时所有播放调用都是空操作（用于无窗口运行）。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	cues            config.AudioCueConfig
	players         map[string]*audio.Player // 提示音ID -> 播放器
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil
//   - sm: 设置管理器，可为 nil（按默认音量播放）
//   - cues: 提示音参数
func NewAudioManager(ctx *audio.Context, sm *SettingsManager, cues config.AudioCueConfig) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		cues:            cues,
		players:         make(map[string]*audio.Player),
	}
}

// PlayDrop 播放投放提示音
func (am *AudioManager) PlayDrop() {
	if am == nil {
		return
	}
	am.play("drop", am.cues.DropSound, am.cues.DropFrequency)
}

// PlayMerge 播放合成提示音
// level 为合成产物在进化链中的位置，等级越高音调越低
func (am *AudioManager) PlayMerge(level int) {
	if am == nil {
		return
	}
	if level < 0 {
		level = 0
	}
	if am.cues.MergeSound != "" {
		am.play("merge", am.cues.MergeSound, 0)
		return
	}
	freq := MergeCueFrequency(am.cues.MergeBaseFrequency, level)
	am.play(fmt.Sprintf("merge_%d", level), "", freq)
}

// cuePCM 返回提示音的 PCM 数据
// soundPath 非空时优先解码音效文件
func (am *AudioManager) cuePCM(cueID, soundPath string, freq float64) []byte {
	if soundPath != "" {
		pcm, err := LoadSoundEffect(soundPath)
		if err == nil {
			return pcm
		}
		log.Printf("[AudioManager] Warning: %s falls back to synthesized tone: %v", cueID, err)
	}
	if freq <= 0 {
		freq = am.cues.MergeBaseFrequency
	}
	return SynthesizeTone(AudioSampleRate, freq, am.cues.Duration)
}

func (am *AudioManager) play(cueID, soundPath string, freq float64) {
	if am.audioContext == nil {
		return
	}

	volume := DefaultSettings().SoundVolume
	if am.settingsManager != nil {
		volume = am.settingsManager.EffectiveSoundVolume()
	}
	if volume <= 0 {
		return
	}

	player, ok := am.players[cueID]
	if !ok {
		player = am.audioContext.NewPlayerFromBytes(am.cuePCM(cueID, soundPath, freq))
		am.players[cueID] = player
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: rewind %s failed: %v", cueID, err)
		return
	}
	player.Play()
}

// MergeCueFrequency 计算指定等级的合成音频率
// 每升一级降低约一个全音
func MergeCueFrequency(base float64, level int) float64 {
	return base * math.Pow(0.89, float64(level))
}

// SynthesizeTone 生成 16 位立体声小端 PCM 正弦波，尾部线性淡出
func SynthesizeTone(sampleRate int, freq, duration float64) []byte {
	if sampleRate <= 0 || freq <= 0 || duration <= 0 {
		return nil
	}

	samples := int(float64(sampleRate) * duration)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := 1 - float64(i)/float64(samples)
		v := int16(math.Sin(2*math.Pi*freq*t) * envelope * 0.5 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

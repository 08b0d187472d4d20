package game

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/mergeball/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ReadDataFile 读取数据文件，优先嵌入数据，其次磁盘
func ReadDataFile(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadSoundEffect 读取并解码音效文件为 16 位立体声 PCM
// 支持格式: MP3 (.mp3)、OGG Vorbis (.ogg)、WAV (.wav)
func LoadSoundEffect(path string) ([]byte, error) {
	data, err := ReadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect %s: %w", path, err)
	}
	return DecodeSoundEffect(path, data)
}

// DecodeSoundEffect 按扩展名解码音效，重采样到 AudioSampleRate
func DecodeSoundEffect(path string, data []byte) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = s
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(AudioSampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return pcm, nil
}

package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultBallColor 未配置颜色时使用的填充色
var DefaultBallColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 形式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// RGBA 返回球的填充色，颜色缺失或无效时返回 DefaultBallColor
func (b BallTypeConfig) RGBA() color.RGBA {
	if b.Color == "" {
		return DefaultBallColor
	}
	c, err := ParseHexColor(b.Color)
	if err != nil {
		return DefaultBallColor
	}
	return c
}

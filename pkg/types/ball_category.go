// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory 配置中出现未定义的类别名
var ErrUnknownCategory = errors.New("unknown ball category")

// BallCategory 定义球的类别（进化链上的身份）
// 同类别的两个球接触时才会合成
type BallCategory int

const (
	// BallUnknown 未知类别
	BallUnknown BallCategory = iota
	// BallCherry 樱桃
	BallCherry
	// BallStrawberry 草莓
	BallStrawberry
	// BallGrape 葡萄
	BallGrape
	// BallDekopon 丑橘
	BallDekopon
	// BallPersimmon 柿子
	BallPersimmon
	// BallApple 苹果
	BallApple
	// BallPear 梨
	BallPear
	// BallPeach 桃子
	BallPeach
	// BallPineapple 菠萝
	BallPineapple
	// BallMelon 哈密瓜
	BallMelon
	// BallWatermelon 西瓜
	BallWatermelon
)

var categoryNames = map[BallCategory]string{
	BallCherry:     "cherry",
	BallStrawberry: "strawberry",
	BallGrape:      "grape",
	BallDekopon:    "dekopon",
	BallPersimmon:  "persimmon",
	BallApple:      "apple",
	BallPear:       "pear",
	BallPeach:      "peach",
	BallPineapple:  "pineapple",
	BallMelon:      "melon",
	BallWatermelon: "watermelon",
}

// String 返回类别的字符串表示（与配置文件中的写法一致）
func (c BallCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseBallCategory 将配置中的类别名解析为 BallCategory
// 大小写不敏感，未知名称返回错误
func ParseBallCategory(name string) (BallCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == normalized {
			return c, nil
		}
	}
	return BallUnknown, fmt.Errorf("%w %q", ErrUnknownCategory, name)
}

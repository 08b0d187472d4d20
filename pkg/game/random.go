package game

import (
	"errors"
	"math/rand/v2"
)

// ErrNoSpawnEntries 权重列表为空
var ErrNoSpawnEntries = errors.New("no spawn entries configured")

// RandomSource 随机数来源，Float64 返回 [0, 1)
type RandomSource interface {
	Float64() float64
}

// NewRandomSource 创建可复现的随机数来源
func NewRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Weighted 可按权重随机选择的条目
type Weighted interface {
	SpawnWeight() float64
}

// SelectWeighted 按权重随机选择一个条目的下标
//
// 在 [0, 总权重) 内均匀取值 r，按顺序累加权重，返回第一个累计值 >= r 的条目。
// 总权重不为正（全零、负数或 NaN）时返回第一个条目。
func SelectWeighted[T Weighted](entries []T, rng RandomSource) (int, error) {
	if len(entries) == 0 {
		return -1, ErrNoSpawnEntries
	}

	total := 0.0
	for _, e := range entries {
		total += e.SpawnWeight()
	}
	if !(total > 0) {
		return 0, nil
	}

	r := rng.Float64() * total
	sum := 0.0
	for i, e := range entries {
		sum += e.SpawnWeight()
		if r <= sum {
			return i, nil
		}
	}

	// 浮点累加误差导致未命中时退回第一个条目
	return 0, nil
}

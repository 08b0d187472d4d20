package config

import "github.com/decker502/mergeball/pkg/types"

// EvolutionChain 进化链：第 i 级的两个球合成一个第 i+1 级的球
// 创建后只读
type EvolutionChain struct {
	entries []BallTypeConfig
	index   map[types.BallCategory]int
}

// NewEvolutionChain 根据有序条目构建进化链
func NewEvolutionChain(entries []BallTypeConfig) *EvolutionChain {
	chain := &EvolutionChain{
		entries: make([]BallTypeConfig, len(entries)),
		index:   make(map[types.BallCategory]int, len(entries)),
	}
	copy(chain.entries, entries)
	for i, e := range chain.entries {
		if _, dup := chain.index[e.Category]; !dup {
			chain.index[e.Category] = i
		}
	}
	return chain
}

// Len 返回进化链长度
func (c *EvolutionChain) Len() int {
	return len(c.entries)
}

// IndexOf 返回类别在链中的位置，不存在时返回 -1
func (c *EvolutionChain) IndexOf(category types.BallCategory) int {
	if i, ok := c.index[category]; ok {
		return i
	}
	return -1
}

// Entry 返回指定位置的条目
func (c *EvolutionChain) Entry(i int) (BallTypeConfig, bool) {
	if i < 0 || i >= len(c.entries) {
		return BallTypeConfig{}, false
	}
	return c.entries[i], true
}

// Lookup 按类别查找条目
func (c *EvolutionChain) Lookup(category types.BallCategory) (BallTypeConfig, bool) {
	return c.Entry(c.IndexOf(category))
}

// IsTerminal 判断类别是否是链的最后一级（不可再合成）
func (c *EvolutionChain) IsTerminal(category types.BallCategory) bool {
	return c.IndexOf(category) == len(c.entries)-1
}

// Next 返回类别合成后的下一级条目
// 类别不在链中或已是最后一级时返回 false
func (c *EvolutionChain) Next(category types.BallCategory) (BallTypeConfig, bool) {
	i := c.IndexOf(category)
	if i < 0 || i >= len(c.entries)-1 {
		return BallTypeConfig{}, false
	}
	return c.entries[i+1], true
}

package game

import (
	"fmt"

	"github.com/decker502/mergeball/pkg/ecs"
)

// PairKey 无序实体对的标识
// 构造时按 ID 大小规范化，(a, b) 与 (b, a) 得到同一个键
type PairKey struct {
	Low  ecs.EntityID
	High ecs.EntityID
}

// NewPairKey 由两个实体ID构造无序配对键
func NewPairKey(a, b ecs.EntityID) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}

// Contains 判断配对是否包含指定实体
func (k PairKey) Contains(id ecs.EntityID) bool {
	return k.Low == id || k.High == id
}

// String 返回可读形式，用于日志
func (k PairKey) String() string {
	return fmt.Sprintf("(%d,%d)", k.Low, k.High)
}

// PendingMergeRegistry 正在合成中的实体对集合
//
// 检测到合成时插入，合成完成并经过宽限期后移除。
// 只在游戏主循环上访问，不加锁。
type PendingMergeRegistry struct {
	pairs map[PairKey]struct{}
}

// NewPendingMergeRegistry 创建空的合成登记表
func NewPendingMergeRegistry() *PendingMergeRegistry {
	return &PendingMergeRegistry{
		pairs: make(map[PairKey]struct{}),
	}
}

// Contains 检查配对是否正在合成
func (r *PendingMergeRegistry) Contains(key PairKey) bool {
	_, ok := r.pairs[key]
	return ok
}

// Add 登记配对，已存在时返回 false
func (r *PendingMergeRegistry) Add(key PairKey) bool {
	if r.Contains(key) {
		return false
	}
	r.pairs[key] = struct{}{}
	return true
}

// Remove 移除配对
func (r *PendingMergeRegistry) Remove(key PairKey) {
	delete(r.pairs, key)
}

// Len 返回登记中的配对数量
func (r *PendingMergeRegistry) Len() int {
	return len(r.pairs)
}

package game

import (
	"testing"

	"github.com/decker502/mergeball/pkg/ecs"
)

func TestNewPairKeyOrderIndependent(t *testing.T) {
	tests := []struct {
		name string
		a, b ecs.EntityID
	}{
		{name: "升序", a: 3, b: 7},
		{name: "降序", a: 7, b: 3},
		{name: "大ID", a: 1 << 40, b: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k1 := NewPairKey(tt.a, tt.b)
			k2 := NewPairKey(tt.b, tt.a)
			if k1 != k2 {
				t.Errorf("NewPairKey(%d,%d)=%v != NewPairKey(%d,%d)=%v", tt.a, tt.b, k1, tt.b, tt.a, k2)
			}
			if k1.Low > k1.High {
				t.Errorf("key not normalized: %v", k1)
			}
			if !k1.Contains(tt.a) || !k1.Contains(tt.b) {
				t.Errorf("key %v should contain both ids", k1)
			}
		})
	}
}

func TestPairKeyDistinct(t *testing.T) {
	// 数值拼接编码（id1*100000+id2）在 ID 较大时会冲突，结构体键不会
	if NewPairKey(1, 100000) == NewPairKey(0, 200000) {
		t.Error("distinct pairs must have distinct keys")
	}
	if NewPairKey(1, 2) == NewPairKey(1, 3) {
		t.Error("distinct pairs must have distinct keys")
	}
}

func TestPendingMergeRegistry(t *testing.T) {
	r := NewPendingMergeRegistry()
	key := NewPairKey(5, 2)

	if r.Contains(key) {
		t.Fatal("empty registry should not contain key")
	}
	if !r.Add(key) {
		t.Fatal("first Add should succeed")
	}
	if r.Add(NewPairKey(2, 5)) {
		t.Error("second Add of the same pair should report false")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	r.Remove(key)
	if r.Contains(key) || r.Len() != 0 {
		t.Error("key should be removed")
	}

	// 移除不存在的键是安全的
	r.Remove(key)
}

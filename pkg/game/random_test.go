package game

import (
	"errors"
	"math"
	"testing"
)

type testWeight float64

func (w testWeight) SpawnWeight() float64 { return float64(w) }

// fixedRandom 总是返回同一个值
type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func TestSelectWeightedDeterministic(t *testing.T) {
	entries := []testWeight{1, 2, 3} // 累计 1, 3, 6

	tests := []struct {
		name string
		r    float64 // Float64 返回值，乘以总权重 6 得到抽取值
		want int
	}{
		{name: "抽取 0", r: 0, want: 0},
		{name: "恰好等于第一段累计", r: 1.0 / 6.0, want: 0},
		{name: "落在第二段", r: 0.4, want: 1},
		{name: "恰好等于第二段累计", r: 0.5, want: 1},
		{name: "落在第三段", r: 0.99, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectWeighted(entries, fixedRandom(tt.r))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectWeighted(r=%v) = %d, want %d", tt.r, got, tt.want)
			}
		})
	}
}

func TestSelectWeightedFallback(t *testing.T) {
	tests := []struct {
		name    string
		entries []testWeight
	}{
		{name: "权重全为零", entries: []testWeight{0, 0, 0}},
		{name: "总权重为负", entries: []testWeight{-1, -2}},
		{name: "NaN 权重", entries: []testWeight{testWeight(math.NaN()), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, r := range []float64{0, 0.3, 0.999} {
				got, err := SelectWeighted(tt.entries, fixedRandom(r))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != 0 {
					t.Errorf("SelectWeighted() = %d, want fallback 0", got)
				}
			}
		})
	}
}

func TestSelectWeightedEmpty(t *testing.T) {
	_, err := SelectWeighted([]testWeight{}, fixedRandom(0.5))
	if !errors.Is(err, ErrNoSpawnEntries) {
		t.Errorf("error = %v, want ErrNoSpawnEntries", err)
	}
}

// TestSelectWeightedDistribution 大样本下选择频率收敛到权重比例
func TestSelectWeightedDistribution(t *testing.T) {
	entries := []testWeight{4, 3, 2, 1, 0}
	rng := NewRandomSource(42)

	const samples = 200000
	counts := make([]int, len(entries))
	for i := 0; i < samples; i++ {
		idx, err := SelectWeighted(entries, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts[idx]++
	}

	total := 10.0
	for i, w := range entries {
		want := float64(w) / total
		got := float64(counts[i]) / samples
		if math.Abs(got-want) > 0.01 {
			t.Errorf("entry %d: frequency %.4f, want %.4f±0.01", i, got, want)
		}
	}
	if counts[4] != 0 {
		t.Errorf("zero-weight entry selected %d times", counts[4])
	}
}

func TestNewRandomSourceReproducible(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)
	for i := 0; i < 10; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("sequence diverged at %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("value out of range: %v", va)
		}
	}
}

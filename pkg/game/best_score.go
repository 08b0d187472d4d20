package game

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// BestScoreRecord 最高分记录
type BestScoreRecord struct {
	Score      int       `yaml:"score"`
	AchievedAt time.Time `yaml:"achievedAt"`
}

const (
	bestScoreObject   = "scores"
	bestScoreProperty = "best"
)

// BestScoreStore 最高分存储
//
// 当局分数本身不持久化，只记录历史最高分。
// gdataManager 为 nil 时只在内存中记录。
type BestScoreStore struct {
	gdataManager *gdata.Manager
	record       BestScoreRecord
	dirty        bool
	now          func() time.Time
}

// NewBestScoreStore 创建最高分存储并尝试加载已有记录
func NewBestScoreStore(gdataManager *gdata.Manager) *BestScoreStore {
	store := &BestScoreStore{
		gdataManager: gdataManager,
		now:          time.Now,
	}
	if err := store.Load(); err != nil {
		log.Printf("[BestScoreStore] Warning: %v (starting from 0)", err)
	}
	return store
}

// Load 从 gdata 加载最高分
func (s *BestScoreStore) Load() error {
	s.record = BestScoreRecord{}
	s.dirty = false

	if s.gdataManager == nil || !s.gdataManager.ObjectPropExists(bestScoreObject, bestScoreProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(bestScoreObject, bestScoreProperty)
	if err != nil {
		return fmt.Errorf("failed to load best score: %w", err)
	}

	var record BestScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to unmarshal best score: %w", err)
	}
	s.record = record
	return nil
}

// Best 返回最高分
func (s *BestScoreStore) Best() int {
	return s.record.Score
}

// Record 返回完整记录
func (s *BestScoreStore) Record() BestScoreRecord {
	return s.record
}

// Submit 提交一个分数，超过最高分时更新记录并返回 true
func (s *BestScoreStore) Submit(score int) bool {
	if score <= s.record.Score {
		return false
	}
	s.record = BestScoreRecord{Score: score, AchievedAt: s.now()}
	s.dirty = true
	return true
}

// Attach 订阅计分器，总分刷新最高分时更新记录并立即保存
// 每次合成最多写一次存储；移动端没有退出回调，只能这样保证记录不丢
func (s *BestScoreStore) Attach(tracker *ScoreTracker) {
	tracker.OnChange(func(_, total int) {
		if !s.Submit(total) {
			return
		}
		if err := s.Save(); err != nil {
			log.Printf("[BestScoreStore] Warning: %v", err)
		}
	})
}

// Save 将未保存的记录写入 gdata
func (s *BestScoreStore) Save() error {
	if s.gdataManager == nil || !s.dirty {
		return nil
	}

	data, err := yaml.Marshal(&s.record)
	if err != nil {
		return fmt.Errorf("failed to marshal best score: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(bestScoreObject, bestScoreProperty, data); err != nil {
		return fmt.Errorf("failed to save best score: %w", err)
	}

	s.dirty = false
	log.Printf("[BestScoreStore] Best score %d saved", s.record.Score)
	return nil
}

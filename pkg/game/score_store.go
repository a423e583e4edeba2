package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ScoreRecord 持久化的最近一局成绩
// 对外只暴露 Score；SessionID 和 PlayedAt 用于排查问题
type ScoreRecord struct {
	Score     int       `yaml:"score"`
	SessionID string    `yaml:"sessionId,omitempty"`
	PlayedAt  time.Time `yaml:"playedAt"`
}

// 存储路径常量
const (
	scoreObject   = "score"
	scoreProperty = "last"
)

// ScoreStore 最近一局得分的持久化存储
//
// 单进程、单写者：每局结束时覆盖写入，主界面出现时读取一次。
// gdataManager 为 nil 时降级为仅内存存储（与 SettingsManager 一致）。
type ScoreStore struct {
	gdataManager *gdata.Manager

	mu     sync.Mutex
	memory *ScoreRecord // 降级模式下的内存副本
}

// NewScoreStore 创建得分存储
func NewScoreStore(gdataManager *gdata.Manager) *ScoreStore {
	return &ScoreStore{gdataManager: gdataManager}
}

// Store 无条件覆盖保存得分
func (s *ScoreStore) Store(score int) error {
	return s.StoreRecord(ScoreRecord{Score: score})
}

// StoreRecord 保存完整记录
func (s *ScoreStore) StoreRecord(record ScoreRecord) error {
	if record.PlayedAt.IsZero() {
		record.PlayedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdataManager == nil {
		r := record
		s.memory = &r
		return nil
	}

	data, err := yaml.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	if err := s.gdataManager.SaveObjectProp(scoreObject, scoreProperty, data); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}

	log.Printf("[ScoreStore] Score saved: %d", record.Score)
	return nil
}

// Load 读取最近一次保存的得分
// 从未保存过、或数据无法读取时返回 (0, false)
func (s *ScoreStore) Load() (int, bool) {
	record, ok := s.LoadRecord()
	if !ok {
		return 0, false
	}
	return record.Score, true
}

// LoadRecord 读取完整记录
func (s *ScoreStore) LoadRecord() (ScoreRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdataManager == nil {
		if s.memory == nil {
			return ScoreRecord{}, false
		}
		return *s.memory, true
	}

	if !s.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return ScoreRecord{}, false
	}

	data, err := s.gdataManager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		log.Printf("[ScoreStore] Warning: Failed to load score: %v (treating as no score)", err)
		return ScoreRecord{}, false
	}

	var record ScoreRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		log.Printf("[ScoreStore] Warning: Corrupt score data: %v (treating as no score)", err)
		return ScoreRecord{}, false
	}

	return record, true
}

// Clear 删除已保存的得分，之后 Load 返回 (0, false)
func (s *ScoreStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gdataManager == nil {
		s.memory = nil
		return nil
	}

	if !s.gdataManager.ObjectPropExists(scoreObject, scoreProperty) {
		return nil
	}
	if err := s.gdataManager.DeleteObjectProp(scoreObject, scoreProperty); err != nil {
		return fmt.Errorf("failed to delete score: %w", err)
	}

	log.Printf("[ScoreStore] Score cleared")
	return nil
}

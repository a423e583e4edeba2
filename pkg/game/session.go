package game

import (
	"log"

	"github.com/google/uuid"
)

// GameSession 一局游戏的状态
// 在游戏场景加载时创建，由计时事件和碰撞事件修改，游戏结束后丢弃
type GameSession struct {
	ID               uuid.UUID
	SecondsRemaining int
	Score            int
	IsRunning        bool
}

// NewGameSession 创建新的一局
func NewGameSession(durationSeconds int) *GameSession {
	s := &GameSession{
		ID:               uuid.New(),
		SecondsRemaining: durationSeconds,
	}
	log.Printf("[GameSession] New session %s (%ds)", s.ID, durationSeconds)
	return s
}

// AddScore 增加得分
// 得分在一局内单调不减，负数增量会被拒绝
func (s *GameSession) AddScore(delta int) bool {
	if delta < 0 {
		log.Printf("[GameSession] Warning: rejected negative score delta %d", delta)
		return false
	}
	s.Score += delta
	return true
}

// Record 生成用于持久化的记录
func (s *GameSession) Record() ScoreRecord {
	return ScoreRecord{Score: s.Score, SessionID: s.ID.String()}
}

package eventtypes

import (
	"encoding/json"
	"time"
)

type EventPayload struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// Event Types
const (
	EventTypeLog           = "log"
	EventTypeMatchGenerate = "match.generate"
	EventTypeMatchCreated  = "match.created"
	EventTypeMatchInterest = "match.interest"
	EventTypeMatchMutual   = "match.mutual"
)

// MatchCreatedEvent 데일리 매칭 생성 시 발행
type MatchCreatedEvent struct {
	MatchID    string    `json:"match_id"`
	User1ID    string    `json:"user1_id"`
	User2ID    string    `json:"user2_id"`
	MatchScore float64   `json:"match_score"`
	MatchDate  string    `json:"match_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// MatchInterestEvent 상대방에게 관심 알림 (알림 서비스가 소비)
type MatchInterestEvent struct {
	MatchID    string `json:"match_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	MatchDate  string `json:"match_date"`
	FromName   string `json:"from_name,omitempty"`
	Interest   string `json:"interest"`
}

// MatchMutualEvent 양쪽 모두 관심 표시 (채팅 활성화 트리거)
type MatchMutualEvent struct {
	MatchID   string   `json:"match_id"`
	UserIDs   []string `json:"user_ids"`
	MatchDate string   `json:"match_date"`
}

// MatchGenerateEvent 큐를 통한 생성 요청. RequestedBy는 로그 용도.
type MatchGenerateEvent struct {
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

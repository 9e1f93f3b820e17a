package models

import (
	"time"

	"gorm.io/datatypes"
)

// 관심 표시 상태
const (
	InterestPending       = "pending"
	InterestInterested    = "interested"
	InterestNotInterested = "not_interested"
)

// Profile 매칭 대상 프로필 (생성기는 읽기만 한다)
type Profile struct {
	UserID        string    `gorm:"primaryKey;size:36" json:"user_id"`
	FullName      string    `gorm:"size:100" json:"full_name"`
	Age           *int      `json:"age"`
	Profession    *string   `gorm:"size:100" json:"profession"`
	LocationCity  *string   `gorm:"size:100" json:"location_city"`
	LocationState *string   `gorm:"size:100" json:"location_state"`
	Verified      bool      `gorm:"index;not null;default:false" json:"verified"`
	Invisible     bool      `gorm:"not null;default:false" json:"invisible"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Eligible 인증되었고 숨김 상태가 아닌 프로필
func (p Profile) Eligible() bool {
	return p.Verified && !p.Invisible
}

type Reflection struct {
	ID        uint                        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string                      `gorm:"size:36;index;not null" json:"user_id"`
	Response  string                      `gorm:"type:text" json:"response"`
	ToneTags  datatypes.JSONSlice[string] `json:"tone_tags"`
	Shared    bool                        `gorm:"not null;default:false" json:"shared"`
	CreatedAt time.Time                   `gorm:"index" json:"created_at"`
}

// Match 하루 단위 매칭 결과. user1_id < user2_id 순서로 저장한다.
type Match struct {
	ID                string                      `gorm:"primaryKey;size:36" json:"id"`
	User1ID           string                      `gorm:"size:36;not null;uniqueIndex:idx_matches_pair_date,priority:1;check:chk_matches_pair_order,user1_id < user2_id" json:"user1_id"`
	User2ID           string                      `gorm:"size:36;not null;uniqueIndex:idx_matches_pair_date,priority:2;index" json:"user2_id"`
	MatchScore        float64                     `gorm:"not null" json:"match_score"`
	MatchDate         datatypes.Date              `gorm:"not null;uniqueIndex:idx_matches_pair_date,priority:3" json:"match_date"`
	User1Interest     string                      `gorm:"size:20;not null;default:pending" json:"user1_interest"`
	User2Interest     string                      `gorm:"size:20;not null;default:pending" json:"user2_interest"`
	MutualValues      datatypes.JSONSlice[string] `json:"mutual_values"`
	SharedReflections datatypes.JSONSlice[string] `json:"shared_reflections"`
	CreatedAt         time.Time                   `json:"created_at"`
}

// MatchPair 특정 날짜 매칭에서 참여자만 읽을 때 사용
type MatchPair struct {
	User1ID string `json:"user1_id"`
	User2ID string `json:"user2_id"`
}

// CanonicalPair 사전순으로 작은 ID가 먼저 오도록 정렬
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

func (m *Match) HasUser(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// OtherUserID 상대방 ID, 참여자가 아니면 빈 문자열
func (m *Match) OtherUserID(userID string) string {
	switch userID {
	case m.User1ID:
		return m.User2ID
	case m.User2ID:
		return m.User1ID
	}
	return ""
}

func (m *Match) InterestOf(userID string) string {
	switch userID {
	case m.User1ID:
		return m.User1Interest
	case m.User2ID:
		return m.User2Interest
	}
	return ""
}

// InterestColumn 유저 슬롯에 해당하는 컬럼명
func (m *Match) InterestColumn(userID string) string {
	switch userID {
	case m.User1ID:
		return "user1_interest"
	case m.User2ID:
		return "user2_interest"
	}
	return ""
}

func (m *Match) SetInterest(userID, interest string) {
	switch userID {
	case m.User1ID:
		m.User1Interest = interest
	case m.User2ID:
		m.User2Interest = interest
	}
}

func (m *Match) IsMutual() bool {
	return m.User1Interest == InterestInterested && m.User2Interest == InterestInterested
}

// MatchDateOf 해당 타임존 기준 달력 날짜를 UTC 자정으로 정규화
func MatchDateOf(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package dto

import "time"

// MatchRunReport 데일리 매칭 1회 실행 결과
type MatchRunReport struct {
	Date           string    `json:"date"`
	MatchesCreated int       `json:"matchesCreated"`
	UsersProcessed int       `json:"usersProcessed"`
	UsersSkipped   int       `json:"usersSkipped"`
	UsersFailed    int       `json:"usersFailed"`
	Conflicts      int       `json:"conflicts"`
	StartedAt      time.Time `json:"startedAt"`
	FinishedAt     time.Time `json:"finishedAt"`
}

// GenerateResponse POST /generate-daily-matches 응답
type GenerateResponse struct {
	Success        bool   `json:"success"`
	MatchesCreated int    `json:"matchesCreated"`
	UsersProcessed int    `json:"usersProcessed"`
	UsersSkipped   int    `json:"usersSkipped"`
	Date           string `json:"date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PublicProfileDTO 매칭 상대에게 공개되는 프로필
type PublicProfileDTO struct {
	UserID     string  `json:"user_id"`
	FullName   string  `json:"full_name"`
	Age        *int    `json:"age"`
	Profession *string `json:"profession"`
}

type DailyMatchDTO struct {
	ID               string            `json:"id"`
	MatchDate        string            `json:"match_date"`
	MatchScore       float64           `json:"match_score"`
	MyInterest       string            `json:"my_interest"`
	TheirInterest    string            `json:"their_interest"`
	Mutual           bool              `json:"mutual"`
	OtherUser        *PublicProfileDTO `json:"other_user"`
	SharedReflection *string           `json:"shared_reflection"`
}

type InterestRequest struct {
	Interest string `json:"interest" validate:"required,oneof=interested not_interested"`
}

type InterestResponse struct {
	Match  DailyMatchDTO `json:"match"`
	Mutual bool          `json:"mutual"`
}

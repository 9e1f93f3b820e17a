package service

import (
	"sort"

	"github.com/samber/lo"
)

// Candidate 점수가 매겨진 후보
type Candidate struct {
	Subject   Subject
	Score     float64
	Breakdown map[string]float64
}

// RankCandidates seeker 를 제외한 후보를 점수 내림차순으로 정렬해 상위 limit 개를 반환.
// 동점이면 pool 순서를 유지한다.
func RankCandidates(seeker Subject, pool []Subject, scorer *Scorer, limit int) []Candidate {
	if limit <= 0 {
		return nil
	}

	others := lo.Filter(pool, func(s Subject, _ int) bool {
		return s.Profile.UserID != seeker.Profile.UserID
	})

	candidates := lo.Map(others, func(s Subject, _ int) Candidate {
		score, breakdown := scorer.Score(seeker, s)
		return Candidate{Subject: s, Score: score, Breakdown: breakdown}
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

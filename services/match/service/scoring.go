package service

import (
	"math"
	"math/rand/v2"
	"sync"

	"hearth/pkg/models"
)

// 신호별 가중치
const (
	WeightTone       = 0.4
	WeightLocation   = 0.3
	WeightAge        = 0.2
	WeightProfession = 0.1
)

// Subject 점수 계산에 필요한 유저 스냅샷
type Subject struct {
	Profile     models.Profile
	Reflections []models.Reflection
}

// Signal 독립적인 점수 항목. Score 는 [0, Weight()] 범위여야 한다.
type Signal interface {
	Name() string
	Weight() float64
	Score(seeker, candidate Subject) float64
}

// ToneSignal 리플렉션 톤 친화도. 현재는 [0, weight) 난수를 사용한다.
type ToneSignal struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewToneSignal src 가 nil 이면 전역 난수 생성기를 사용
func NewToneSignal(src rand.Source) *ToneSignal {
	s := &ToneSignal{}
	if src != nil {
		s.rng = rand.New(src)
	}
	return s
}

func (s *ToneSignal) Name() string    { return "tone" }
func (s *ToneSignal) Weight() float64 { return WeightTone }

func (s *ToneSignal) Score(_, _ Subject) float64 {
	if s.rng == nil {
		return rand.Float64() * WeightTone
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() * WeightTone
}

type LocationSignal struct{}

func (LocationSignal) Name() string    { return "location" }
func (LocationSignal) Weight() float64 { return WeightLocation }

// 같은 도시 0.3, 같은 주 0.15
func (LocationSignal) Score(seeker, candidate Subject) float64 {
	a, b := seeker.Profile, candidate.Profile
	if sameNonEmpty(a.LocationCity, b.LocationCity) {
		return WeightLocation
	}
	if sameNonEmpty(a.LocationState, b.LocationState) {
		return WeightLocation / 2
	}
	return 0
}

type AgeSignal struct{}

func (AgeSignal) Name() string    { return "age" }
func (AgeSignal) Weight() float64 { return WeightAge }

// 나이 차 5 이하 0.2, 10 이하 0.1
func (AgeSignal) Score(seeker, candidate Subject) float64 {
	a, b := seeker.Profile.Age, candidate.Profile.Age
	if a == nil || b == nil {
		return 0
	}
	diff := *a - *b
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= 5:
		return WeightAge
	case diff <= 10:
		return WeightAge / 2
	}
	return 0
}

type ProfessionSignal struct{}

func (ProfessionSignal) Name() string    { return "profession" }
func (ProfessionSignal) Weight() float64 { return WeightProfession }

// 대소문자 구분 완전 일치
func (ProfessionSignal) Score(seeker, candidate Subject) float64 {
	if sameNonEmpty(seeker.Profile.Profession, candidate.Profile.Profession) {
		return WeightProfession
	}
	return 0
}

func sameNonEmpty(a, b *string) bool {
	return a != nil && b != nil && *a != "" && *a == *b
}

// DefaultSignals 톤, 위치, 나이, 직업 순
func DefaultSignals(tone Signal) []Signal {
	if tone == nil {
		tone = NewToneSignal(nil)
	}
	return []Signal{tone, LocationSignal{}, AgeSignal{}, ProfessionSignal{}}
}

type Scorer struct {
	signals []Signal
}

func NewScorer(signals ...Signal) *Scorer {
	return &Scorer{signals: signals}
}

// Score 신호 합계를 [0,1] 로 제한해 반환하고, 신호별 점수도 함께 돌려준다
func (s *Scorer) Score(seeker, candidate Subject) (float64, map[string]float64) {
	breakdown := make(map[string]float64, len(s.signals))
	total := 0.0
	for _, sig := range s.signals {
		v := clamp(sig.Score(seeker, candidate), 0, sig.Weight())
		breakdown[sig.Name()] = v
		total += v
	}
	return clamp(total, 0, 1), breakdown
}

// NaN 은 하한으로 처리
func clamp(v, low, high float64) float64 {
	if math.IsNaN(v) || v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

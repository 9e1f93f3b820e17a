package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hearth/pkg/config"
	"hearth/pkg/dto"
	"hearth/pkg/helper"
	"hearth/pkg/logger"
	"hearth/pkg/metrics"
	"hearth/pkg/models"
	"hearth/services/match/repository"

	eventtypes "hearth/pkg/types/eventtype"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

//go:generate mockgen -destination=../mocks/mock_service.go -package=mocks hearth/services/match/service ProfileStore,ReflectionStore,MatchStore,MQEmitter,RunRecorder

type ProfileStore interface {
	ListEligibleProfiles(ctx context.Context) ([]models.Profile, error)
}

type ReflectionStore interface {
	ListRecentReflections(ctx context.Context, userID string, limit int) ([]models.Reflection, error)
}

type MatchStore interface {
	FindMatchesForDate(ctx context.Context, date time.Time) ([]models.MatchPair, error)
	InsertMatch(ctx context.Context, match *models.Match) error
}

type MQEmitter interface {
	PublishMatchEvent(eventtypes.EventPayload) error
}

// RunRecorder 실행 결과 보관소 (redis)
type RunRecorder interface {
	SaveRunReport(ctx context.Context, report dto.MatchRunReport) error
}

type Option func(*Generator)

func WithEmitter(e MQEmitter) Option {
	return func(g *Generator) { g.emitter = e }
}

func WithRecorder(r RunRecorder) Option {
	return func(g *Generator) { g.recorder = r }
}

func WithMetrics(m *metrics.GeneratorMetrics) Option {
	return func(g *Generator) { g.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithScorer(s *Scorer) Option {
	return func(g *Generator) { g.scorer = s }
}

// Generator 데일리 매칭 생성기. 같은 프로세스 안에서는 실행이 직렬화된다.
type Generator struct {
	profiles    ProfileStore
	reflections ReflectionStore
	matches     MatchStore

	emitter  MQEmitter
	recorder RunRecorder
	metrics  *metrics.GeneratorMetrics
	scorer   *Scorer
	now      func() time.Time

	dailyLimit      int
	reflectionLimit int
	storeTimeout    time.Duration
	location        *time.Location

	running sync.Mutex
}

func NewGenerator(profiles ProfileStore, reflections ReflectionStore, matches MatchStore, cfg config.MatchConfig, opts ...Option) (*Generator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		profiles:        profiles,
		reflections:     reflections,
		matches:         matches,
		now:             time.Now,
		dailyLimit:      cfg.DailyLimit,
		reflectionLimit: cfg.ReflectionLimit,
		storeTimeout:    cfg.StoreTimeout,
		location:        loc,
	}
	if g.dailyLimit <= 0 {
		g.dailyLimit = 2
	}
	if g.reflectionLimit <= 0 {
		g.reflectionLimit = 5
	}
	if g.storeTimeout <= 0 {
		g.storeTimeout = 5 * time.Second
	}

	for _, opt := range opts {
		opt(g)
	}
	if g.scorer == nil {
		g.scorer = NewScorer(DefaultSignals(nil)...)
	}
	return g, nil
}

// Today 설정된 타임존 기준 오늘 날짜 (UTC 자정)
func (g *Generator) Today() time.Time {
	return models.MatchDateOf(g.now(), g.location)
}

// GenerateDailyMatches 오늘 날짜의 매칭을 생성한다.
// 프로필 또는 오늘 매칭 조회 실패 시에만 에러를 반환한다.
func (g *Generator) GenerateDailyMatches(ctx context.Context) (dto.MatchRunReport, error) {
	g.running.Lock()
	defer g.running.Unlock()

	startedAt := g.now()
	today := models.MatchDateOf(startedAt, g.location)
	report := dto.MatchRunReport{
		Date:      helper.FormatDate(today),
		StartedAt: startedAt,
	}

	logger.Info(logger.LogEventMatchRunStart, fmt.Sprintf("Daily match generation started: %s", report.Date), nil)

	report, err := g.run(ctx, today, report)
	report.FinishedAt = g.now()

	if err != nil {
		g.metrics.ObserveRun(metrics.ResultFailure, report.FinishedAt.Sub(startedAt))
		logger.Error(logger.LogEventMatchRunFail, fmt.Sprintf("Daily match generation failed: %v", err), report)
		return report, err
	}

	g.metrics.ObserveRun(metrics.ResultSuccess, report.FinishedAt.Sub(startedAt))
	g.saveReport(ctx, report)

	logger.Info(logger.LogEventMatchRunFinish,
		fmt.Sprintf("Daily match generation finished: %d created, %d users", report.MatchesCreated, report.UsersProcessed),
		report)
	return report, nil
}

func (g *Generator) run(ctx context.Context, today time.Time, report dto.MatchRunReport) (dto.MatchRunReport, error) {
	profiles, err := withTimeout(ctx, g.storeTimeout, g.profiles.ListEligibleProfiles)
	if err != nil {
		return report, fmt.Errorf("list eligible profiles: %w", err)
	}

	existing, err := withTimeout(ctx, g.storeTimeout, func(ctx context.Context) ([]models.MatchPair, error) {
		return g.matches.FindMatchesForDate(ctx, today)
	})
	if err != nil {
		return report, fmt.Errorf("find matches for %s: %w", report.Date, err)
	}

	matched := make(map[string]struct{}, len(existing)*2)
	for _, p := range existing {
		matched[p.User1ID] = struct{}{}
		matched[p.User2ID] = struct{}{}
	}

	pool := lo.Map(profiles, func(p models.Profile, _ int) Subject {
		return Subject{Profile: p}
	})

	for _, seekerProfile := range profiles {
		if ctx.Err() != nil {
			logger.Logger.Warn().Err(ctx.Err()).Str("date", report.Date).Msg("⚠️ Daily match generation abandoned")
			break
		}

		report.UsersProcessed++

		if _, ok := matched[seekerProfile.UserID]; ok {
			report.UsersSkipped++
			continue
		}

		reflections, err := withTimeout(ctx, g.storeTimeout, func(ctx context.Context) ([]models.Reflection, error) {
			return g.reflections.ListRecentReflections(ctx, seekerProfile.UserID, g.reflectionLimit)
		})
		if err != nil {
			report.UsersFailed++
			logger.Logger.Error().Err(err).Str("user_id", seekerProfile.UserID).Msg("❌ Failed to load reflections")
			continue
		}

		seeker := Subject{Profile: seekerProfile, Reflections: reflections}
		picks := RankCandidates(seeker, pool, g.scorer, g.dailyLimit)

		for _, pick := range picks {
			created, conflict := g.insert(ctx, seeker, pick, today)
			if conflict {
				report.Conflicts++
			}
			if created || conflict {
				matched[seeker.Profile.UserID] = struct{}{}
				matched[pick.Subject.Profile.UserID] = struct{}{}
			}
			if created {
				report.MatchesCreated++
			}
		}
	}

	return report, nil
}

// insert 결과: 생성 여부, 중복 여부
func (g *Generator) insert(ctx context.Context, seeker Subject, pick Candidate, today time.Time) (bool, bool) {
	match := &models.Match{
		User1ID:           seeker.Profile.UserID,
		User2ID:           pick.Subject.Profile.UserID,
		MatchScore:        pick.Score,
		MatchDate:         datatypes.Date(today),
		User1Interest:     models.InterestPending,
		User2Interest:     models.InterestPending,
		MutualValues:      datatypes.JSONSlice[string]{},
		SharedReflections: datatypes.JSONSlice[string]{},
	}
	match.User1ID, match.User2ID = models.CanonicalPair(match.User1ID, match.User2ID)

	_, err := withTimeout(ctx, g.storeTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.matches.InsertMatch(ctx, match)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateMatch) {
			g.metrics.IncConflicts()
			logger.Logger.Info().
				Str("user1_id", match.User1ID).
				Str("user2_id", match.User2ID).
				Msg("Match already exists for pair, skipping")
			return false, true
		}
		g.metrics.IncInsertFailures()
		logger.Error(logger.LogEventMatchInsertFail, fmt.Sprintf("Failed to insert match: %v", err), match)
		return false, false
	}

	g.metrics.IncMatchesCreated()
	logger.Logger.Info().
		Str("match_id", match.ID).
		Str("user1_id", match.User1ID).
		Str("user2_id", match.User2ID).
		Float64("score", match.MatchScore).
		Interface("breakdown", pick.Breakdown).
		Msg("✅ Match created")

	g.emitCreated(match, today)
	return true, false
}

func (g *Generator) emitCreated(match *models.Match, today time.Time) {
	if g.emitter == nil {
		return
	}

	event := eventtypes.MatchCreatedEvent{
		MatchID:    match.ID,
		User1ID:    match.User1ID,
		User2ID:    match.User2ID,
		MatchScore: match.MatchScore,
		MatchDate:  helper.FormatDate(today),
		CreatedAt:  g.now(),
	}
	payload := eventtypes.EventPayload{
		EventType: eventtypes.EventTypeMatchCreated,
		Data:      helper.ToJSON(event),
	}

	if err := g.emitter.PublishMatchEvent(payload); err != nil {
		logger.Logger.Error().Err(err).Str("match_id", match.ID).Msg("❌ Failed to publish match created event")
	}
}

func (g *Generator) saveReport(ctx context.Context, report dto.MatchRunReport) {
	if g.recorder == nil {
		return
	}

	_, err := withTimeout(context.WithoutCancel(ctx), g.storeTimeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, g.recorder.SaveRunReport(ctx, report)
	})
	if err != nil {
		logger.Logger.Error().Err(err).Str("date", report.Date).Msg("❌ Failed to save run report")
	}
}

// withTimeout 저장소 호출마다 별도 타임아웃을 건다
func withTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return fn(ctx)
}

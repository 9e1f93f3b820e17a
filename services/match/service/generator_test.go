package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"hearth/pkg/config"
	"hearth/pkg/dto"
	"hearth/pkg/metrics"
	"hearth/pkg/models"
	"hearth/services/match/mocks"
	"hearth/services/match/repository"

	eventtypes "hearth/pkg/types/eventtype"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

var testMatchConfig = config.MatchConfig{
	DailyLimit:      2,
	ReflectionLimit: 5,
	StoreTimeout:    time.Second,
	Timezone:        "UTC",
}

// memoryStore unique 제약을 흉내내는 인메모리 저장소
type memoryStore struct {
	mu          sync.Mutex
	profiles    []models.Profile
	reflections map[string][]models.Reflection
	matches     []models.Match

	reflectionErr map[string]error
	insertErr     map[string]error
	reflectionReq []string
}

func newMemoryStore(profiles ...models.Profile) *memoryStore {
	return &memoryStore{
		profiles:      profiles,
		reflections:   map[string][]models.Reflection{},
		reflectionErr: map[string]error{},
		insertErr:     map[string]error{},
	}
}

func (s *memoryStore) ListEligibleProfiles(_ context.Context) ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Profile
	for _, p := range s.profiles {
		if p.Eligible() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memoryStore) ListRecentReflections(_ context.Context, userID string, limit int) ([]models.Reflection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reflectionReq = append(s.reflectionReq, userID)
	if err := s.reflectionErr[userID]; err != nil {
		return nil, err
	}
	refs := s.reflections[userID]
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

func (s *memoryStore) FindMatchesForDate(_ context.Context, date time.Time) ([]models.MatchPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.MatchPair
	for _, m := range s.matches {
		if time.Time(m.MatchDate).Equal(date) {
			out = append(out, models.MatchPair{User1ID: m.User1ID, User2ID: m.User2ID})
		}
	}
	return out, nil
}

func (s *memoryStore) InsertMatch(_ context.Context, match *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if match.User1ID == match.User2ID {
		return repository.ErrSelfMatch
	}
	match.User1ID, match.User2ID = models.CanonicalPair(match.User1ID, match.User2ID)

	if err := s.insertErr[match.User1ID+":"+match.User2ID]; err != nil {
		return err
	}
	for _, m := range s.matches {
		if m.User1ID == match.User1ID && m.User2ID == match.User2ID && time.Time(m.MatchDate).Equal(time.Time(match.MatchDate)) {
			return fmt.Errorf("insert: %w", repository.ErrDuplicateMatch)
		}
	}
	match.ID = uuid.NewString()
	s.matches = append(s.matches, *match)
	return nil
}

func (s *memoryStore) snapshot() []models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Match(nil), s.matches...)
}

type captureEmitter struct {
	mu       sync.Mutex
	payloads []eventtypes.EventPayload
}

func (c *captureEmitter) PublishMatchEvent(p eventtypes.EventPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payloads = append(c.payloads, p)
	return nil
}

func newTestGenerator(t *testing.T, store *memoryStore, opts ...Option) *Generator {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithScorer(NewScorer(DefaultSignals(zeroTone())...)),
	}
	g, err := NewGenerator(store, store, store, testMatchConfig, append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func verified(id string) models.Profile {
	return models.Profile{UserID: id, FullName: id, Verified: true}
}

func TestGenerateTwoUsers(t *testing.T) {
	store := newMemoryStore(verified("user-b"), verified("user-a"))
	g := newTestGenerator(t, store)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.MatchesCreated)
	assert.Equal(t, 2, report.UsersProcessed)
	assert.Equal(t, 1, report.UsersSkipped)
	assert.Equal(t, "2026-03-14", report.Date)

	matches := store.snapshot()
	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, "user-a", m.User1ID)
	assert.Equal(t, "user-b", m.User2ID)
	assert.Equal(t, models.InterestPending, m.User1Interest)
	assert.Equal(t, models.InterestPending, m.User2Interest)
	assert.Empty(t, m.MutualValues)
	assert.Empty(t, m.SharedReflections)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), time.Time(m.MatchDate))
}

func TestGenerateRerunIsIdempotent(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"))
	g := newTestGenerator(t, store)

	_, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.MatchesCreated)
	assert.Equal(t, 2, report.UsersProcessed)
	assert.Equal(t, 2, report.UsersSkipped)
	assert.Len(t, store.snapshot(), 1)
}

func TestGenerateNextDayCreatesNewMatches(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"))
	now := fixedNow
	g := newTestGenerator(t, store, WithClock(func() time.Time { return now }))

	_, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	now = fixedNow.AddDate(0, 0, 1)
	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.MatchesCreated)
	assert.Len(t, store.snapshot(), 2)
}

func TestGenerateInvariants(t *testing.T) {
	var profiles []models.Profile
	for i := 0; i < 12; i++ {
		p := verified(fmt.Sprintf("user-%02d", i))
		p.Age = intPtr(25 + i)
		if i%3 == 0 {
			p.LocationCity = strPtr("Austin")
		}
		p.LocationState = strPtr("TX")
		profiles = append(profiles, p)
	}
	hidden := verified("user-hidden")
	hidden.Invisible = true
	unverified := models.Profile{UserID: "user-unverified"}
	profiles = append(profiles, hidden, unverified)

	store := newMemoryStore(profiles...)
	g, err := NewGenerator(store, store, store, testMatchConfig, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, report.UsersProcessed)

	matches := store.snapshot()
	assert.Equal(t, report.MatchesCreated, len(matches))

	seen := map[string]bool{}
	for _, m := range matches {
		assert.NotEqual(t, m.User1ID, m.User2ID)
		assert.Less(t, m.User1ID, m.User2ID)
		assert.GreaterOrEqual(t, m.MatchScore, 0.0)
		assert.LessOrEqual(t, m.MatchScore, 1.0)

		for _, id := range []string{m.User1ID, m.User2ID} {
			assert.NotEqual(t, "user-hidden", id)
			assert.NotEqual(t, "user-unverified", id)
		}

		key := m.User1ID + ":" + m.User2ID
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
	}

	// 시커는 한 번만 처리되므로 한 실행에서 만드는 매칭은 유저당 최대 2개
	assert.LessOrEqual(t, report.MatchesCreated, 2*(report.UsersProcessed-report.UsersSkipped))

	again, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, again.MatchesCreated)
	assert.Len(t, store.snapshot(), len(matches))
}

func TestGenerateFanOutPerSeeker(t *testing.T) {
	// a 가 b, c 와 매칭되면 b, c 는 건너뛰고 d 는 a, b 와 매칭된다
	store := newMemoryStore(verified("a"), verified("b"), verified("c"), verified("d"))
	g := newTestGenerator(t, store)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	pairs := lo.Map(store.snapshot(), func(m models.Match, _ int) string {
		return m.User1ID + ":" + m.User2ID
	})
	assert.Equal(t, []string{"a:b", "a:c", "a:d", "b:d"}, pairs)

	assert.Equal(t, 4, report.MatchesCreated)
	assert.Equal(t, 4, report.UsersProcessed)
	assert.Equal(t, 2, report.UsersSkipped)
	assert.Equal(t, 0, report.Conflicts)
}

func TestGenerateConcurrentConflictCounted(t *testing.T) {
	// 다른 실행이 먼저 a:b 를 저장한 상황
	store := newMemoryStore(verified("a"), verified("b"), verified("c"))
	store.insertErr["a:b"] = fmt.Errorf("insert: %w", repository.ErrDuplicateMatch)
	m := metrics.NewGeneratorMetrics()
	g := newTestGenerator(t, store, WithMetrics(m))

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.MatchesCreated)
	assert.Equal(t, 1, report.Conflicts)
	assert.Equal(t, 2, report.UsersSkipped)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conflicts))
	assert.Zero(t, testutil.ToFloat64(m.InsertFailures))
}

func TestGenerateSingleUserNoCandidates(t *testing.T) {
	store := newMemoryStore(verified("solo"))
	g := newTestGenerator(t, store)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.MatchesCreated)
	assert.Equal(t, 1, report.UsersProcessed)
	assert.Empty(t, store.snapshot())
}

func TestGenerateNoEligibleUsers(t *testing.T) {
	store := newMemoryStore(models.Profile{UserID: "x"})
	g := newTestGenerator(t, store)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.MatchesCreated)
	assert.Equal(t, 0, report.UsersProcessed)
}

func TestGenerateReflectionFailureSkipsUser(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"), verified("c"))
	store.reflectionErr["a"] = context.DeadlineExceeded
	g := newTestGenerator(t, store)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.UsersFailed)
	// b 가 a, c 와 매칭된다
	assert.Equal(t, 2, report.MatchesCreated)
	assert.Equal(t, []string{"a", "b"}, store.reflectionReq)
}

func TestGenerateInsertFailureContinues(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"), verified("c"))
	store.insertErr["a:b"] = errors.New("connection reset")
	m := metrics.NewGeneratorMetrics()
	g := newTestGenerator(t, store, WithMetrics(m))

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	// a:b 는 a, b 두 시커 모두에서 실패한다
	assert.Equal(t, 2, report.MatchesCreated)
	pairs := lo.Map(store.snapshot(), func(m models.Match, _ int) string {
		return m.User1ID + ":" + m.User2ID
	})
	assert.Equal(t, []string{"a:c", "b:c"}, pairs)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InsertFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MatchesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ResultSuccess)))
}

func TestGenerateEmitsCreatedEvents(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"))
	emitter := &captureEmitter{}
	g := newTestGenerator(t, store, WithEmitter(emitter))

	_, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)

	require.Len(t, emitter.payloads, 1)
	assert.Equal(t, eventtypes.EventTypeMatchCreated, emitter.payloads[0].EventType)

	var event eventtypes.MatchCreatedEvent
	require.NoError(t, json.Unmarshal(emitter.payloads[0].Data, &event))
	assert.Equal(t, "a", event.User1ID)
	assert.Equal(t, "b", event.User2ID)
	assert.Equal(t, "2026-03-14", event.MatchDate)
	assert.Equal(t, store.snapshot()[0].ID, event.MatchID)
}

func TestGenerateTimezoneDate(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"))
	cfg := testMatchConfig
	cfg.Timezone = "Asia/Seoul"

	// UTC 15:30 은 서울 기준 다음 날 00:30
	g, err := NewGenerator(store, store, store, cfg, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", report.Date)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), g.Today())
}

func TestNewGeneratorInvalidTimezone(t *testing.T) {
	store := newMemoryStore()
	cfg := testMatchConfig
	cfg.Timezone = "Not/AZone"

	_, err := NewGenerator(store, store, store, cfg)
	assert.Error(t, err)
}

func TestGenerateProfileReadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mocks.NewMockProfileStore(ctrl)
	reflections := mocks.NewMockReflectionStore(ctrl)
	matches := mocks.NewMockMatchStore(ctrl)
	recorder := mocks.NewMockRunRecorder(ctrl)

	profiles.EXPECT().ListEligibleProfiles(gomock.Any()).Return(nil, errors.New("db down"))

	m := metrics.NewGeneratorMetrics()
	g, err := NewGenerator(profiles, reflections, matches, testMatchConfig,
		WithRecorder(recorder), WithMetrics(m), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	_, err = g.GenerateDailyMatches(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(metrics.ResultFailure)))
}

func TestGenerateExistingMatchReadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mocks.NewMockProfileStore(ctrl)
	reflections := mocks.NewMockReflectionStore(ctrl)
	matches := mocks.NewMockMatchStore(ctrl)

	profiles.EXPECT().ListEligibleProfiles(gomock.Any()).Return([]models.Profile{verified("a"), verified("b")}, nil)
	matches.EXPECT().FindMatchesForDate(gomock.Any(), time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)).
		Return(nil, errors.New("timeout"))

	g, err := NewGenerator(profiles, reflections, matches, testMatchConfig, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	_, err = g.GenerateDailyMatches(context.Background())
	require.Error(t, err)
}

func TestGenerateRecordsReportAndPassesTimeouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles := mocks.NewMockProfileStore(ctrl)
	reflections := mocks.NewMockReflectionStore(ctrl)
	matches := mocks.NewMockMatchStore(ctrl)
	recorder := mocks.NewMockRunRecorder(ctrl)
	emitter := mocks.NewMockMQEmitter(ctrl)

	profiles.EXPECT().ListEligibleProfiles(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Profile, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		return []models.Profile{verified("b"), verified("a")}, nil
	})
	matches.EXPECT().FindMatchesForDate(gomock.Any(), gomock.Any()).Return(nil, nil)
	reflections.EXPECT().ListRecentReflections(gomock.Any(), "b", 5).Return(nil, nil)
	matches.EXPECT().InsertMatch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m *models.Match) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.Equal(t, "a", m.User1ID)
		assert.Equal(t, "b", m.User2ID)
		m.ID = "match-1"
		return nil
	})
	emitter.EXPECT().PublishMatchEvent(gomock.Any()).Return(errors.New("broker down"))
	recorder.EXPECT().SaveRunReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r dto.MatchRunReport) error {
		assert.Equal(t, "2026-03-14", r.Date)
		assert.Equal(t, 1, r.MatchesCreated)
		assert.Equal(t, 2, r.UsersProcessed)
		assert.Equal(t, 1, r.UsersSkipped)
		return nil
	})

	g, err := NewGenerator(profiles, reflections, matches, testMatchConfig,
		WithRecorder(recorder), WithEmitter(emitter), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	report, err := g.GenerateDailyMatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.MatchesCreated)
}

func TestGenerateCanceledContextStopsEarly(t *testing.T) {
	store := newMemoryStore(verified("a"), verified("b"))
	g := newTestGenerator(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := g.GenerateDailyMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.UsersProcessed)
	assert.Empty(t, store.snapshot())
}

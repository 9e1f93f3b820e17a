package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hearth/pkg/dto"
	"hearth/pkg/helper"
	"hearth/pkg/logger"
	"hearth/pkg/models"

	eventtypes "hearth/pkg/types/eventtype"

	"github.com/samber/lo"
)

// 공유 회고 미리보기 길이 (rune 기준)
const reflectionExcerptLimit = 150

var ErrInvalidInterest = errors.New("interest must be interested or not_interested")

type MatchStore interface {
	ListMatchesForUser(ctx context.Context, userID string, date time.Time) ([]models.Match, error)
	UpdateInterest(ctx context.Context, matchID, userID, interest string) (*models.Match, bool, error)
}

type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
}

type ReflectionStore interface {
	ListSharedReflections(ctx context.Context, userID string, limit int) ([]models.Reflection, error)
}

type MQEmitter interface {
	PublishMatchEvent(eventtypes.EventPayload) error
}

type InterestService struct {
	matches     MatchStore
	profiles    ProfileStore
	reflections ReflectionStore
	emitter     MQEmitter
	location    *time.Location
	now         func() time.Time
}

// emitter 는 nil 이어도 된다 (이벤트 발행 생략)
func NewInterestService(matches MatchStore, profiles ProfileStore, reflections ReflectionStore, emitter MQEmitter, loc *time.Location) *InterestService {
	if loc == nil {
		loc = time.UTC
	}
	return &InterestService{
		matches:     matches,
		profiles:    profiles,
		reflections: reflections,
		emitter:     emitter,
		location:    loc,
		now:         time.Now,
	}
}

// Today 매칭 날짜 기준 오늘
func (s *InterestService) Today() time.Time {
	return models.MatchDateOf(s.now(), s.location)
}

// 유저의 날짜별 매칭 목록
func (s *InterestService) ListDailyMatches(ctx context.Context, userID string, date time.Time) ([]dto.DailyMatchDTO, error) {
	matches, err := s.matches.ListMatchesForUser(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	result := make([]dto.DailyMatchDTO, 0, len(matches))
	for i := range matches {
		item, err := s.toDailyMatch(ctx, &matches[i], userID)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// 관심 표시. 실제로 값이 바뀐 경우에만 이벤트를 발행한다.
func (s *InterestService) UpdateInterest(ctx context.Context, matchID, userID, interest string) (*dto.InterestResponse, error) {
	if !lo.Contains([]string{models.InterestInterested, models.InterestNotInterested}, interest) {
		return nil, ErrInvalidInterest
	}

	match, changed, err := s.matches.UpdateInterest(ctx, matchID, userID, interest)
	if err != nil {
		return nil, err
	}

	if changed && interest == models.InterestInterested {
		s.emitInterest(ctx, match, userID)
	}

	item, err := s.toDailyMatch(ctx, match, userID)
	if err != nil {
		return nil, err
	}
	return &dto.InterestResponse{Match: item, Mutual: match.IsMutual()}, nil
}

func (s *InterestService) toDailyMatch(ctx context.Context, match *models.Match, userID string) (dto.DailyMatchDTO, error) {
	otherID := match.OtherUserID(userID)

	item := dto.DailyMatchDTO{
		ID:            match.ID,
		MatchDate:     helper.FormatDate(time.Time(match.MatchDate)),
		MatchScore:    match.MatchScore,
		MyInterest:    match.InterestOf(userID),
		TheirInterest: match.InterestOf(otherID),
		Mutual:        match.IsMutual(),
	}

	profile, err := s.profiles.GetProfile(ctx, otherID)
	if err != nil {
		return item, fmt.Errorf("load profile %s: %w", otherID, err)
	}
	if profile != nil {
		item.OtherUser = &dto.PublicProfileDTO{
			UserID:     profile.UserID,
			FullName:   profile.FullName,
			Age:        profile.Age,
			Profession: profile.Profession,
		}
	}

	reflections, err := s.reflections.ListSharedReflections(ctx, otherID, 1)
	if err != nil {
		return item, fmt.Errorf("load shared reflections %s: %w", otherID, err)
	}
	if len(reflections) > 0 {
		excerpt := helper.Excerpt(reflections[0].Response, reflectionExcerptLimit)
		item.SharedReflection = &excerpt
	}

	return item, nil
}

func (s *InterestService) emitInterest(ctx context.Context, match *models.Match, userID string) {
	matchDate := helper.FormatDate(time.Time(match.MatchDate))

	var payload eventtypes.EventPayload
	if match.IsMutual() {
		payload = eventtypes.EventPayload{
			EventType: eventtypes.EventTypeMatchMutual,
			Data: helper.ToJSON(eventtypes.MatchMutualEvent{
				MatchID:   match.ID,
				UserIDs:   []string{match.User1ID, match.User2ID},
				MatchDate: matchDate,
			}),
		}
		logger.Info(logger.LogEventMatchMutual, fmt.Sprintf("Mutual match: %s", match.ID), match)
	} else {
		event := eventtypes.MatchInterestEvent{
			MatchID:    match.ID,
			FromUserID: userID,
			ToUserID:   match.OtherUserID(userID),
			MatchDate:  matchDate,
			Interest:   models.InterestInterested,
		}
		if from, err := s.profiles.GetProfile(ctx, userID); err == nil && from != nil {
			event.FromName = from.FullName
		}
		payload = eventtypes.EventPayload{
			EventType: eventtypes.EventTypeMatchInterest,
			Data:      helper.ToJSON(event),
		}
		logger.Info(logger.LogEventMatchInterest, fmt.Sprintf("Interest sent: %s", match.ID), event)
	}

	if s.emitter == nil {
		return
	}
	if err := s.emitter.PublishMatchEvent(payload); err != nil {
		logger.Logger.Error().Err(err).Str("match_id", match.ID).Msg("❌ Failed to publish interest event")
	}
}

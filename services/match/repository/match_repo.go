package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hearth/pkg/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// 데이터베이스 초기화
func (r *MatchRepository) InitDB() error {
	err := r.db.AutoMigrate(&models.Profile{}, &models.Reflection{}, &models.Match{})
	if err != nil {
		log.Printf("❌ Failed to migrate tables: %v", err)
		return err
	}
	log.Println("✅ Tables profiles, reflections and matches migrated or already exist.")
	return nil
}

// 특정 날짜의 매칭 참여자 조회
func (r *MatchRepository) FindMatchesForDate(ctx context.Context, date time.Time) ([]models.MatchPair, error) {
	const op = "repository.FindMatchesForDate"

	var pairs []models.MatchPair
	err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Select("user1_id", "user2_id").
		Where("match_date = ?", datatypes.Date(date)).
		Scan(&pairs).Error
	if err != nil {
		log.Printf("❌ Failed to find matches for %s: %v", date.Format(time.DateOnly), err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return pairs, nil
}

// 매칭 생성. 유저 순서를 정렬하고, 같은 날짜에 같은 쌍이 있으면 ErrDuplicateMatch.
func (r *MatchRepository) InsertMatch(ctx context.Context, match *models.Match) error {
	const op = "repository.InsertMatch"

	if match.User1ID == match.User2ID {
		return fmt.Errorf("%s: %w", op, ErrSelfMatch)
	}

	match.User1ID, match.User2ID = models.CanonicalPair(match.User1ID, match.User2ID)
	if match.ID == "" {
		match.ID = uuid.NewString()
	}
	if match.User1Interest == "" {
		match.User1Interest = models.InterestPending
	}
	if match.User2Interest == "" {
		match.User2Interest = models.InterestPending
	}
	if match.MutualValues == nil {
		match.MutualValues = datatypes.JSONSlice[string]{}
	}
	if match.SharedReflections == nil {
		match.SharedReflections = datatypes.JSONSlice[string]{}
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}, {Name: "match_date"}},
			DoNothing: true,
		}).
		Create(match)
	if result.Error != nil {
		if isDuplicate(result.Error) {
			return fmt.Errorf("%s: %w", op, ErrDuplicateMatch)
		}
		return fmt.Errorf("%s: %w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrDuplicateMatch)
	}
	return nil
}

// 매칭 조회 (ID)
func (r *MatchRepository) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	const op = "repository.GetMatch"

	var match models.Match
	err := r.db.WithContext(ctx).Where("id = ?", matchID).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrMatchNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &match, nil
}

// 유저의 특정 날짜 매칭 목록 (점수 내림차순)
func (r *MatchRepository) ListMatchesForUser(ctx context.Context, userID string, date time.Time) ([]models.Match, error) {
	const op = "repository.ListMatchesForUser"

	var matches []models.Match
	err := r.db.WithContext(ctx).
		Where("match_date = ?", datatypes.Date(date)).
		Where(r.db.Where("user1_id = ?", userID).Or("user2_id = ?", userID)).
		Order("match_score DESC").
		Order("id").
		Find(&matches).Error
	if err != nil {
		log.Printf("❌ Failed to list matches for %s: %v", userID, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return matches, nil
}

// 관심 표시 변경. 변경된 행과 실제 변경 여부를 반환한다.
func (r *MatchRepository) UpdateInterest(ctx context.Context, matchID, userID, interest string) (*models.Match, bool, error) {
	const op = "repository.UpdateInterest"

	var (
		updated models.Match
		changed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var match models.Match
		if err := tx.Where("id = ?", matchID).First(&match).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotFound
			}
			return err
		}

		column := match.InterestColumn(userID)
		if column == "" {
			return ErrNotParticipant
		}

		result := tx.Model(&models.Match{}).
			Where("id = ? AND "+column+" <> ?", matchID, interest).
			Update(column, interest)
		if result.Error != nil {
			return result.Error
		}
		changed = result.RowsAffected > 0

		return tx.Where("id = ?", matchID).First(&updated).Error
	})
	if err != nil {
		if !errors.Is(err, ErrMatchNotFound) && !errors.Is(err, ErrNotParticipant) {
			log.Printf("❌ Failed to update interest for match %s: %v", matchID, err)
		}
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return &updated, changed, nil
}

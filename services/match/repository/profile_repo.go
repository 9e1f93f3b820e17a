package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hearth/pkg/models"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// 매칭 대상 프로필 조회 (verified, 숨김 아님), user_id 순
func (r *ProfileRepository) ListEligibleProfiles(ctx context.Context) ([]models.Profile, error) {
	const op = "repository.ListEligibleProfiles"

	var profiles []models.Profile
	err := r.db.WithContext(ctx).
		Where("verified = ? AND invisible = ?", true, false).
		Order("user_id").
		Find(&profiles).Error
	if err != nil {
		log.Printf("❌ Failed to list eligible profiles: %v", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return profiles, nil
}

// 프로필 조회, 없으면 nil
func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "repository.GetProfile"

	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to get profile %s: %v", userID, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &profile, nil
}

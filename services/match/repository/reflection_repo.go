package repository

import (
	"context"
	"fmt"
	"log"

	"hearth/pkg/models"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	db *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// 최근 리플렉션 조회 (최신순)
func (r *ReflectionRepository) ListRecentReflections(ctx context.Context, userID string, limit int) ([]models.Reflection, error) {
	const op = "repository.ListRecentReflections"

	var reflections []models.Reflection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reflections).Error
	if err != nil {
		log.Printf("❌ Failed to list reflections for %s: %v", userID, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reflections, nil
}

// 공유된 리플렉션 조회 (최신순)
func (r *ReflectionRepository) ListSharedReflections(ctx context.Context, userID string, limit int) ([]models.Reflection, error) {
	const op = "repository.ListSharedReflections"

	var reflections []models.Reflection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND shared = ?", userID, true).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reflections).Error
	if err != nil {
		log.Printf("❌ Failed to list shared reflections for %s: %v", userID, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reflections, nil
}

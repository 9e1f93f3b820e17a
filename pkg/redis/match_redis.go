package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"hearth/pkg/dto"

	"github.com/go-redis/redis/v8"
)

const runReportKeyPrefix = "match_run"

func runReportKey(date string) string {
	return fmt.Sprintf("%s:%s", runReportKeyPrefix, date)
}

// 데일리 매칭 실행 결과 저장 (같은 날짜는 마지막 실행으로 덮어씀)
func (r *RedisClient) SaveRunReport(ctx context.Context, report dto.MatchRunReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal run report: %w", err)
	}

	if err := r.Client.Set(ctx, runReportKey(report.Date), data, r.ttl).Err(); err != nil {
		log.Printf("❌ Failed to save run report for %s: %v", report.Date, err)
		return err
	}
	return nil
}

// 데일리 매칭 실행 결과 조회, 없으면 nil
func (r *RedisClient) GetRunReport(ctx context.Context, date string) (*dto.MatchRunReport, error) {
	data, err := r.Client.Get(ctx, runReportKey(date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		log.Printf("❌ Failed to get run report for %s: %v", date, err)
		return nil, err
	}

	var report dto.MatchRunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("unmarshal run report: %w", err)
	}
	return &report, nil
}

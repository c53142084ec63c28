package services

import (
	"context"
	"encoding/json"
	"time"

	"hrms/dto"

	"github.com/redis/go-redis/v9"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 30 * time.Second
)

// GetCachedDashboardStats lấy snapshot dashboard từ Redis, nil nếu cache miss
func GetCachedDashboardStats(ctx context.Context, rdb *redis.Client) (*dto.DashboardStatsResponse, error) {
	if rdb == nil {
		return nil, nil
	}

	val, err := rdb.Get(ctx, dashboardStatsKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats dto.DashboardStatsResponse
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CacheDashboardStats lưu snapshot dashboard vào Redis với TTL ngắn
func CacheDashboardStats(ctx context.Context, rdb *redis.Client, stats *dto.DashboardStatsResponse) error {
	if rdb == nil {
		return nil
	}

	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, dashboardStatsKey, b, dashboardStatsTTL).Err()
}

// InvalidateDashboardStats xóa cache dashboard sau mỗi lần ghi
func InvalidateDashboardStats(ctx context.Context, rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, dashboardStatsKey).Err()
}

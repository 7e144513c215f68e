package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Harshalloke/The-Daily-Chronicle/internal/models"
	"github.com/Harshalloke/The-Daily-Chronicle/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 60 * time.Second
	activityFeedLimit = 20
)

// DashboardStats aggregates site-wide totals for the admin dashboard.
// TotalComments is always zero until the comment system lands.
type DashboardStats struct {
	TotalArticles int64 `json:"totalArticles"`
	TotalUsers    int64 `json:"totalUsers"`
	TotalViews    int64 `json:"totalViews"`
	TotalComments int64 `json:"totalComments"`
}

// AdminService provides aggregate views for the admin console.
type AdminService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	RecentActivity(ctx context.Context) ([]models.ActivityLog, error)
}

type adminService struct {
	articleRepo  repository.ArticleRepository
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	redis        *redis.Client
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(articleRepo repository.ArticleRepository, userRepo repository.UserRepository, activityRepo repository.ActivityRepository, redisClient *redis.Client) AdminService {
	return &adminService{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		redis:        redisClient,
	}
}

// DashboardStats returns site totals, served from a short-lived Redis cache
// so dashboard refreshes do not hammer the store with aggregate queries.
func (s *adminService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if cached, err := s.redis.Get(ctx, dashboardCacheKey).Result(); err == nil {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	totalArticles, err := s.articleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalViews, err := s.articleRepo.SumViews(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalArticles: totalArticles,
		TotalUsers:    totalUsers,
		TotalViews:    totalViews,
		TotalComments: 0,
	}

	if payload, err := json.Marshal(stats); err == nil {
		// Cache write failures are ignored; the next refresh recomputes.
		s.redis.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL)
	}

	return stats, nil
}

func (s *adminService) RecentActivity(ctx context.Context) ([]models.ActivityLog, error) {
	return s.activityRepo.Recent(ctx, activityFeedLimit)
}

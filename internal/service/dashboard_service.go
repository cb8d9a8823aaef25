package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Abhijeet357/case-management/config"
	"github.com/Abhijeet357/case-management/internal/dto"
	"github.com/Abhijeet357/case-management/internal/repository"
	"github.com/Abhijeet357/case-management/internal/workflow"
	"github.com/Abhijeet357/case-management/pkg/redis"
)

const dashboardCacheKey = "dashboard:summary"

// DashboardService computes the landing-page summary, cached briefly
// in Redis since it aggregates across several tables.
type DashboardService interface {
	Summary(ctx context.Context, viewerID string) (*dto.DashboardResponse, error)
	Invalidate(ctx context.Context) error
}

type dashboardService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService instance.
func NewDashboardService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) DashboardService {
	return &dashboardService{cfg: cfg, repo: repo, cache: cache, logger: logger}
}

func (s *dashboardService) Summary(ctx context.Context, viewerID string) (*dto.DashboardResponse, error) {
	viewer, err := s.repo.User.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	resp, err := s.shared(ctx)
	if err != nil {
		return nil, err
	}

	myCases, err := s.repo.Case.CountByHolder(ctx, viewer.UserID, true)
	if err != nil {
		return nil, err
	}
	resp.MyCases = myCases
	// Per-stage stats are an administrative view.
	if viewer.Role != string(workflow.RoleAdmin) {
		resp.ByStage = nil
	}
	return resp, nil
}

// shared returns the viewer-independent aggregate, cached briefly.
func (s *dashboardService) shared(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		if raw, err := s.cache.CacheGet(ctx, dashboardCacheKey); err != nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		} else if raw != nil {
			var cached dto.DashboardResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	resp, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.cache.CacheSet(ctx, dashboardCacheKey, raw, s.cfg.Workflow.DashboardCacheTTL); err != nil {
				s.logger.Warn("dashboard cache write failed", zap.Error(err))
			}
		}
	}
	return resp, nil
}

func (s *dashboardService) compute(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()

	stats, err := s.repo.Case.Stats(ctx, now)
	if err != nil {
		return nil, err
	}

	byPriority := make(map[string]int64, 3)
	for _, p := range []string{workflow.PriorityHigh, workflow.PriorityMedium, workflow.PriorityLow} {
		n, err := s.repo.Case.CountByPriority(ctx, p, true)
		if err != nil {
			return nil, err
		}
		byPriority[p] = n
	}

	byStage := make(map[string]int64, len(workflow.AllRoles))
	for _, r := range workflow.AllRoles {
		n, err := s.repo.Case.CountByHolderRole(ctx, string(r), true)
		if err != nil {
			return nil, err
		}
		byStage[string(r)] = n
	}

	grievances, err := s.repo.Grievance.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.Case.ListRecent(ctx, 10)
	if err != nil {
		return nil, err
	}
	recentCases := make([]dto.DashboardCase, 0, len(recent))
	for _, c := range recent {
		row := dto.DashboardCase{
			CaseID:      c.CaseID,
			CaseTitle:   c.CaseTitle,
			Priority:    c.Priority,
			StatusColor: c.StatusColor,
			IsCompleted: c.IsCompleted,
		}
		if c.CaseType != nil {
			row.CaseType = c.CaseType.Name
		}
		if c.CurrentHolder != nil {
			row.CurrentHolder = c.CurrentHolder.FullName
		}
		recentCases = append(recentCases, row)
	}

	return &dto.DashboardResponse{
		Total:       stats.Total,
		Pending:     stats.Pending,
		Completed:   stats.Completed,
		Overdue:     stats.Overdue,
		ByPriority:  byPriority,
		ByStage:     byStage,
		Grievances:  grievances,
		RecentCases: recentCases,
	}, nil
}

// Invalidate drops the cached summary, forcing a recompute on the next
// request.
func (s *dashboardService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.CacheInvalidate(ctx, dashboardCacheKey)
}

package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache keys for the derived views. The evaluation consumer drops these when
// an evaluation event arrives; entity CRUD relies on the short TTL instead.
const (
	DashboardStatsKey = "analytics:dashboard_stats"
	SkillsMatrixKey   = "analytics:skills_matrix"
	SkillGapsKey      = "analytics:skill_gaps"
)

const cacheTTL = time.Minute

func AllCacheKeys() []string {
	return []string{DashboardStatsKey, SkillsMatrixKey, SkillGapsKey}
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
	SkillsMatrix(ctx context.Context) ([]MatrixRow, error)
	SkillGaps(ctx context.Context) ([]SkillGap, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) DashboardStats(ctx context.Context) (DashboardStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DashboardStatsKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DashboardStatsKey, func() (interface{}, error) {
		stats, err := s.repo.DashboardStats(ctx)
		if err != nil {
			return nil, err
		}
		s.cache(ctx, DashboardStatsKey, stats)
		return stats, nil
	})
	if err != nil {
		s.logger.Error("dashboard stats query failed", zap.Error(err))
		return DashboardStats{}, err
	}

	return v.(DashboardStats), nil
}

func (s *service) SkillsMatrix(ctx context.Context) ([]MatrixRow, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SkillsMatrixKey).Result(); err == nil {
			var rows []MatrixRow
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return rows, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SkillsMatrixKey, func() (interface{}, error) {
		rows, err := s.repo.SkillsMatrix(ctx)
		if err != nil {
			return nil, err
		}
		s.cache(ctx, SkillsMatrixKey, rows)
		return rows, nil
	})
	if err != nil {
		s.logger.Error("skills matrix query failed", zap.Error(err))
		return nil, err
	}

	return v.([]MatrixRow), nil
}

// SkillGaps returns positive gaps only, with severity classified after
// retrieval; severity is presentation-only and never stored.
func (s *service) SkillGaps(ctx context.Context) ([]SkillGap, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, SkillGapsKey).Result(); err == nil {
			var gaps []SkillGap
			if json.Unmarshal([]byte(cached), &gaps) == nil {
				return gaps, nil
			}
		}
	}

	v, err, _ := s.sf.Do(SkillGapsKey, func() (interface{}, error) {
		gaps, err := s.repo.SkillGaps(ctx)
		if err != nil {
			return nil, err
		}
		for i := range gaps {
			gaps[i].Severity = ClassifySeverity(gaps[i].Gap)
		}
		s.cache(ctx, SkillGapsKey, gaps)
		return gaps, nil
	})
	if err != nil {
		s.logger.Error("skill gaps query failed", zap.Error(err))
		return nil, err
	}

	return v.([]SkillGap), nil
}

// ClassifySeverity buckets a positive gap: >=2 critical, >=1 moderate,
// anything below (but still positive) low.
func ClassifySeverity(gap float64) string {
	switch {
	case gap >= 2:
		return SeverityCritical
	case gap >= 1:
		return SeverityModerate
	default:
		return SeverityLow
	}
}

func (s *service) cache(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.logger.Warn("analytics cache set failed", zap.String("key", key), zap.Error(err))
	}
}

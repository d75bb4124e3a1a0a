package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-skills/internal/analytics"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type fakeAnalyticsRepo struct {
	DashboardStatsFn func(ctx context.Context) (analytics.DashboardStats, error)
	SkillsMatrixFn   func(ctx context.Context) ([]analytics.MatrixRow, error)
	SkillGapsFn      func(ctx context.Context) ([]analytics.SkillGap, error)
	gapCalls         int
}

func (f *fakeAnalyticsRepo) DashboardStats(ctx context.Context) (analytics.DashboardStats, error) {
	return f.DashboardStatsFn(ctx)
}
func (f *fakeAnalyticsRepo) SkillsMatrix(ctx context.Context) ([]analytics.MatrixRow, error) {
	return f.SkillsMatrixFn(ctx)
}
func (f *fakeAnalyticsRepo) SkillGaps(ctx context.Context) ([]analytics.SkillGap, error) {
	f.gapCalls++
	return f.SkillGapsFn(ctx)
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		want string
	}{
		{"two full levels", 2.0, analytics.SeverityCritical},
		{"above two", 3.5, analytics.SeverityCritical},
		{"one full level", 1.0, analytics.SeverityModerate},
		{"between one and two", 1.5, analytics.SeverityModerate},
		{"below one", 0.5, analytics.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, analytics.ClassifySeverity(tt.gap))
		})
	}
}

func TestAnalyticsService_SkillGaps(t *testing.T) {
	ctx := context.Background()

	t.Run("severity assigned per row", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		// Two employees at levels 2 and 3 against a required 4 averages
		// to 2.5, a gap of 1.5.
		repo := &fakeAnalyticsRepo{
			SkillGapsFn: func(ctx context.Context) ([]analytics.SkillGap, error) {
				return []analytics.SkillGap{
					{
						PositionTitle:       "Backend Engineer",
						SkillName:           "Go",
						RequiredLevel:       4,
						AverageCurrentLevel: 2.5,
						Gap:                 1.5,
					},
					{
						PositionTitle:       "Backend Engineer",
						SkillName:           "Kubernetes",
						RequiredLevel:       5,
						AverageCurrentLevel: 2,
						Gap:                 3,
					},
				}, nil
			},
		}

		redisMock.ExpectGet(analytics.SkillGapsKey).RedisNil()
		redisMock.Regexp().ExpectSet(analytics.SkillGapsKey, `.*`, time.Minute).SetVal("OK")

		svc := analytics.NewService(repo, rdb)
		gaps, err := svc.SkillGaps(ctx)

		assert.NoError(t, err)
		assert.Len(t, gaps, 2)
		assert.Equal(t, analytics.SeverityModerate, gaps[0].Severity)
		assert.Equal(t, analytics.SeverityCritical, gaps[1].Severity)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		cached := []analytics.SkillGap{{
			PositionTitle: "Backend Engineer",
			SkillName:     "Go",
			Gap:           1.5,
			Severity:      analytics.SeverityModerate,
		}}
		data, _ := json.Marshal(cached)
		redisMock.ExpectGet(analytics.SkillGapsKey).SetVal(string(data))

		repo := &fakeAnalyticsRepo{
			SkillGapsFn: func(ctx context.Context) ([]analytics.SkillGap, error) {
				return nil, errors.New("should not be called")
			},
		}

		svc := analytics.NewService(repo, rdb)
		gaps, err := svc.SkillGaps(ctx)

		assert.NoError(t, err)
		assert.Len(t, gaps, 1)
		assert.Equal(t, 0, repo.gapCalls)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(analytics.SkillGapsKey).RedisNil()

		repo := &fakeAnalyticsRepo{
			SkillGapsFn: func(ctx context.Context) ([]analytics.SkillGap, error) {
				return nil, errors.New("db down")
			},
		}

		svc := analytics.NewService(repo, rdb)
		_, err := svc.SkillGaps(ctx)

		assert.Error(t, err)
	})
}

func TestAnalyticsService_DashboardStats(t *testing.T) {
	ctx := context.Background()

	t.Run("miss fills cache", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		stats := analytics.DashboardStats{
			TotalEmployees: 12,
			TotalSkills:    30,
			TotalPositions: 5,
			SkillCategories: []analytics.CategoryCount{
				{Category: "technical", Count: 18},
				{Category: "managerial", Count: 12},
			},
		}
		repo := &fakeAnalyticsRepo{
			DashboardStatsFn: func(ctx context.Context) (analytics.DashboardStats, error) {
				return stats, nil
			},
		}

		redisMock.ExpectGet(analytics.DashboardStatsKey).RedisNil()
		data, _ := json.Marshal(stats)
		redisMock.ExpectSet(analytics.DashboardStatsKey, data, time.Minute).SetVal("OK")

		svc := analytics.NewService(repo, rdb)
		got, err := svc.DashboardStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), got.TotalEmployees)
		assert.Len(t, got.SkillCategories, 2)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}

func TestAnalyticsService_SkillsMatrix(t *testing.T) {
	ctx := context.Background()

	t.Run("rows pass through untouched", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()

		title := "Backend Engineer"
		skillName := "Go"
		level := 3
		required := 4
		repo := &fakeAnalyticsRepo{
			SkillsMatrixFn: func(ctx context.Context) ([]analytics.MatrixRow, error) {
				return []analytics.MatrixRow{
					{
						EmployeeID:    "e1",
						EmployeeName:  "Ada Lovelace",
						PositionTitle: &title,
						SkillName:     &skillName,
						CurrentLevel:  &level,
						RequiredLevel: &required,
					},
					{
						EmployeeID:   "e2",
						EmployeeName: "Grace Hopper",
					},
				}, nil
			},
		}

		redisMock.ExpectGet(analytics.SkillsMatrixKey).RedisNil()
		redisMock.Regexp().ExpectSet(analytics.SkillsMatrixKey, `.*`, time.Minute).SetVal("OK")

		svc := analytics.NewService(repo, rdb)
		rows, err := svc.SkillsMatrix(ctx)

		assert.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "Ada Lovelace", rows[0].EmployeeName)
		assert.Nil(t, rows[1].SkillName)
	})
}
